package config

import (
	"os"
	"path/filepath"
	"gopkg.in/yaml.v3"

	"github.com/NightmareLynx/HIDeer/cryptography"
	"github.com/NightmareLynx/HIDeer/util"
)

/*
 * Configuration for steganography. Names the id3v2 comment section
 * that marks an mp3 payload, and the folder to pick decoy files from
 * when the decoy argument is a folder.
 */
type SteganoConfig struct {
	CommentSection	string			`yaml:"comment_section"`
	Folder		string			`yaml:"decoy_files_folder"`
}

/*
 * Full configuration of the tool. Small on purpose: the carriers are
 * driven by the command line, only the ambient behaviour lives here.
 */
type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

// the configuration every command starts from on a fresh install.
func DefaultConfig( dir string ) *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			CommentSection:	"hideer",
		},
		Logger: util.LoggerInfo{
			Filename:	filepath.Join( dir, "hideer.log" ),
			IsColored:	true,
			SaveTime:	true,
			Mode:		util.Error | util.Warning,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string, key []byte) (*FullConfig, error) {
	data, err := LoadEncrypted(filename, key)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig(filename string, key []byte, c *FullConfig) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return SaveEncrypted(filename, key, data)
}

/*
 * Functions for saving and loading encrypted files.
 */
func LoadEncrypted(filename string, key []byte) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if key != nil && len(key) == cryptography.SymKeySize {
		return cryptography.Decrypt(data, key)
	}
	// return unencrypted data
	return data, nil
}

func SaveEncrypted(filename string, key, data []byte) error {

	var err error
	if key != nil && len(key) == cryptography.SymKeySize {
		data, err = cryptography.Encrypt(data, key)
		if err != nil {
			return err
		}
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return err
	}
	return nil
}
