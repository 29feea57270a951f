package main
import (
	"os"
	"fmt"
	"errors"
	"strconv"
	//"flag"
	"path/filepath"

	"github.com/NightmareLynx/HIDeer/util"
	"github.com/NightmareLynx/HIDeer/config"
	"github.com/NightmareLynx/HIDeer/stegano"
	stegutil "github.com/NightmareLynx/HIDeer/stegano/util"
	"github.com/NightmareLynx/HIDeer/cryptography"
)

const (
	HideerFolder = ".hideer"
	ConfigFilename = "config.yaml"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	hideerFolder := filepath.Join( home, HideerFolder )

	_, err = os.ReadDir( hideerFolder )
	if err != nil {
		// folder unexistend, creating it.
		if err = os.Mkdir( hideerFolder, 0760 ); err != nil {
			fatal("Failed to create HIDeer directory in user's home folder:", err)
		}
	}

	// the commands which do not need the configuration at all
	switch os.Args[1] {
	case "gensalt":
		if err = util.GenSalt(); err != nil {
			fatal("Failed to generate salt:", err)
		}
		return
	case "shred":
		if len( os.Args ) < 3 {
			fatal("Usage: hideer shred <file>")
		}
		if err = util.ShredFile( os.Args[2] ); err != nil {
			fatal("Failed to shred file:", err)
		}
		fmt.Println("[+] File is gone:", os.Args[2])
		return
	}

	// if the application runs for the first time, create the
	// configuration with the defaults.
	configFile := filepath.Join( hideerFolder, ConfigFilename )
	if _, err := os.Stat( configFile ); err != nil {
		if err = config.SaveConfig( configFile, nil, config.DefaultConfig( hideerFolder ) ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}

	conf, err := config.LoadConfig( configFile, nil )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &conf.Logger )

	switch os.Args[1] {
	case "hide":
		if err = hide( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			if errors.Is( err, stegutil.ErrNotEnoughSpace ) {
				fmt.Println("[-] The decoy is too small for this message. Run `hideer analyze` on it to see its capacity.")
			}
			fatal("Failed to hide message:", err)
		}
	case "extract":
		if err = extract( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			if errors.Is( err, stegutil.ErrNoHiddenMessage ) {
				fatal("[-]", err)
			}
			fatal("Failed to extract message:", err)
		}
	case "analyze":
		if err = analyze( os.Args[2:] ); err != nil {
			logger.LogError( err )
			fatal("Failed to analyze image:", err)
		}
	case "editconf":
		// the configuration is plain yaml, just open it in the editor
		if err = util.EditConfig( configFile ); err != nil {
			fatal("Failed to edit configuration:", err)
		}
	case "readlog":
		if err = readlog( conf ); err != nil {
			fatal("Failed to read log file:", err)
		}
	default:
		help()
	}
}

func hide( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	if len(args) < 2 {
		return fmt.Errorf("Usage: hideer hide <decoy> <message|-> [output]")
	}
	decoy := args[0]
	output := ""
	if len(args) > 2 {
		output = args[2]
	}

	// 'auto' means: take the configured decoy folder
	if decoy == "auto" {
		if conf.StegConfig.Folder == "" {
			return fmt.Errorf("No decoy folder configured, set decoy_files_folder first.")
		}
		decoy = conf.StegConfig.Folder
	}

	// a folder instead of a decoy file means: pick a random
	// supported file from it
	if info, err := os.Stat( decoy ); err == nil && info.IsDir() {
		exts := stegano.SupportedExtensions()
		if output != "" {
			outType := stegano.DetermineFileType( stegano.Extension( output ) )
			switch outType {
			case stegano.AudioFile, stegano.DocumentFile, stegano.ArchiveFile:
				// these carriers cannot change container, match it exactly
				exts = []string{ stegano.Extension( output ) }
			case stegano.UnknownFile:
				// leave the full list, HideInFile will complain later
			default:
				exts = stegano.SupportedExtensions( outType )
			}
		}
		files, err := util.ReadFiles( decoy, exts )
		if err != nil {
			return err
		}
		decoy, _ = util.PickFileAtRandom( files )
		if decoy == "" {
			return fmt.Errorf("No supported decoy files in %s.", args[0])
		}
		fmt.Println("[*] Picked decoy:", decoy)
	}

	var data []byte
	if args[1] == "-" {
		// read the message without echo and without shell history
		pw, err := util.GetPasswd("Message: ")
		if err != nil {
			return err
		}
		data = pw
	} else {
		data = []byte( args[1] )
	}

	if output == "" {
		output = util.PrepareFilename( decoy )
	}

	enc, err := stegano.HideInFile( conf.StegConfig.CommentSection, decoy, stegano.Extension( output ), data )
	if err != nil {
		return err
	}
	if err = os.WriteFile( output, enc, 0660 ); err != nil {
		return err
	}

	framed := len(data) + len(stegutil.Delimiter)
	fmt.Println("[+] Message hidden successfully.")
	fmt.Println("\tDecoy: ", decoy)
	fmt.Println("\tOutput:", output)
	fmt.Printf("\tPayload: %d bytes, %d with the delimiter (%d bits)\n", len(data), framed, framed * 8)
	logger.LogInfo("Hidden " + strconv.Itoa( len(data) ) + " bytes into " + output)
	return nil
}

func extract( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	if len(args) < 1 {
		return fmt.Errorf("Usage: hideer extract <stego-file>")
	}
	data, err := stegano.RevealFromFile( conf.StegConfig.CommentSection, args[0] )
	if err != nil {
		return err
	}

	fmt.Println("[+] Hidden message:")
	fmt.Println( string(data) )
	fmt.Printf("(%d bytes)\n", len(data))
	logger.LogInfo("Revealed " + strconv.Itoa( len(data) ) + " bytes from " + args[0])
	return nil
}

func analyze( args []string ) error {

	if len(args) < 1 {
		return fmt.Errorf("Usage: hideer analyze <image>")
	}
	report, err := stegano.AnalyzeFile( args[0] )
	if err != nil {
		return err
	}

	fmt.Println("[+] Capacity of", args[0])
	fmt.Printf("\tDimensions:\t\t%dx%d\n", report.Width, report.Height)
	fmt.Printf("\tMaximum bits:\t\t%d\n", report.Bits)
	fmt.Printf("\tMaximum characters:\t%d\n", report.Bytes)
	fmt.Printf("\tMaximum message length:\t%d bytes\n", report.MaxMessage)
	return nil
}

func readlog( conf *config.FullConfig ) error {

	li := &conf.Logger
	if li.IsEncrypted == false {
		return util.ReadLog( li.Filename, nil, nil )
	}

	pass, saltBytes, err := cryptography.SplitWithSalt( li.Password )
	if err != nil {
		// the password is not stored in the config, ask for it
		pw, err2 := util.GetPasswd("Log password (salt:password): ")
		if err2 != nil {
			return err2
		}
		if pass, saltBytes, err = cryptography.SplitWithSalt( string(pw) ); err != nil {
			return err
		}
	}
	return util.ReadLog( li.Filename, pass, saltBytes )
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	// todo: add a pretty help menu
	line := `Usage: hideer <command> [arguments]

The following commands are supported:
	hide <decoy> <message|-> [output]	hide a message inside a decoy file
	extract <stego-file>			extract a hidden message
	analyze <image>				print how much data an image can carry
	readlog					read the log file
	editconf				edit configuration
	gensalt					generate base64-encoded salt for passwords
	shred <file>				overwrite a file and delete it

When the message is '-', it is read from stdin without echo.
When the decoy is a folder ('auto' stands for the configured decoy
folder), a random supported file is picked from it.
`

	fmt.Printf("%s", line)
}
