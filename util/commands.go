package util
import (
	"os"
	"fmt"
	"os/exec"
	"strings"
	"strconv"
	"encoding/base64"
	"github.com/NightmareLynx/HIDeer/cryptography"
)

const (
	TextEditor = "/usr/bin/vi"
	TextEditorVariableName = "HIDEER_EDITOR"
	ShredCount = 10
)

/*
 * user-facing helpers behind the cli commands.
 */
func EditConfig( conf string ) error {
	te := TextEditor	// setup default text editor
	environments := os.Environ()
	for _, variable := range environments {
		parts := strings.Split( variable, "=" )
		if len(parts) == 2 { // it is strange, if not
			if parts[0] == TextEditorVariableName {
				te = parts[1]
				break
			}
		}
	}

	cmd := exec.Command( te, conf )
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("Failed to edit file using %v: %s", te, err.Error())
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("Failed to edit file (2) using %v: %s", te, err.Error())
	}
	return nil
}

func ReadLog( log string, password, saltBytes []byte ) error {
	// just read the logs and print it to the screen
	key := cryptography.DeriveKey( password, saltBytes )
	data, err := os.ReadFile( log )
	if err != nil {
		return fmt.Errorf("Failed to read file: %s", err.Error())
	}
	logs, err := cryptography.Decrypt( data, key )
	if err != nil {
		// logs are unencrypted?
		// checking for plaintext
		strLogs := string(data)
		for _, run := range strLogs {
			if strconv.IsPrint( run ) == false && strings.ContainsRune( "\n\r\t\x1b", run ) == false {
				return fmt.Errorf("Failed to decrypt logs: invalid password.")
			}
		}
		// logs are unencrypted
		fmt.Println( strLogs )
		return nil
	}
	fmt.Println( string(logs) )
	return nil
}

func GenSalt() error {
	saltBytes, err := cryptography.GenRandom( cryptography.SaltSize )
	if err != nil {
		return err
	}
	saltStr := base64.StdEncoding.EncodeToString( saltBytes )
	fmt.Println("[+] Generated salt:", saltStr)
	return nil
}

// some auxilary things here
func ShredFile( filename string ) error {
	info, err := os.Stat( filename )
	if err != nil {
		// something really bad
		return err
	}
	var finalError error
	if info.Size() > 0 {
		for i := 0; i < ShredCount; i++ {
			content, err := cryptography.GenRandom( uint(info.Size()) )
			if err == nil {
				os.WriteFile( filename, content, 0660 )
			} else {
				finalError = err
			}
		}
	}
	if err = os.Remove( filename ); err != nil {
		finalError = err
	}
	return finalError
}
