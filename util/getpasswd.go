package util
import (
	"io"
	"os"
	"fmt"
	"bufio"
	"strings"
	"syscall"
	"golang.org/x/term"
)

// just a wrapper for term... when stdin is a pipe instead of a
// terminal, fall back to reading a plain line so scripting works.
func GetPasswd( prompt string ) ([]byte, error) {
	fmt.Print( prompt )
	if term.IsTerminal( int(syscall.Stdin) ) == false {
		reader := bufio.NewReader( os.Stdin )
		line, err := reader.ReadString( '\n' )
		if err == io.EOF && len(line) > 0 {
			err = nil
		}
		fmt.Println()
		return []byte( strings.TrimRight( line, "\r\n" ) ), err
	}
	bytepw, err := term.ReadPassword( int(syscall.Stdin) )
	fmt.Println()
	return bytepw, err
}
