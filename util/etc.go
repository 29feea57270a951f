package util
import (
	"strings"
)

/*
 * derive a fresh output filename from the decoy path, so the stego
 * file never overwrites the original: "photos/cat.png" becomes
 * something like "cat12345.png" in the current directory.
 */
func PrepareFilename( filename string ) string {
	parts := strings.Split( filename, "/" )
	if len(parts) == 1 {
		parts = strings.Split( filename, "\\" )
	}
	part := parts[ len(parts) - 1 ]
	idx := strings.LastIndex( part, "." )
	if idx <= 0 {
		return GenFilename( part, "out" )
	}
	return GenFilename( part[:idx], part[idx+1:] )
}
