package util
import (
	"os"
	"log"
)

/*
 * debug output stays silent unless HIDEER_DEBUG is set in the
 * environment, so the cli output remains scriptable.
 */
var (
	DebugMode = os.Getenv( "HIDEER_DEBUG" ) != ""
)


func DebugPrintln( args ...any ) {
	if DebugMode == true {
		log.Println( args... )
	}
}

func DebugPrintf( format string, args ...any ) {
	if DebugMode == true {
		log.Printf( format, args... )
	}
}
