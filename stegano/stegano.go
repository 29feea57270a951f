package stegano
import (
	"os"
	"fmt"
	"strings"

	"github.com/NightmareLynx/HIDeer/stegano/archive"
	"github.com/NightmareLynx/HIDeer/stegano/audio"
	"github.com/NightmareLynx/HIDeer/stegano/document"
	"github.com/NightmareLynx/HIDeer/stegano/img"
	"github.com/NightmareLynx/HIDeer/stegano/text"
	"github.com/NightmareLynx/HIDeer/util"
)

const (
	TextFile = int8(0)	// actually, it also can be a code file
	ImageFile = int8(1)
	AudioFile = int8(2)
	DocumentFile = int8(3)
	ArchiveFile = int8(4)
	UnknownFile = int8(-1)
)

var supportedTypes = map[int8][]string{
	TextFile: []string{
		"txt", "md", "py", "java", "rs",
		"go", "sql", "c", "cpp", "h", "hpp",
		"ts", "js", "nim", "toml", "conf",
	},
	ImageFile: []string{"png", "jpeg", "jpg", "gif", "bmp"},
	AudioFile: []string{"wav", "flac", "mp3"},
	DocumentFile: []string{"pdf"},
	ArchiveFile: []string{"zip"},
}

func DetermineFileType( ext string ) int8 {
	for t, v := range supportedTypes {
		for _, val := range v {
			if val == ext {
				return t
			}
		}
	}
	return UnknownFile
}

// SupportedExtensions lists the known extensions for the given carrier
// types, or for every carrier when called without arguments.
func SupportedExtensions( types ...int8 ) []string {
	if len(types) == 0 {
		types = []int8{ TextFile, ImageFile, AudioFile, DocumentFile, ArchiveFile }
	}
	result := []string{}
	for _, t := range types {
		result = append( result, supportedTypes[t]... )
	}
	return result
}

// Extension returns the lowercased file extension without the dot.
func Extension( filename string ) string {
	parts := strings.Split( filename, "." )
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower( parts[len(parts)-1] )
}

/*
 * HideInFile embeds data into the container named by format, which
 * normally comes from the output filename. An image decoy may change
 * container on the way out (a jpeg decoy saved as png keeps every
 * stego bit), the other carriers must keep their container.
 */
func HideInFile( description, filename, format string, data []byte ) ([]byte, error) {

	fileBytes, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	switch DetermineFileType( format ) {
	case TextFile:
		if DetermineFileType( Extension( filename ) ) != TextFile {
			return nil, fmt.Errorf("Text output requires a text decoy.")
		}
		return text.Hide( fileBytes, data )
	case ImageFile:
		return img.HideToFormat( format, fileBytes, data )
	case AudioFile:
		if Extension( filename ) != format {
			return nil, fmt.Errorf("Audio decoy and output must use the same container.")
		}
		return audio.Hide( description, fileBytes, data )
	case DocumentFile:
		if Extension( filename ) != format {
			return nil, fmt.Errorf("Document decoy and output must use the same container.")
		}
		return document.Hide( fileBytes, data )
	case ArchiveFile:
		if Extension( filename ) != format {
			return nil, fmt.Errorf("Archive decoy and output must use the same container.")
		}
		return archive.Hide( description, fileBytes, data )
	}
	util.DebugPrintln("[-] Unsupported output format:", format)
	return nil, fmt.Errorf("Unknown file format.")
}

func RevealFromFile( description, filename string ) ([]byte, error) {

	fileBytes, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	typ := DetermineFileType( Extension( filename ) )
	switch typ {
	case TextFile:
		return text.Reveal( fileBytes )
	case ImageFile:
		return img.Reveal( fileBytes )
	case AudioFile:
		return audio.Reveal( description, fileBytes )
	case DocumentFile:
		return document.Reveal( fileBytes )
	case ArchiveFile:
		return archive.Reveal( description, fileBytes )
	}
	util.DebugPrintln("[-] Failed to determine file type of", filename)
	return nil, fmt.Errorf("Unknown file format.")
}

// AnalyzeFile reports the capacity of an image decoy.
func AnalyzeFile( filename string ) (*img.CapacityReport, error) {
	fileBytes, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	return img.Analyze( fileBytes )
}
