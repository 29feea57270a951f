package audio
import (
	"bytes"
	"errors"
	"testing"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

// a few fake mpeg frames are enough, the payload lives in the tag
func makeTestMP3() []byte {
	frame := append( []byte{ 0xff, 0xfb, 0x90, 0x00 }, bytes.Repeat([]byte{ 0xAA }, 417)... )
	return bytes.Repeat( frame, 16 )
}

func TestMP3(t *testing.T) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("HELLO WORLD"),
		bytes.Repeat( []byte("a"), 4096 ),
		bytes.Repeat( []byte("A"), 4096 * 8 ),
	}

	description := "test-comment-section"

	for _, data := range tests {
		content := makeTestMP3()
		enc, err := HideInMP3( description, content, data )
		if err != nil {
			t.Fatalf("Failed to hide data in mp3 file: %s", err.Error())
		} else {
			dec, err := RevealFromMP3( description, enc )
			if err != nil {
				t.Fatalf("Failed to reveal hidden data: %s", err.Error())
			} else if bytes.Equal( dec, data ) == false {
				// fix not to trash out console...
				if len(dec) > 100 {
					dec = dec[:100]
				}
				if len(data) > 100 {
					data = data[:100]
				}
				t.Fatalf("Hidden != revealed: %v != %v", data, dec )
			}
		}
	}
}

func TestMP3WrongDescription(t *testing.T) {
	enc, err := HideInMP3( "one-section", makeTestMP3(), []byte("hidden") )
	if err != nil {
		t.Fatalf("Failed to hide data in mp3 file: %s", err.Error())
	}
	_, err = RevealFromMP3( "another-section", enc )
	if errors.Is( err, util.ErrNoHiddenMessage ) == false {
		t.Fatalf("Expected ErrNoHiddenMessage, got %v", err)
	}
}
