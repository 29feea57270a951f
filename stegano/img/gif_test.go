package img
import (
	"bytes"
	"errors"
	"testing"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

func TestGIF( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello World!"),
		bytes.Repeat([]byte("a"), 4096),
	}

	for _, data := range tests {
		decoy := makeTestGif( t, 256, 256 )
		enc, err := HideInGif( decoy, data )
		if err != nil {
			t.Errorf("Failed to encode data in gif: %s", err.Error())
		} else {
			//os.WriteFile( "../tests/test_encoded.gif", enc, 0600 )
			dec, err := RevealFromGif( enc )
			if err != nil {
				t.Errorf("Failed to extract data from gif: %s", err.Error() )
			} else if bytes.Equal( data, dec ) == false {
				t.Errorf("GIF steganography spoiled data: %v != %v", data, dec)
			}
		}
	}
}

func TestGIFTooSmall( t *testing.T ) {
	// 8x8 pixels hold 64 bits, the delimiter alone needs 72
	decoy := makeTestGif( t, 8, 8 )
	_, err := HideInGif( decoy, []byte("way too much data for this image") )
	if errors.Is( err, util.ErrNotEnoughSpace ) == false {
		t.Errorf("Expected ErrNotEnoughSpace, got %v", err)
	}
}
