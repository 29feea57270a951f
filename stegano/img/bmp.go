package img
import (
	//"fmt"
	"bytes"
	"image"
	"golang.org/x/image/bmp"

	"github.com/NightmareLynx/HIDeer/stegano/lsb"
)

func HideInBMP( decoy, data []byte ) ([]byte, error) {
	// the same bit layout as with png, only the container differs
	src, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	grid := toNRGBA( src )
	if err = lsb.Embed( grid, data ); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err = bmp.Encode( buf, grid ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromBMP( decoy []byte ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return lsb.Extract( src )
}
