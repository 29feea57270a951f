package img
import (
	//"fmt"
	"bytes"
	"image"
	"image/png"

	"github.com/NightmareLynx/HIDeer/stegano/lsb"
)

func HideInPNG( decoy, data []byte ) ([]byte, error) {
	// the decoy may be any supported image, the output is always png
	src, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	grid := toNRGBA( src )
	if err = lsb.Embed( grid, data ); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err = png.Encode( buf, grid ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromPNG( decoy []byte ) ([]byte, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return lsb.Extract( src )
}
