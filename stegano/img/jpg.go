package img
import (
	"fmt"
	"bytes"
	"image"
	_ "image/jpeg"	// register the decoder for image.Decode
	"lukechampine.com/jsteg"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

/*
 * jpeg is lossy, so pixel level LSB does not survive a reencode.
 * jsteg hides the bits inside the DCT coefficients instead. the
 * delimiter framing stays the same as for the lossless carriers.
 */
func HideInJpeg( decoy []byte, data []byte ) ([]byte, error) {

	img, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	framed := util.Frame( data )
	if space := jsteg.Capacity( img, nil ); space < len(framed) {
		return nil, fmt.Errorf("%w ( %d < %d )", util.ErrNotEnoughSpace, space, len(framed))
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = jsteg.Hide( outbuf, img, framed, nil ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromJpeg( decoy []byte ) ([]byte, error) {
	hidden, err := jsteg.Reveal( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	// jsteg returns every bit it can reach, the payload ends at the
	// first delimiter
	return util.Unframe( hidden )
}
