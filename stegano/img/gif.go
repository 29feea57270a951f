package img
import (
	"bytes"
	"image/gif"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

/*
 * gif frames are palette indexed, so the bit stream goes into the
 * least significant bits of the palette indicies instead of color
 * channels. works best with decoys that use a full 256 color palette.
 */
func HideInGif( decoy []byte, data []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	// flatten data bits
	bits := util.EncodeToBinary( data )

	total := 0
	for _, frame := range g.Image {
		total += len(frame.Pix)
	}
	if len(bits) > total {
		return nil, util.ErrNotEnoughSpace
	}

	// embed bits into pixel indicies
	bitIdx := 0
	for _, frame := range g.Image {
		for i := range frame.Pix {
			if bitIdx >= len(bits) {
				break
			}
			// modify least significant bit
			frame.Pix[i] = (frame.Pix[i] & 0xfe ) | bits[bitIdx]
			bitIdx++
		}
		if bitIdx >= len(bits) {
			break
		}
	}

	outbuf := bytes.NewBuffer( []byte{} )
	err = gif.EncodeAll( outbuf, g )
	if err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromGif( decoy []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	bits := []uint8{}
	for _, frame := range g.Image {
		for _, pix := range frame.Pix {
			bits = append( bits, uint8(pix & 1) )
		}
	}

	return util.DecodeFromBinary( bits )
}
