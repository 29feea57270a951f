package audio
import (
	//"fmt"
	"github.com/NightmareLynx/HIDeer/stegano/util"
)

/*
 * pcm samples are 16 bit little endian, so every second byte holds a
 * least significant bit. one bit per sample keeps the noise floor
 * inaudible.
 */
func HideInWav( decoy, data []byte ) ([]byte, error) {
	out := make( []byte, len(decoy) )
	copy( out, decoy )

	wv, err := parseWave( out )
	if err != nil {
		return nil, err
	}

	bits := util.EncodeToBinary( data )
	if len(bits) > len(wv.data) / 2 {
		return nil, util.ErrNotEnoughSpace
	}

	for i, bit := range bits {
		// low byte of sample i
		wv.data[i*2] = (wv.data[i*2] & 0xfe) | bit
	}
	return out, nil
}

func RevealFromWav( decoy []byte ) ([]byte, error) {
	wv, err := parseWave( decoy )
	if err != nil {
		return nil, err
	}

	bits := make( []uint8, 0, len(wv.data) / 2 )
	for i := 0; i + 1 < len(wv.data); i += 2 {
		bits = append( bits, wv.data[i] & 0x1 )
	}
	return util.DecodeFromBinary( bits )
}
