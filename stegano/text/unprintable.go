package text
import (
	"fmt"
	//"strings"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)


/*
 * hides zeros and ones as a pair of invisible runes. the markers may
 * sit in front of the decoy, behind it, or be woven between its
 * letters. a decoy that already contains the marker runes will spoil
 * the extraction.
 */
func EncodeWithUnprintable( unprintable0, unprintable1 rune, mode uint8, data []byte, s string ) (string, error) {

	bits := util.EncodeToBinary( data )

	encoded := make( []rune, 0, len(bits) )
	for _, e := range bits {
		if e == 0 {
			encoded = append( encoded, unprintable0 )
		} else {
			encoded = append( encoded, unprintable1 )
		}
	}

	switch mode {
	case PrefixMode:
		return string(encoded) + s, nil
	case SuffixMode:
		return s + string(encoded), nil
	case EmbedMode:
		// one marker before every letter, leftovers at the end
		result := make( []rune, 0, len(encoded) * 2 )
		eIdx := 0
		for _, l := range s {

			if eIdx < len(encoded) {
				result = append( result, encoded[eIdx] )
				eIdx++
			}
			result = append( result, l )
		}
		if eIdx < len(encoded) {
			result = append( result, encoded[eIdx:]... )
		}
		return string(result), nil
	default:
		return "", fmt.Errorf("Invalid encoding mode.")
	}
}

func DecodeFromUnprintable( unprintable0, unprintable1 rune, s string ) ([]byte, error) {
	result := []uint8{}
	for _, run := range s {
		if run == unprintable0 {
			result = append( result, 0 )
		} else if run == unprintable1 {
			result = append( result, 1 )
		}
	}
	return util.DecodeFromBinary( result )
}
