package text
import (
	"fmt"
	"strings"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)


/*
 * encodes data using typos undetectable to human eye.
 * for example, replaces 'a' with russian 'а' in certain conditions.
 *
 * [in]:
 *	alph1 - alphabet from letters located in the 's' parameter (for example, latin letters).
 *	alph2 - alphabet from letters to replace source ones. must not overlap with alph1.
 *	data - data to encode.
 *	s - decoy message.
 * [out]:
 * 	out - encoded message
 * 	err - error if size of s is too small to encode data in it.
 *
 */
func EncodeWithTypos( alph1, alph2 string, data []byte, s string ) (string, error) {

	a1 := []rune( alph1 )
	a2 := []rune( alph2 )
	if len(a1) != len(a2) {
		return "", fmt.Errorf("Alphabets must have the same length.")
	}
	replacements := map[rune]rune{}
	for i, r := range a1 {
		replacements[r] = a2[i]
	}

	totalLetters := 0
	for _, l := range s {
		if strings.ContainsRune( alph1, l ) {
			totalLetters += 1
		}
	}
	binaryData := util.EncodeToBinary( data )

	if totalLetters < len(binaryData) {
		return "", util.ErrNotEnoughSpace
	}

	idx := 0 // index of bit in data
	out := []rune{}

	for _, run := range s {
		// replace letter from alph1 to letter from alph2
		// in case if binaryData[idx] == 1
		if strings.ContainsRune( alph1, run ) && idx < len(binaryData) {
			if binaryData[idx] == 1 {
				out = append( out, replacements[run] )
			} else {
				out = append( out, run )
			}
			idx++
		} else {
			out = append( out, run )
		}
	}
	return string(out), nil
}

// inverse function
func DecodeFromTypos( alph1, alph2, s string ) ([]byte, error) {

	tmpresult := []uint8{}
	for _, l := range s {
		if strings.ContainsRune( alph1, l ) {
			tmpresult = append( tmpresult, uint8(0) )
		} else if strings.ContainsRune( alph2, l ) {
			tmpresult = append( tmpresult, uint8(1) )
		}
	}
	return util.DecodeFromBinary( tmpresult )
}
