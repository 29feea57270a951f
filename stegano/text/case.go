package text
import (
	"strings"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

// encodes data in the case of letters.
// if GreedyMode is used, encodes data in the start of sentences in the text
// if not, changes the case of every word's first letter.
func EncodeWithCase( mode uint8, data []byte, s string ) (string, error) {

	delimeter := getDelimeter( mode )
	parts := strings.Split( s, delimeter )
	encoded := util.EncodeToBinary( data )

	usable := 0
	for _, part := range parts {
		if encodable( part ) {
			usable++
		}
	}
	if len(encoded) > usable {
		return "", util.ErrNotEnoughSpace
	}

	to1Case := strings.ToUpper
	to0Case := strings.ToLower
	if mode & InverseMode == InverseMode {
		to1Case = strings.ToLower
		to0Case = strings.ToUpper
	}

	idx := 0
	for i := range parts {
		if idx >= len(encoded) {
			break
		}
		if encodable( parts[i] ) == false {
			continue
		}
		first := []rune( parts[i] )
		if encoded[idx] == 1 {
			first[0] = []rune( to1Case( string(first[0]) ) )[0]
		} else {
			first[0] = []rune( to0Case( string(first[0]) ) )[0]
		}
		parts[i] = string( first )
		idx++
	}
	return strings.Join( parts, delimeter ), nil
}

// inverse function
func DecodeFromCase( mode uint8, s string ) ([]byte, error) {
	delimeter := getDelimeter( mode )
	parts := strings.Split( s, delimeter )
	encoded := []uint8{}

	for _, part := range parts {
		if encodable( part ) == false {
			continue
		}
		first := string( []rune(part)[0] )
		one := strings.ToUpper( first ) == first
		if mode & InverseMode == InverseMode {
			one = !one
		}
		if one {
			encoded = append( encoded, 1 )
		} else {
			encoded = append( encoded, 0 )
		}
	}
	return util.DecodeFromBinary( encoded )
}

// only a letter with two distinct cases can carry a bit
func encodable( part string ) bool {
	if len(part) == 0 {
		return false
	}
	first := string( []rune(part)[0] )
	return strings.ToUpper( first ) != strings.ToLower( first )
}

func getDelimeter( mode uint8 ) string {
	delimeter := " "
	if mode & GreedyMode == GreedyMode {
		delimeter = "."
	}
	return delimeter
}
