package util
import (
	"bytes"
	"unicode/utf8"
)

/*
 * transform data from/to binary form
 */
func ToBin( x byte ) []byte {
	result := []byte{}
	for i := 0; i < 8; i++ {
		result = append( result, (x >> (7 - i)) & 1 )
	}
	return result
}

func FromBin( x []byte ) byte {
	result := byte(0)
	for i := 0; i < 8; i++ {
		result = (result << 1) | x[i]
	}
	return result
}

// Frame appends the delimiter to the payload.
func Frame( data []byte ) []byte {
	framed := make( []byte, 0, len(data) + len(Delimiter) )
	framed = append( framed, data... )
	framed = append( framed, []byte(Delimiter)... )
	return framed
}

// Unframe cuts the payload at the first delimiter occurrence and
// checks that the result is valid text.
func Unframe( data []byte ) ([]byte, error) {
	idx := bytes.Index( data, []byte(Delimiter) )
	if idx < 0 {
		return nil, ErrNoHiddenMessage
	}
	payload := data[:idx]
	if utf8.Valid( payload ) == false {
		return nil, ErrInvalidEncoding
	}
	return payload, nil
}

// expand payload + delimiter into a stream of 0/1 bytes.
func EncodeToBinary( data []byte ) []byte {
	framed := Frame( data )
	res := make( []byte, 0, len(framed) * 8 )
	for _, b := range framed {
		res = append( res, ToBin( b )... )
	}
	return res
}

// fold a stream of 0/1 bytes back into the payload. scanning stops at
// the first complete delimiter; trailing bits are never inspected.
func DecodeFromBinary( data []uint8 ) ([]byte, error) {
	delim := []byte(Delimiter)
	result := []byte{}
	for i := 0; i + 8 <= len(data); i += 8 {
		result = append( result, FromBin( data[i:i+8] ) )
		if len(result) < len(delim) {
			continue
		}
		if bytes.Equal( result[len(result)-len(delim):], delim ) {
			payload := result[:len(result)-len(delim)]
			if utf8.Valid( payload ) == false {
				return nil, ErrInvalidEncoding
			}
			return payload, nil
		}
	}
	return nil, ErrNoHiddenMessage
}
