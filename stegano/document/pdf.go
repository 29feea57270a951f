package document
import (
	"fmt"
	"bytes"
	"encoding/binary"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

const (
	// modes of steganography
	AfterEOF = uint8(0)	// hide data after EOF in pdf...
	CRNL = uint8(1)	// carriage return, new line
)

var (
	zeros = []byte("\r\n")
	ones = []byte("\n")
	pdfEOF = []byte("%%EOF")

	ErrInvalidPdf = fmt.Errorf("Not a valid pdf document.")
)

/*
 * Hide picks the least conspicuous mode that still fits the payload.
 * Flavoring newlines keeps the data inside the document body; when the
 * document carries too few lines for that, the payload is parked
 * behind the final EOF marker instead.
 */
func Hide( decoy, data []byte ) ([]byte, error) {
	if bytes.Contains( decoy, pdfEOF ) == false {
		return nil, ErrInvalidPdf
	}
	res, err := EmbedUsingNewline( decoy, data )
	if err == nil {
		return res, nil
	}
	return EmbedAfterEOF( decoy, data )
}

// Reveal tries every mode in turn, cheapest first.
func Reveal( data []byte ) ([]byte, error) {
	res, err := ExtractAfterEOF( data )
	if err == nil {
		return res, nil
	}
	return ExtractUsingNewline( data )
}

func HideInPdf( mode uint8, decoy []byte, data []byte ) ([]byte, error) {
	switch mode {
	case AfterEOF:
		return EmbedAfterEOF( decoy, data )
	case CRNL:
		return EmbedUsingNewline( decoy, data )
	}
	return nil, fmt.Errorf("Unknown mode.")
}

func RevealFromPdf( mode uint8, data []byte ) ([]byte, error) {
	switch mode {
	case AfterEOF:
		return ExtractAfterEOF( data )
	case CRNL:
		return ExtractUsingNewline( data )
	}
	return nil, fmt.Errorf("Unknown mode.")
}

/*
 * different methods of embedding/extracting data in/from pdf
 */
func EmbedAfterEOF( pdf []byte, data []byte ) ([]byte, error) {
	//fmt.Println("Last bytes of pdf:", pdf[len(pdf) - 16:] )
	buf := make( []byte, 8 )
	binary.LittleEndian.PutUint64( buf, uint64(len(data)) )
	tmp := append( []byte{}, pdf... )
	tmp = append( tmp, data... )
	return append( tmp, buf... ), nil
}

func ExtractAfterEOF( pdf []byte ) ([]byte, error) {
	idx := bytes.Index( pdf, pdfEOF )
	if idx < 0 {
		return nil, ErrInvalidPdf
	}
	tmp := pdf[ idx + len(pdfEOF): ]
	if len(tmp) < 8 {
		return nil, util.ErrNoHiddenMessage
	}
	size := binary.LittleEndian.Uint64( tmp[ len(tmp) - 8: ] )
	if size > uint64( len(tmp) - 8 ) {
		return nil, util.ErrNoHiddenMessage
	}
	//fmt.Println("[*] Size of data to extract:", size)
	return tmp[ len(tmp) - int(size) - 8 : ][ :size ], nil
}

func EmbedUsingNewline( pdf []byte, data []byte ) ([]byte, error) {

	bits := util.EncodeToBinary( data )

	// check how many bits we can embed
	pdf = bytes.ReplaceAll( pdf, zeros, ones )
	if bytes.Count( pdf, ones ) < len(bits) {
		return nil, util.ErrNotEnoughSpace
	}

	// embed data, a zero bit turns its newline into a windows style one
	out := make( []byte, 0, len(pdf) + len(bits) )
	idx := 0
	for _, b := range pdf {
		if b == byte('\n') && idx < len(bits) {
			if bits[ idx ] == 0 {
				out = append( out, byte('\r') )
			}
			idx++
		}
		out = append( out, b )
	}
	return out, nil
}

func ExtractUsingNewline( pdf []byte ) ([]byte, error) {

	result := []uint8{}
	i := 0
	for i < len(pdf) {
		if pdf[i] == byte('\r') {
			if i + 1 < len(pdf) && pdf[ i + 1 ] == byte('\n') {
				// found zeros sequence
				result = append( result, 0 )
				i++
			}
		} else if pdf[i] == byte('\n') {
			result = append( result, 1 )
		}
		i++
	}
	return util.DecodeFromBinary( result )
}
