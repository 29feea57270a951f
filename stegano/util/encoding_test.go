package util
import (
	"bytes"
	"errors"
	"testing"
)

func TestBinaryRoundtrip( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		[]byte("HELLO"),
		bytes.Repeat([]byte("a"), 4096),
	}

	for _, data := range tests {
		stream := EncodeToBinary( data )
		if len(stream) != (len(data) + len(Delimiter)) * 8 {
			t.Errorf("Wrong stream length: %d", len(stream))
		}
		dec, err := DecodeFromBinary( stream )
		if err != nil {
			t.Errorf("Failed to decode data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Encoding spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestToBin( t *testing.T ) {
	// 'H' = 0x48, most significant bit first
	expected := []byte{ 0, 1, 0, 0, 1, 0, 0, 0 }
	got := ToBin( 'H' )
	if bytes.Equal( got, expected ) == false {
		t.Errorf("Wrong bit order: %v", got)
	}
	if FromBin( got ) != 'H' {
		t.Errorf("FromBin is not the inverse of ToBin")
	}
}

func TestFrameUnframe( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
	}

	for _, data := range tests {
		dec, err := Unframe( Frame( data ) )
		if err != nil {
			t.Errorf("Failed to unframe data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Framing spoiled the data. %v != %v", data, dec)
		}
	}

	_, err := Unframe( []byte("nothing here") )
	if errors.Is( err, ErrNoHiddenMessage ) == false {
		t.Errorf("Expected ErrNoHiddenMessage for an unframed buffer")
	}
}

func TestDecodeWithoutDelimiter( t *testing.T ) {
	stream := []byte{}
	for _, b := range []byte("no terminator here") {
		stream = append( stream, ToBin( b )... )
	}
	_, err := DecodeFromBinary( stream )
	if errors.Is( err, ErrNoHiddenMessage ) == false {
		t.Errorf("Expected ErrNoHiddenMessage, got %v", err)
	}
}

func TestDecodeInvalidUnicode( t *testing.T ) {
	stream := EncodeToBinary( []byte{ 0xff, 0xfe, 0xfd } )
	_, err := DecodeFromBinary( stream )
	if errors.Is( err, ErrInvalidEncoding ) == false {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}
}

func TestDecodeStopsAtFirstDelimiter( t *testing.T ) {
	stream := EncodeToBinary( []byte("before" + Delimiter + "after") )
	dec, err := DecodeFromBinary( stream )
	if err != nil {
		t.Errorf("Failed to decode data: %v", err)
	} else if bytes.Equal( dec, []byte("before") ) == false {
		t.Errorf("Expected truncation at the first delimiter, got %q", dec)
	}
}
