package audio
import (
	"testing"
)

/*
 * flac round trips need a real encoded stream as decoy, which is not
 * worth a binary fixture here. the parser error paths still deserve
 * coverage.
 */
func TestFlacRejectsGarbage( t *testing.T ) {
	if _, err := HideInFlac( []byte("fLaCbut not really"), []byte("data") ); err == nil {
		t.Errorf("Expected an error for a malformed flac file")
	}
	if _, err := RevealFromFlac( []byte("fLaCbut not really") ); err == nil {
		t.Errorf("Expected an error for a malformed flac file")
	}
	if _, err := RevealFromFlac( []byte{} ); err == nil {
		t.Errorf("Expected an error for an empty buffer")
	}
}
