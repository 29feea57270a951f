package text
import (
	"github.com/NightmareLynx/HIDeer/stegano/util"
)

const (
	ZeroWidthJoiner = '\u200d'	// zero-width joiner
	ZeroWidthNonJoiner = '\u200c'	// zero-width non-joiner
)

// Hide spreads the payload bits over the decoy text as zero width
// runes. the decoy is normalized first so that recomposition by an
// editor or messenger does not move the markers around.
func Hide( decoy, data []byte ) ([]byte, error) {
	fixed := util.FixUnicode( string(decoy) )
	str, err := EncodeWithUnprintable( ZeroWidthJoiner, ZeroWidthNonJoiner, EmbedMode, data, fixed )
	return []byte(str), err
}


func Reveal( decoy []byte ) ([]byte, error) {
	return DecodeFromUnprintable( ZeroWidthJoiner, ZeroWidthNonJoiner, string(decoy) )
}
