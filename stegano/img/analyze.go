package img
import (
	"bytes"
	"image"

	"github.com/NightmareLynx/HIDeer/stegano/lsb"
)

type CapacityReport struct {
	Width      int
	Height     int
	Bits       int
	Bytes      int
	MaxMessage int
}

// Analyze reports how much data an image of this size can carry.
// only the header is decoded, the pixels stay untouched.
func Analyze( decoy []byte ) (*CapacityReport, error) {
	cfg, _, err := image.DecodeConfig( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	capacity, err := lsb.Capacity( cfg.Width, cfg.Height )
	if err != nil {
		return nil, err
	}
	maxMessage, err := lsb.MaxMessage( cfg.Width, cfg.Height )
	if err != nil {
		return nil, err
	}

	return &CapacityReport{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Bits:       cfg.Width * cfg.Height * 3,
		Bytes:      capacity,
		MaxMessage: maxMessage,
	}, nil
}
