package lsb
import (
	"fmt"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

var (
	// width or height is not a positive pixel count.
	ErrInvalidDimensions = fmt.Errorf("Invalid image dimensions.")
)

// Capacity returns the number of whole bytes a width x height RGB
// grid can carry at one bit per color channel.
func Capacity( width, height int ) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrInvalidDimensions
	}
	return (width * height * 3) / 8, nil
}

// MaxMessage returns the capacity left for the payload itself after
// reserving space for the delimiter. may be negative for tiny images.
func MaxMessage( width, height int ) (int, error) {
	capacity, err := Capacity( width, height )
	if err != nil {
		return 0, err
	}
	return capacity - len(util.Delimiter), nil
}
