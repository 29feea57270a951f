package lsb
import (
	"image"
	"image/color"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

/*
 * the shared LSB codec. every lossless raster carrier hides the same
 * bit stream: payload + delimiter, one bit per color channel, pixels
 * in row-major order, red then green then blue inside each pixel. the
 * alpha channel is never touched, so transparency survives a round
 * trip untouched. the grid stores straight (not premultiplied) colors,
 * the encoders write those bytes out as they are.
 */

// Embed writes the payload bit stream into the least significant bits
// of grid. the required bit count is checked first; when the stream
// does not fit, the grid stays completely unmodified. channels past
// the last embedded bit keep their original values.
func Embed( grid *image.NRGBA, data []byte ) error {
	encoded := util.EncodeToBinary( data )

	bounds := grid.Bounds()
	width, height := bounds.Max.X, bounds.Max.Y
	if len(encoded) > width * height * 3 {
		return util.ErrNotEnoughSpace
	}

	bitIndex := 0
	for y := 0; y < height && bitIndex < len(encoded); y++ {
		for x := 0; x < width && bitIndex < len(encoded); x++ {

			px := grid.NRGBAAt( x, y )
			px.R = (px.R & 0xfe) | encoded[ bitIndex ]
			bitIndex++
			if bitIndex < len(encoded) {
				px.G = (px.G & 0xfe) | encoded[ bitIndex ]
				bitIndex++
			}
			if bitIndex < len(encoded) {
				px.B = (px.B & 0xfe) | encoded[ bitIndex ]
				bitIndex++
			}
			grid.SetNRGBA( x, y, px )
		}
	}
	return nil
}

// Extract reads the least significant bit of every color channel in
// the same order Embed writes them and folds the stream back into the
// payload. the grid itself is never modified, so calling Extract
// twice yields the same result.
func Extract( grid image.Image ) ([]byte, error) {
	encoded := []uint8{}
	bounds := grid.Bounds()
	width, height := bounds.Max.X, bounds.Max.Y

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {

			px := color.NRGBAModel.Convert( grid.At( x, y ) ).(color.NRGBA)
			encoded = append( encoded, px.R & 0x1 )
			encoded = append( encoded, px.G & 0x1 )
			encoded = append( encoded, px.B & 0x1 )
		}
	}
	return util.DecodeFromBinary( encoded )
}
