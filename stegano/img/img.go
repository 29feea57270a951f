package img
import (
	"fmt"
	"image"
)

func Hide( decoy, data []byte ) ([]byte, error) {
	if len(decoy) < 8 {
		return nil, fmt.Errorf("Unsupported image format.")
	}
	if decoy[0] == 0x47 && decoy[1] == 0x49 && decoy[2] == 0x46 {
		// a gif image
		//fmt.Println("GIF image")
		return HideInGif( decoy, data )
	}
	if decoy[0] == 0x89 && decoy[1] == 0x50 && decoy[2] == 0x4e &&
		decoy[3] == 0x47 && decoy[4] == 0x0d && decoy[5] == 0x0a &&
		decoy[6] == 0x1a && decoy[7] == 0x0a {
		// a png image
		//fmt.Println("PNG image")
		return HideInPNG( decoy, data )
	}

	if decoy[0] == 0xff && decoy[1] == 0xd8 && decoy[2] == 0xff {
		// a jpeg image
		//fmt.Println("JPEG image")
		return HideInJpeg( decoy, data )
	}

	if decoy[0] == 0x42 && decoy[1] == 0x4d {
		// bmp image
		return HideInBMP( decoy, data )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

func Reveal( decoy []byte ) ([]byte, error) {
	if len(decoy) < 8 {
		return nil, fmt.Errorf("Unsupported image format.")
	}
	if decoy[0] == 0x47 && decoy[1] == 0x49 && decoy[2] == 0x46 {
		// a gif image
		//fmt.Println("GIF image")
		return RevealFromGif( decoy )
	}
	if decoy[0] == 0x89 && decoy[1] == 0x50 && decoy[2] == 0x4e &&
		decoy[3] == 0x47 && decoy[4] == 0x0d && decoy[5] == 0x0a &&
		decoy[6] == 0x1a && decoy[7] == 0x0a {
		// a png image
		//fmt.Println("PNG image")
		return RevealFromPNG( decoy )
	}

	if decoy[0] == 0xff && decoy[1] == 0xd8 && decoy[2] == 0xff {
		// a jpeg image
		//fmt.Println("JPEG image")
		return RevealFromJpeg( decoy )
	}
	if decoy[0] == 0x42 && decoy[1] == 0x4d {
		// bmp image
		return RevealFromBMP( decoy )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

/*
 * HideToFormat embeds data into the container named by the output
 * extension, whatever the decoy container was. A jpeg decoy saved
 * as png keeps every stego bit this way. The gif path works on
 * palette indices and so needs a gif decoy, and jpeg output goes
 * through the dct coefficients instead of the raw pixels.
 */
func HideToFormat( ext string, decoy, data []byte ) ([]byte, error) {
	switch ext {
	case "png":
		return HideInPNG( decoy, data )
	case "bmp":
		return HideInBMP( decoy, data )
	case "gif":
		return HideInGif( decoy, data )
	case "jpg", "jpeg":
		return HideInJpeg( decoy, data )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// create a straight-alpha working copy of the source image
func toNRGBA( src image.Image ) *image.NRGBA {
	bounds := src.Bounds()
	width, height := bounds.Max.X, bounds.Max.Y

	grid := image.NewNRGBA( bounds )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.Set( x, y, src.At( x, y ) )
		}
	}
	return grid
}
