package img
import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func makeTestImage( width, height int ) *image.RGBA {
	img := image.NewRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA( x, y, color.RGBA{
				R: uint8( (x * 17) ^ (y * 31) ),
				G: uint8( (x * 43) + (y * 13) ),
				B: uint8( (x * 7) ^ (y * 11) ),
				A: 255,
			})
		}
	}
	return img
}

func makeTestPNG( t *testing.T, width, height int ) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, makeTestImage( width, height ) ); err != nil {
		t.Fatalf("Failed to create a png decoy: %v", err)
	}
	return buf.Bytes()
}

func makeTestBMP( t *testing.T, width, height int ) []byte {
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, makeTestImage( width, height ) ); err != nil {
		t.Fatalf("Failed to create a bmp decoy: %v", err)
	}
	return buf.Bytes()
}

func makeTestGif( t *testing.T, width, height int ) []byte {
	frame := image.NewPaletted( image.Rect( 0, 0, width, height ), palette.Plan9 )
	for i := range frame.Pix {
		frame.Pix[i] = uint8( i * 31 )
	}

	buf := new(bytes.Buffer)
	g := &gif.GIF{
		Image: []*image.Paletted{ frame },
		Delay: []int{ 0 },
	}
	if err := gif.EncodeAll( buf, g ); err != nil {
		t.Fatalf("Failed to create a gif decoy: %v", err)
	}
	return buf.Bytes()
}

func makeTestJpeg( t *testing.T, width, height int ) []byte {
	buf := new(bytes.Buffer)
	opts := &jpeg.Options{ Quality: 90 }
	if err := jpeg.Encode( buf, makeTestImage( width, height ), opts ); err != nil {
		t.Fatalf("Failed to create a jpeg decoy: %v", err)
	}
	return buf.Bytes()
}

func TestHideRevealDispatch( t *testing.T ) {
	decoys := [][]byte{
		makeTestPNG( t, 100, 100 ),
		makeTestBMP( t, 100, 100 ),
		makeTestGif( t, 100, 100 ),
		makeTestJpeg( t, 256, 256 ),
	}
	data := []byte("Hello world!")

	for i, decoy := range decoys {
		enc, err := Hide( decoy, data )
		if err != nil {
			t.Errorf("Failed to hide data in decoy %d: %v", i, err)
			continue
		}
		dec, err := Reveal( enc )
		if err != nil {
			t.Errorf("Failed to reveal data from decoy %d: %v", i, err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}

	if _, err := Hide( []byte("plain text, not an image"), data ); err == nil {
		t.Errorf("Expected an error for an unsupported format")
	}
	if _, err := Reveal( []byte("plain text, not an image") ); err == nil {
		t.Errorf("Expected an error for an unsupported format")
	}
}

func TestHideToFormat( t *testing.T ) {
	data := []byte("Hello world!")

	// a lossy decoy becomes a lossless container and the bits survive
	enc, err := HideToFormat( "png", makeTestJpeg( t, 256, 256 ), data )
	if err != nil {
		t.Fatalf("Failed to hide data in a transcoded decoy: %v", err)
	}
	dec, err := RevealFromPNG( enc )
	if err != nil {
		t.Errorf("Failed to reveal data: %v", err)
	} else if bytes.Equal( data, dec ) == false {
		t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
	}

	// the other way around goes through the dct coefficients
	enc, err = HideToFormat( "jpeg", makeTestPNG( t, 256, 256 ), data )
	if err != nil {
		t.Fatalf("Failed to hide data in a jpeg output: %v", err)
	}
	dec, err = RevealFromJpeg( enc )
	if err != nil {
		t.Errorf("Failed to reveal data: %v", err)
	} else if bytes.Equal( data, dec ) == false {
		t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
	}

	enc, err = HideToFormat( "bmp", makeTestPNG( t, 100, 100 ), data )
	if err != nil {
		t.Fatalf("Failed to hide data in a bmp output: %v", err)
	}
	if dec, err = RevealFromBMP( enc ); err != nil {
		t.Errorf("Failed to reveal data: %v", err)
	} else if bytes.Equal( data, dec ) == false {
		t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
	}

	// the gif path rewrites palette indices, a png decoy cannot feed it
	if _, err = HideToFormat( "gif", makeTestPNG( t, 100, 100 ), data ); err == nil {
		t.Errorf("Expected an error for a non-gif decoy")
	}
	if _, err = HideToFormat( "webp", makeTestPNG( t, 100, 100 ), data ); err == nil {
		t.Errorf("Expected an error for an unsupported format")
	}
}
