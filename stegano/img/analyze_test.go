package img
import (
	"testing"
)

func TestAnalyze( t *testing.T ) {
	decoys := map[string][]byte{
		"png":  makeTestPNG( t, 100, 50 ),
		"bmp":  makeTestBMP( t, 100, 50 ),
		"jpeg": makeTestJpeg( t, 100, 50 ),
		"gif":  makeTestGif( t, 100, 50 ),
	}

	for format, decoy := range decoys {
		report, err := Analyze( decoy )
		if err != nil {
			t.Errorf("Failed to analyze %s decoy: %v", format, err)
			continue
		}
		if report.Width != 100 || report.Height != 50 {
			t.Errorf("Wrong dimensions for %s: %dx%d",
				format, report.Width, report.Height)
		}
		if report.Bits != 15000 {
			t.Errorf("Wrong bit capacity for %s: %d", format, report.Bits)
		}
		if report.Bytes != 1875 {
			t.Errorf("Wrong byte capacity for %s: %d", format, report.Bytes)
		}
		if report.MaxMessage != 1866 {
			t.Errorf("Wrong message capacity for %s: %d", format, report.MaxMessage)
		}
	}

	if _, err := Analyze( []byte("not an image at all") ); err == nil {
		t.Errorf("Expected an error for a non image buffer")
	}
}
