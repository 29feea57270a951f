package audio
import (
	"fmt"
	"encoding/binary"
)

/*
 * minimal RIFF/WAVE chunk walk. only canonical PCM files are
 * supported: uncompressed, 16 bits per sample. the sample bytes are
 * edited in place, so a stego file matches its decoy byte for byte
 * outside of the data chunk.
 */

var (
	ErrInvalidWav     = fmt.Errorf("Invalid WAV file.")
	ErrUnsupportedWav = fmt.Errorf("Unsupported WAV encoding.")
)

type waveInfo struct {
	channels	uint16
	sampleRate	uint32
	bitsPerSample	uint16
	data		[]byte	// window into the raw file
}

func parseWave( raw []byte ) (*waveInfo, error) {
	if len(raw) < 12 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, ErrInvalidWav
	}

	info := &waveInfo{}
	offset := 12
	for offset + 8 <= len(raw) {
		id := string(raw[offset : offset+4])
		size := int( binary.LittleEndian.Uint32( raw[offset+4 : offset+8] ) )
		body := offset + 8
		if size < 0 || body + size > len(raw) {
			return nil, ErrInvalidWav
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, ErrInvalidWav
			}
			format := binary.LittleEndian.Uint16( raw[body : body+2] )
			info.channels = binary.LittleEndian.Uint16( raw[body+2 : body+4] )
			info.sampleRate = binary.LittleEndian.Uint32( raw[body+4 : body+8] )
			info.bitsPerSample = binary.LittleEndian.Uint16( raw[body+14 : body+16] )
			if format != 1 || info.bitsPerSample != 16 {
				return nil, ErrUnsupportedWav
			}
		case "data":
			info.data = raw[body : body+size]
		}

		// chunks are word aligned
		offset = body + size + (size & 1)
	}

	if info.bitsPerSample == 0 || info.data == nil {
		return nil, ErrInvalidWav
	}
	return info, nil
}
