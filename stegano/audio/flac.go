package audio
import (
	"io"
	"bytes"
	"github.com/mewkiz/flac"
	//"github.com/mewkiz/flac/meta"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

func HideInFlac( decoy, data []byte ) ([]byte, error) {

	bits := util.EncodeToBinary( data )

	stream, err := flac.Parse( bytes.NewReader(decoy) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	// flac is lossless, so the lsb of every decoded sample survives a
	// reencode. the stream header knows the total sample count, which
	// allows a capacity check before any frame is written.
	total := int( stream.Info.NSamples ) * int( stream.Info.NChannels )
	if total > 0 && len(bits) > total {
		return nil, util.ErrNotEnoughSpace
	}

	idx := 0
	output := bytes.NewBuffer([]byte{})

	encoder, err := flac.NewEncoder( output, stream.Info, stream.Blocks... )
	if err != nil {
		return nil, err
	}

	defer encoder.Close()

	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if err = frame.Parse(); err != nil {
			return nil, err
		}

		for _, subframe := range frame.Subframes {
			if idx >= len(bits) {
				break
			}

			for i, sample := range subframe.Samples {
				if idx >= len(bits) {
					break
				}
				subframe.Samples[i] = ( (sample >> 1) << 1 ) | int32( bits[idx] )
				idx++
			}
		}
		if err = encoder.WriteFrame( frame ); err != nil {
			return nil, err
		}
	}
	if idx < len(bits) {
		// header lied about the sample count
		return nil, util.ErrNotEnoughSpace
	}

	return output.Bytes(), nil
}

func RevealFromFlac( decoy []byte ) ([]byte, error) {

	stream, err := flac.Parse( bytes.NewReader(decoy) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	// collect the lsb of every sample in decode order
	result := []uint8{}
	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = frame.Parse(); err != nil {
			return nil, err
		}
		for _, subframe := range frame.Subframes {
			for _, sample := range subframe.Samples {
				result = append( result, uint8( sample & 0x1 ) )
			}
		}
	}

	return util.DecodeFromBinary( result )
}
