package archive
import (
	"io"
	"fmt"
	"bytes"
	"strings"
	"archive/zip"
	"encoding/base64"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

// the archive comment lives in the end of central directory record
// and is limited to an unsigned 16 bit length
const maxCommentSize = 0xFFFF

var ErrInvalidZip = fmt.Errorf("Not a valid zip archive.")

/*
 * The payload rides in the archive comment, the same trick the mp3
 * carrier plays with id3v2 tags. Entries are copied raw, so the stored
 * files keep their original compression and checksums.
 */
func Hide( description string, decoy, data []byte ) ([]byte, error) {

	reader, err := zip.NewReader( bytes.NewReader( decoy ), int64(len(decoy)) )
	if err != nil {
		return nil, ErrInvalidZip
	}

	comment := description + ":" + base64.StdEncoding.EncodeToString( data )
	if len(comment) > maxCommentSize {
		return nil, util.ErrNotEnoughSpace
	}

	var buf bytes.Buffer
	writer := zip.NewWriter( &buf )
	if err = writer.SetComment( comment ); err != nil {
		return nil, err
	}

	for _, f := range reader.File {
		src, err := f.OpenRaw()
		if err != nil {
			return nil, err
		}
		dst, err := writer.CreateRaw( &f.FileHeader )
		if err != nil {
			return nil, err
		}
		if _, err = io.Copy( dst, src ); err != nil {
			return nil, err
		}
	}

	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Reveal( description string, decoy []byte ) ([]byte, error) {

	reader, err := zip.NewReader( bytes.NewReader( decoy ), int64(len(decoy)) )
	if err != nil {
		return nil, ErrInvalidZip
	}

	marker := description + ":"
	if strings.HasPrefix( reader.Comment, marker ) == false {
		return nil, util.ErrNoHiddenMessage
	}
	return base64.StdEncoding.DecodeString( strings.TrimPrefix( reader.Comment, marker ) )
}
