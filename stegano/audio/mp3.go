package audio
import (
	"os"
	"bytes"
	"encoding/base64"
	id3 "github.com/bogem/id3v2/v2"

	"github.com/NightmareLynx/HIDeer/stegano/util"
)

/*
 * mp3 frames are lossy, so the payload rides in an id3v2 comment
 * frame instead of the audio itself. base64 keeps the tag readable by
 * ordinary players.
 */
func HideInMP3( description string, decoy, data []byte ) ([]byte, error) {

	// id3v2 only works with files, not readers
	tempfile, err := util.CreateTempfile( decoy )
	if err != nil {
		return nil, err
	}
	defer os.Remove( tempfile )
	defer util.ShredFile( tempfile )

	tag, err := id3.Open( tempfile, id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	comment := id3.CommentFrame{
		Encoding: id3.EncodingUTF8,
		Language: "eng",
		Description: description,
		Text: base64.StdEncoding.EncodeToString( data ),
	}
	tag.AddCommentFrame( comment )

	if err = tag.Save(); err != nil {
		return nil, err
	}
	return os.ReadFile( tempfile )
}

func RevealFromMP3( description string, decoy []byte ) ([]byte, error) {

	tag, err := id3.ParseReader( bytes.NewReader(decoy), id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	comments := tag.GetFrames( tag.CommonID("Comments") )
	for _, f := range comments {
		comment, ok := f.(id3.CommentFrame)
		if ok {
			if comment.Description == description {
				return base64.StdEncoding.DecodeString( comment.Text )
			}
		}
	}
	return nil, util.ErrNoHiddenMessage
}
