package util
import (
	"fmt"
)

/*
 * shared wire format of the embedded bit stream.
 *
 * every carrier that hides a raw bit stream (png, bmp, gif, wav, flac,
 * text, the pdf newline mode) appends Delimiter to the payload and
 * expands the result to one bit per unit, most significant bit first
 * within each byte. extraction
 * folds bits back into bytes and stops at the first occurrence of
 * Delimiter. a payload that itself contains the delimiter sequence is
 * therefore truncated at that occurrence.
 */
const (
	// Delimiter marks the end of the hidden payload.
	// 9 ASCII bytes: 0x23 0x23 0x23 0x45 0x4E 0x44 0x23 0x23 0x23.
	Delimiter = "###END###"
)

var (
	// the carrier was scanned completely and no delimiter was found.
	ErrNoHiddenMessage = fmt.Errorf("No hidden message found.")

	// the recovered payload is not valid UTF-8 text.
	ErrInvalidEncoding = fmt.Errorf("Hidden data is not valid UTF-8 text.")

	// payload + delimiter needs more bits than the carrier can hold.
	ErrNotEnoughSpace = fmt.Errorf("Not enough space to embed data.")
)
