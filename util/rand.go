package util
import (
	"math/big"
	"strconv"
	"crypto/rand"
)

func GenFilename( prefix string, ext string ) string {
	filename := prefix + strconv.Itoa( RandInt(100000) ) + "." + ext
	return filename
}

func RandInt( max int ) int {
	if max <= 0 {
		return 0
	}
	limit := big.NewInt( int64(max) )
	integer, err := rand.Int( rand.Reader, limit )
	if err != nil {
		return 0
	}
	return int(integer.Int64())
}
