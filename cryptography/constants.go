package cryptography
import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// symmetric encryption parameters
	SymKeySize = 32
	TagSize = 16
	NonceSize = chacha20poly1305.NonceSize

	// amount of fresh salt bytes behind the gensalt command
	SaltSize = 16
)
