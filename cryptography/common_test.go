package cryptography
import (
	"bytes"
	"encoding/base64"
	"testing"
)


func TestEncryption( t *testing.T ) {
	// generate encryption key
	key, err := GenRandom( SymKeySize )
	if err != nil {
		t.Errorf("Failed to generate encryption key: %s", err.Error())
	}
	// test data
	origData := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
	}
	// just run test for each type of possible data...
	for _, orig := range origData {
		ct, err := Encrypt( orig, key )
		if err != nil {
			t.Errorf("Failed to encrypt: %s", err.Error())
		}
		pt, err := Decrypt( ct, key )
		if err != nil {
			t.Errorf("Failed to decrypt: %s", err.Error())
		}
		if bytes.Equal( pt, orig ) == false {
			t.Errorf("[CRITICAL] Encryption changed data: %v != %v", orig, pt)
		}
	}
}

func TestInvalidKeys( t *testing.T ) {
	data := []byte("Hello world!")
	if _, err := Encrypt( data, []byte("short") ); err == nil {
		t.Errorf("Expected an error for an invalid key")
	}
	if _, err := Decrypt( data, nil ); err == nil {
		t.Errorf("Expected an error for a missing key")
	}

	key, err := GenRandom( SymKeySize )
	if err != nil {
		t.Errorf("Failed to generate encryption key: %s", err.Error())
	}
	if _, err = Decrypt( []byte("abc"), key ); err == nil {
		t.Errorf("Expected an error for truncated data")
	}
}

func TestGenRandom( t *testing.T ) {
	data, err := GenRandom( 16 )
	if err != nil || len(data) != 16 {
		t.Errorf("Failed to generate random data: %v", err)
	}
	if _, err = GenRandom( 0 ); err == nil {
		t.Errorf("Expected an error for a zero size")
	}
}

func TestSplitWithSalt( t *testing.T ) {
	salt := base64.StdEncoding.EncodeToString( []byte("0123456789abcdef") )
	pass, saltBytes, err := SplitWithSalt( salt + ":secret:with:colons" )
	if err != nil {
		t.Errorf("Failed to split password: %s", err.Error())
	}
	if string(pass) != "secret:with:colons" {
		t.Errorf("Wrong password part: %q", pass)
	}
	if bytes.Equal( saltBytes, []byte("0123456789abcdef") ) == false {
		t.Errorf("Wrong salt part: %v", saltBytes)
	}

	if _, _, err = SplitWithSalt( "nosalt" ); err == nil {
		t.Errorf("Expected an error when no salt is supplied")
	}
	if _, _, err = SplitWithSalt( "!!!notbase64:pass" ); err == nil {
		t.Errorf("Expected an error for a bad salt encoding")
	}
}

func TestDeriveKey( t *testing.T ) {
	// todo: add a fixed test value.
	password := []byte("password")
	salt := []byte("0123456789abcdef")
	key := DeriveKey( password, salt )
	if len(key) != SymKeySize {
		t.Errorf("Invalid size of output key: %d", len(key))
	}

	key2 := DeriveKey( password, salt )
	if bytes.Equal( key, key2 ) == false {
		t.Errorf("Key derivation must be deterministic.")
	}

	key3 := DeriveKey( password, []byte("fedcba9876543210") )
	if bytes.Equal( key, key3 ) == true {
		t.Errorf("Different salts must give different keys.")
	}
}
