package a

import (
	"crypto/des"
	"crypto/md5"
	"crypto/rc4"
	"crypto/sha1"
	"crypto/sha256"
)

func hashes(data []byte) {
	_ = md5.Sum(data) // want `md5.Sum is a weak cryptographic primitive; use crypto/sha256`
	h := sha1.New()   // want `sha1.New is a weak cryptographic primitive`
	_ = h
	_ = sha256.Sum256(data)
	_ = md5.Sum(data) //nolint:weakcrypto
}

func ciphers(key []byte) {
	_, _ = des.NewCipher(key)          // want `des.NewCipher is a weak cryptographic primitive; use crypto/aes`
	_, _ = des.NewTripleDESCipher(key) // want `des.NewTripleDESCipher`
	_, _ = rc4.NewCipher(key)          // want `rc4.NewCipher is a weak cryptographic primitive; use crypto/aes with GCM`

	// A function value is not a call of the primitive.
	newHash := md5.New
	_ = newHash()
}
