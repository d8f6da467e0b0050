// Package weakcrypto reports uses of broken hash functions and ciphers.
package weakcrypto

import (
	"github.com/spechtlabs/lintkit/internal/rule"
	"github.com/spechtlabs/lintkit/internal/track"
)

const Doc = `detect weak cryptographic primitives

MD5 and SHA-1 are broken for collision resistance, DES and 3DES have tiny
block and key sizes, and RC4 has exploitable keystream biases. None of them
should protect data or authenticate anything.

Use instead:
- crypto/sha256 or crypto/sha512 for hashing
- crypto/aes with crypto/cipher.NewGCM for encryption
- golang.org/x/crypto/chacha20poly1305 where AES hardware is missing

Test files are not checked; fixtures often need legacy digests.`

var Descriptor = &rule.Descriptor{
	ID:               "LK1001",
	Name:             "weakcrypto",
	Title:            "detect weak cryptographic primitives",
	Message:          "%s is a weak cryptographic primitive; use %s",
	Severity:         rule.Critical,
	Category:         rule.Security,
	EnabledByDefault: true,
	Doc:              Doc,
}

var Analyzer = rule.New(Descriptor, initialize)

// replacements maps each weak primitive to the advice shown with it.
var replacements = map[track.Member]string{
	track.MustParseMember("crypto/md5.New"):                "crypto/sha256",
	track.MustParseMember("crypto/md5.Sum"):                "crypto/sha256",
	track.MustParseMember("crypto/sha1.New"):               "crypto/sha256",
	track.MustParseMember("crypto/sha1.Sum"):               "crypto/sha256",
	track.MustParseMember("crypto/des.NewCipher"):          "crypto/aes",
	track.MustParseMember("crypto/des.NewTripleDESCipher"): "crypto/aes",
	track.MustParseMember("crypto/rc4.NewCipher"):          "crypto/aes with GCM",
}

func initialize(c *rule.Context) {
	weak := make([]track.Member, 0, len(replacements))
	for m := range replacements {
		weak = append(weak, m)
	}

	calls := track.NewInvocationTracker()
	in := calls.Input(c)
	in.Args = func(s track.InvocationSite) []any {
		m, _ := track.MemberOf(s.Func)
		return []any{s.Func.Pkg().Name() + "." + s.Func.Name(), replacements[m]}
	}

	calls.Track(in,
		calls.MatchMethod(weak...),
		track.ExceptWhen(track.InTestFile[track.InvocationSite]()))
}
