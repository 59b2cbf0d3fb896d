package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Algorithm pairs a canonical upper-case name with a hash constructor.
type Algorithm struct {
	Name string
	New  func() hash.Hash
}

// StandardAlgorithms returns the general-purpose digests from the
// standard library, in registration order.
func StandardAlgorithms() []Algorithm {
	return []Algorithm{
		{Name: "MD5", New: md5.New},
		{Name: "SHA1", New: sha1.New},
		{Name: "SHA224", New: sha256.New224},
		{Name: "SHA256", New: sha256.New},
		{Name: "SHA384", New: sha512.New384},
		{Name: "SHA512", New: sha512.New},
		{Name: "SHA512-224", New: sha512.New512_224},
		{Name: "SHA512-256", New: sha512.New512_256},
	}
}

// ExtendedAlgorithms returns the externally contributed digests,
// registered after the standard ones.
func ExtendedAlgorithms() []Algorithm {
	return []Algorithm{
		{Name: "SHA3-224", New: sha3.New224},
		{Name: "SHA3-256", New: sha3.New256},
		{Name: "SHA3-384", New: sha3.New384},
		{Name: "SHA3-512", New: sha3.New512},
		{Name: "BLAKE2B-256", New: keyless(blake2b.New256)},
		{Name: "BLAKE2B-384", New: keyless(blake2b.New384)},
		{Name: "BLAKE2B-512", New: keyless(blake2b.New512)},
		{Name: "BLAKE2S-256", New: keyless(blake2s.New256)},
		{Name: "MD4", New: md4.New},
		{Name: "RIPEMD-160", New: ripemd160.New},
		{Name: "BLAKE3", New: func() hash.Hash { return blake3.New() }},
		{Name: "XXH64", New: func() hash.Hash { return xxhash.New() }},
	}
}

func keyless(newFunc func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newFunc(nil)
		if err != nil {
			panic("Internal inconsistency")
		}
		return h
	}
}
