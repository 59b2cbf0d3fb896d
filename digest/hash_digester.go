package digest

import (
	"fmt"
	"hash"
)

type hashDigester struct {
	hash hash.Hash
}

// NewHashDigester wraps any hash.Hash as a Digester producing
// lower-case hex. CRC hashes come out zero-padded to their byte width,
// consistent with the cryptographic digesters.
func NewHashDigester(h hash.Hash) Digester {
	return &hashDigester{hash: h}
}

func (d *hashDigester) Update(chunk []byte) {
	d.hash.Write(chunk) //nolint:errcheck
}

func (d *hashDigester) Digest() string {
	return fmt.Sprintf("%x", d.hash.Sum(nil))
}
