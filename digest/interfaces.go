package digest

// Digester accumulates a byte stream into a textual digest.
// Update must not be called after Digest.
type Digester interface {
	Update(chunk []byte)
	Digest() string
}

// Factory builds a fresh Digester for one input. The size hint carries
// the declared byte count for sources that know it up front.
type Factory func(hint SizeHint) Digester

var _ Digester = &hashDigester{}
var _ Digester = &lengthDigester{}
var _ Digester = &gitDigester{}
var _ Digester = &gitSlurpDigester{}
