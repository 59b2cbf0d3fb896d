package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"
)

// GitObjectTypes are the content-addressed object kinds that register
// under GIT-<TYPE> algorithm names.
var GitObjectTypes = []string{"blob", "commit", "tag"}

// gitHeader is the exact byte prefix git hashes before the content:
// "<type> <decimal-length>" followed by a single NUL.
func gitHeader(objectType string, size int64) []byte {
	return []byte(fmt.Sprintf("%s %d\x00", objectType, size))
}

type gitDigester struct {
	hash hash.Hash
}

// NewGitDigester produces git object hashes. With a known size the
// header is hashed immediately and content is streamed through.
// Without one the content is slurped, since the header depends on the
// total length and must precede the content in the hash input.
// No EOL translation is performed, unlike `git hash-object`.
func NewGitDigester(objectType string, hint SizeHint) Digester {
	if !hint.Known {
		return &gitSlurpDigester{objectType: objectType}
	}

	h := sha1.New()
	h.Write(gitHeader(objectType, hint.Bytes)) //nolint:errcheck
	return &gitDigester{hash: h}
}

func (d *gitDigester) Update(chunk []byte) {
	d.hash.Write(chunk) //nolint:errcheck
}

func (d *gitDigester) Digest() string {
	return fmt.Sprintf("%x", d.hash.Sum(nil))
}

type gitSlurpDigester struct {
	objectType string
	content    []byte
}

func (d *gitSlurpDigester) Update(chunk []byte) {
	d.content = append(d.content, chunk...)
}

func (d *gitSlurpDigester) Digest() string {
	h := sha1.New()
	h.Write(gitHeader(d.objectType, int64(len(d.content)))) //nolint:errcheck
	h.Write(d.content)                                      //nolint:errcheck
	return fmt.Sprintf("%x", h.Sum(nil))
}
