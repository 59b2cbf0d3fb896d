package source

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/charlievieth/fs"

	"github.com/omnihash/omnihash/digest"
	bosherr "github.com/omnihash/omnihash/errors"
	"github.com/omnihash/omnihash/httpclient"
)

// Source is one hashable input: an ordered, non-restartable byte
// stream plus its declared size, if known. Body is owned by whoever
// drains it and must be closed exactly once.
type Source struct {
	Name string
	Hint digest.SizeHint
	Body io.ReadCloser
}

func FromString(s string) Source {
	return Source{
		Name: s,
		Hint: digest.KnownSize(int64(len(s))),
		Body: io.NopCloser(strings.NewReader(s)),
	}
}

// FromStdin has no size hint; stdin cannot predict how many bytes are
// coming.
func FromStdin(stdin io.Reader) Source {
	return Source{
		Name: "standard input",
		Hint: digest.UnknownSize(),
		Body: io.NopCloser(stdin),
	}
}

func FromFile(path string) (Source, error) {
	file, err := fs.Open(path)
	if err != nil {
		return Source{}, bosherr.WrapErrorf(err, "Opening file '%s'", path)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close() //nolint:errcheck
		return Source{}, bosherr.WrapErrorf(err, "Stating file '%s'", path)
	}

	return Source{
		Name: path,
		Hint: digest.KnownSize(stat.Size()),
		Body: file,
	}, nil
}

// FromURL fetches the resource and uses Content-Length as the size
// hint when the server declared one.
func FromURL(client httpclient.RetryClient, rawURL string) (Source, error) {
	resp, err := client.Get(rawURL)
	if err != nil {
		return Source{}, bosherr.WrapErrorf(err, "Fetching URL '%s'", rawURL)
	}

	if resp.StatusCode != 200 {
		resp.Body.Close() //nolint:errcheck
		return Source{}, bosherr.Errorf("Fetching URL '%s': response returned %d", rawURL, resp.StatusCode)
	}

	hint := digest.UnknownSize()
	if resp.ContentLength >= 0 {
		hint = digest.KnownSize(resp.ContentLength)
	}

	return Source{
		Name: rawURL,
		Hint: hint,
		Body: resp.Body,
	}, nil
}

// IsURL reports whether the argument parses as an absolute http(s)
// URL, so it gets fetched rather than treated as a file or string.
func IsURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func Exists(path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func IsDirectory(path string) bool {
	stat, err := fs.Stat(path)
	return err == nil && stat.IsDir()
}

// IsPiped reports whether the reader is fed by a pipe or redirection
// rather than an interactive terminal.
func IsPiped(file *os.File) bool {
	stat, err := file.Stat()
	if err != nil {
		return false
	}

	return stat.Mode()&os.ModeCharDevice == 0
}
