package registry

import (
	"strings"

	"github.com/omnihash/omnihash/digest"
)

// Options selects the optional registration passes.
type Options struct {
	IncludeChecksums bool
}

// Collect builds the registry by running the registration passes in
// their fixed order: the LENGTH pseudo-algorithm, the standard library
// digests, the extended digests, the git object digests, then the
// checksum digests when asked for. Earlier passes take priority over
// later ones for the same name.
func Collect(criteria Criteria, opts Options) *Factories {
	factories := NewFactories(criteria)

	factories.RegisterIfAccepted("LENGTH", digest.NewLengthDigester)
	registerAlgorithms(factories, digest.StandardAlgorithms())
	registerAlgorithms(factories, digest.ExtendedAlgorithms())
	registerGitDigesters(factories)
	if opts.IncludeChecksums {
		registerAlgorithms(factories, digest.ChecksumAlgorithms())
	}

	return factories
}

func registerAlgorithms(factories *Factories, algos []digest.Algorithm) {
	for _, algo := range algos {
		if !factories.Accepts(algo.Name) {
			continue
		}

		newHash := algo.New
		factories.RegisterIfAccepted(algo.Name, func(digest.SizeHint) digest.Digester {
			return digest.NewHashDigester(newHash())
		})
	}
}

func registerGitDigesters(factories *Factories) {
	for _, objectType := range digest.GitObjectTypes {
		objectType := objectType
		name := "GIT-" + strings.ToUpper(objectType)
		factories.RegisterIfAccepted(name, func(hint digest.SizeHint) digest.Digester {
			return digest.NewGitDigester(objectType, hint)
		})
	}
}
