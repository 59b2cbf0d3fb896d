package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"

	bosherr "github.com/omnihash/omnihash/errors"
)

type Generator interface {
	Generate() (string, error)
}

type uuidV4Generator struct{}

func NewGenerator() Generator {
	return uuidV4Generator{}
}

func (gen uuidV4Generator) Generate() (string, error) {
	uuid, err := gouuid.NewV4()
	if err != nil {
		return "", bosherr.WrapError(err, "Generating V4 uuid")
	}

	return uuid.String(), nil
}
