package digest

import (
	"hash"
	"hash/adler32"

	"github.com/snksoft/crc"
)

type crcProfile struct {
	name   string
	params crc.Parameters
}

// Profiles follow the standard CRC catalog; check("123456789") values
// are pinned in the tests.
var crcProfiles = []crcProfile{
	{"CRC-8", crc.Parameters{Width: 8, Polynomial: 0x07, Init: 0x00, FinalXor: 0x00}},
	{"CRC-8-ITU", crc.Parameters{Width: 8, Polynomial: 0x07, Init: 0x00, FinalXor: 0x55}},
	{"CRC-16", crc.Parameters{Width: 16, Polynomial: 0x8005, ReflectIn: true, ReflectOut: true, Init: 0x0000, FinalXor: 0x0000}},
	{"CRC-16-CCITT", crc.Parameters{Width: 16, Polynomial: 0x1021, Init: 0xFFFF, FinalXor: 0x0000}},
	{"CRC-16-XMODEM", crc.Parameters{Width: 16, Polynomial: 0x1021, Init: 0x0000, FinalXor: 0x0000}},
	{"CRC-16-X25", crc.Parameters{Width: 16, Polynomial: 0x1021, ReflectIn: true, ReflectOut: true, Init: 0xFFFF, FinalXor: 0xFFFF}},
	{"CRC-24", crc.Parameters{Width: 24, Polynomial: 0x864CFB, Init: 0xB704CE, FinalXor: 0x000000}},
	{"CRC-32", crc.Parameters{Width: 32, Polynomial: 0x04C11DB7, ReflectIn: true, ReflectOut: true, Init: 0xFFFFFFFF, FinalXor: 0xFFFFFFFF}},
	{"CRC-32C", crc.Parameters{Width: 32, Polynomial: 0x1EDC6F41, ReflectIn: true, ReflectOut: true, Init: 0xFFFFFFFF, FinalXor: 0xFFFFFFFF}},
	{"CRC-32-KOOPMAN", crc.Parameters{Width: 32, Polynomial: 0x741B8CD7, ReflectIn: true, ReflectOut: true, Init: 0xFFFFFFFF, FinalXor: 0xFFFFFFFF}},
	{"CRC-64-ISO", crc.Parameters{Width: 64, Polynomial: 0x1B, ReflectIn: true, ReflectOut: true, Init: 0xFFFFFFFFFFFFFFFF, FinalXor: 0xFFFFFFFFFFFFFFFF}},
	{"CRC-64-ECMA", crc.Parameters{Width: 64, Polynomial: 0x42F0E1EBA9EA3693, ReflectIn: true, ReflectOut: true, Init: 0xFFFFFFFFFFFFFFFF, FinalXor: 0xFFFFFFFFFFFFFFFF}},
}

// ChecksumAlgorithms returns the optional checksum digests. They only
// take part in registration when checksums were asked for.
func ChecksumAlgorithms() []Algorithm {
	algos := make([]Algorithm, 0, len(crcProfiles)+1)
	for _, profile := range crcProfiles {
		params := profile.params
		algos = append(algos, Algorithm{
			Name: profile.name,
			New:  func() hash.Hash { return crc.NewHash(&params) },
		})
	}

	algos = append(algos, Algorithm{
		Name: "ADLER-32",
		New:  func() hash.Hash { return adler32.New() },
	})

	return algos
}
