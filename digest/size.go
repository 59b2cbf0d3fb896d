package digest

// SizeHint is the declared total byte count of an input, if any.
// A zero declared size is distinct from an unknown size.
type SizeHint struct {
	Bytes int64
	Known bool
}

func KnownSize(bytes int64) SizeHint {
	return SizeHint{Bytes: bytes, Known: true}
}

func UnknownSize() SizeHint {
	return SizeHint{}
}
