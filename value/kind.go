package value

import "fmt"

// Kind enumerates the runtime types a pipeline Value can take.
type Kind int

const (
	InvalidKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BinaryKind
	DurationKind
	DateKind
	FileSizeKind
	RangeKind
	ListKind
	RecordKind
	BlockKind
	NothingKind
	ErrorKind
	CellPathKind
	CustomKind
)

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
		BinaryKind,
		DurationKind,
		DateKind,
		FileSizeKind,
		RangeKind,
		ListKind,
		RecordKind,
		BlockKind,
		NothingKind,
		ErrorKind,
		CellPathKind,
		CustomKind,
	}
}

var kindStrings = map[Kind]string{
	BoolKind:     "bool",
	IntKind:      "int",
	FloatKind:    "float",
	StringKind:   "string",
	BinaryKind:   "binary",
	DurationKind: "duration",
	DateKind:     "date",
	FileSizeKind: "filesize",
	RangeKind:    "range",
	ListKind:     "list",
	RecordKind:   "record",
	BlockKind:    "block",
	NothingKind:  "nothing",
	ErrorKind:    "error",
	CellPathKind: "cell path",
	CustomKind:   "custom",
}

func (k Kind) String() string {
	s, ok := kindStrings[k]
	if !ok {
		return "<invalid kind>"
	}
	return s
}

// IsContainer reports whether values of this kind hold nested values.
func (k Kind) IsContainer() bool {
	switch k {
	case ListKind, RecordKind:
		return true
	}
	return false
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindStrings[k]
	if !ok {
		return nil, fmt.Errorf("invalid kind %d", int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	s := string(d)
	for kind, str := range kindStrings {
		if s == str {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", s)
}
