package toml

// EncodeOption configures a call to Encode.
type EncodeOption func(*EncState)

// Indent sets the indent width of multi-line arrays.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
	}
}

// EncodeColors renders output with ANSI colors from c. A nil c leaves
// output plain.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		es.colors = c
	}
}
