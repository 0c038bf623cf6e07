package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fluxpipe/totoml/toml"
	"github.com/fluxpipe/totoml/value"
)

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *toml.Node:
			buf := bytes.NewBuffer(nil)
			if err := toml.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		case *value.Value:
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
