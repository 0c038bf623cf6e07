package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fluxpipe/totoml/debug"
	"github.com/fluxpipe/totoml/value"
)

// Decode reads one value in its wire form from data.
func Decode(data []byte, f Format) (*value.Value, error) {
	switch f {
	case JSONFormat:
	case YAMLFormat:
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", value.ErrWire, err)
		}
		data = j
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
	v := &value.Value{}
	if err := json.Unmarshal(data, v); err != nil {
		if errors.Is(err, value.ErrWire) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", value.ErrWire, err)
	}
	if debug.Wire() {
		debug.Logf("wire: decoded %s\n", v)
	}
	return v, nil
}

// DecodeReader reads r to its end and decodes one value from it.
func DecodeReader(r io.Reader, f Format) (*value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}

// Encode renders v in its wire form.
func Encode(v *value.Value, f Format) ([]byte, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	switch f {
	case JSONFormat:
		return d, nil
	case YAMLFormat:
		return yaml.JSONToYAML(d)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// FormatForPath guesses the wire format from a file name, defaulting
// to JSON.
func FormatForPath(path string) Format {
	for _, f := range AllFormats() {
		if strings.HasSuffix(path, f.Suffix()) {
			return f
		}
	}
	if strings.HasSuffix(path, ".yml") {
		return YAMLFormat
	}
	return JSONFormat
}
