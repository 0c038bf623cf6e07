package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Reparse bool
	Wire    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("TOTOML_DEBUG_CONVERT")
	d.Reparse = boolEnv("TOTOML_DEBUG_REPARSE")
	d.Wire = boolEnv("TOTOML_DEBUG_WIRE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Reparse() bool {
	return d.Reparse
}
func Wire() bool {
	return d.Wire
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
