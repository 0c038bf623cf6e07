package toml

import "errors"

// ErrParse indicates input that is not a valid TOML document, or one
// that uses TOML constructs with no tree representation here.
var ErrParse = errors.New("toml parse error")
