// Package toml provides an ordered document tree for TOML together
// with an encoder and a parser.
//
// The tree is built from [Node] values. A node is a scalar, an array,
// an inline table, or a top-level table. Tables keep entries in
// insertion order and the encoder emits them in that order, which is
// what sets this package apart from marshal-style TOML libraries that
// sort keys.
//
// # Usage
//
// Build a document and render it:
//
//	doc := toml.Table()
//	doc.Append("title", toml.FromString("example"))
//	doc.Append("count", toml.FromInt(3))
//	err := toml.Encode(doc, os.Stdout)
//
// which prints
//
//	title = "example"
//	count = 3
//
// [Parse] reads TOML text back into a tree, recovering document order
// from source positions. [Compare] defines a total order over trees;
// two trees are semantically equal when Compare returns 0.
//
// # Related Packages
//
// The totoml package converts pipeline values into trees of this
// package. Package value defines those pipeline values.
package toml
