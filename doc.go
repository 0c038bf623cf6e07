// Package totoml converts dynamically typed pipeline values into TOML
// documents.
//
// The entry points are [Convert], which returns the document tree, and
// [Export], which renders it to text:
//
//	v := value.FromRecord(
//		[]string{"title"},
//		[]*value.Value{value.FromString("x")},
//	)
//	out, err := totoml.Export(ctx, v)
//	// out == "title = \"x\"\n"
//
// A conversion accepts a record, a list of records, or a string of
// TOML text at the root, and fails with ShapeError otherwise. Nested
// values of any kind convert recursively; kinds TOML cannot express
// degrade to placeholder strings unless [Strict] is set. A value that
// wraps an error fails the whole conversion with that error, verbatim.
package totoml
