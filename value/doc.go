// Package value models dynamically typed pipeline values.
//
// A [Value] pairs a [Kind] with the payload for that kind and a [Span]
// locating it in the source that produced it. Records are ordered:
// field names live in Cols and field values in Vals, index for index.
//
// # Usage
//
//	v := value.FromRecord(
//		[]string{"name", "size"},
//		[]*value.Value{value.FromString("a.txt"), value.FromFileSize(2048)},
//	)
//	fmt.Println(v) // {name: a.txt, size: 2.0 KiB}
//
// Values have a JSON wire form, produced and consumed by
// [Value.MarshalJSON] and [Value.UnmarshalJSON]. The wire form tags
// each value with its kind:
//
//	{"kind":"record","cols":["on"],"vals":[{"kind":"bool","bool":true}]}
//
// # Related Packages
//
// Package wire decodes values from JSON or YAML streams. The totoml
// package converts values into TOML documents.
package value
