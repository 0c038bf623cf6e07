package totoml

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	gotomlv2 "github.com/pelletier/go-toml/v2"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fluxpipe/totoml/toml"
	"github.com/fluxpipe/totoml/value"
)

func mustExport(t *testing.T, v *value.Value, opts ...Option) string {
	t.Helper()
	out, err := Export(context.Background(), v, opts...)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	return out
}

func wantText(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(want, got, false)
	t.Errorf("output differs (want vs got):\n%s", diffCfg.DiffPrettyText(diffs))
}

func rec(cols []string, vals ...*value.Value) *value.Value {
	return value.FromRecord(cols, vals)
}

func TestExportRecord(t *testing.T) {
	v := rec(
		[]string{"foo", "bar", "count", "ratio", "on"},
		value.FromString("1"),
		value.FromString("2"),
		value.FromInt(3),
		value.FromFloat(0.5),
		value.FromBool(true),
	)
	got := mustExport(t, v)
	wantText(t, got, `foo = "1"
bar = "2"
count = 3
ratio = 0.5
on = true
`)

	node, err := Convert(context.Background(), v)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != toml.TableType {
		t.Fatalf("root is %s", node.Type)
	}
	wantKeys := []string{"foo", "bar", "count", "ratio", "on"}
	if d := cmp.Diff(wantKeys, node.Keys); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestSingleTableUnwrapLaw(t *testing.T) {
	one := rec([]string{"a"}, value.FromInt(1))
	direct := mustExport(t, one)
	listed := mustExport(t, value.FromList(one))
	if direct != listed {
		t.Errorf("unwrap law broken:\ndirect %q\nlisted %q", direct, listed)
	}
	wantText(t, direct, "a = 1\n")
}

func TestArrayOfTablesNeverUnwrapped(t *testing.T) {
	got := mustExport(t, value.FromList(
		rec([]string{"a"}, value.FromInt(1)),
		rec([]string{"b"}, value.FromInt(2)),
	))
	wantText(t, got, "[\n  { a = 1 },\n  { b = 2 },\n]\n")
}

func TestNestedListUnwrap(t *testing.T) {
	inner := rec([]string{"a"}, value.FromInt(1))
	got := mustExport(t, rec([]string{"x"}, value.FromList(inner)))
	wantText(t, got, "x = { a = 1 }\n")

	two := rec(
		[]string{"y"},
		value.FromList(
			rec([]string{"a"}, value.FromInt(1)),
			rec([]string{"b"}, value.FromInt(2)),
		),
	)
	got = mustExport(t, two)
	wantText(t, got, "y = [{ a = 1 }, { b = 2 }]\n")
}

func TestShapeErrors(t *testing.T) {
	pts := []struct {
		name string
		v    *value.Value
		kind value.Kind
	}{
		{"int root", value.FromInt(42), value.IntKind},
		{"float root", value.FromFloat(1.5), value.FloatKind},
		{"bool root", value.FromBool(true), value.BoolKind},
		{"binary root", value.FromBinary([]byte{1}), value.BinaryKind},
		{"nothing root", value.Nothing(), value.NothingKind},
		{"block root", value.FromBlock(0), value.BlockKind},
		{
			"list of ints",
			value.FromList(value.FromInt(1), value.FromInt(2), value.FromInt(3)),
			value.IntKind,
		},
		{
			"list with one bad element",
			value.FromList(
				rec([]string{"a"}, value.FromInt(1)),
				value.FromString("oops"),
			),
			value.StringKind,
		},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			_, err := Export(context.Background(), pt.v)
			if !errors.Is(err, ErrShape) {
				t.Fatalf("got %v, want ErrShape", err)
			}
			shapeErr := &ShapeError{}
			if !errors.As(err, &shapeErr) {
				t.Fatalf("no ShapeError in %v", err)
			}
			if shapeErr.Kind != pt.kind {
				t.Errorf("got kind %s, want %s", shapeErr.Kind, pt.kind)
			}
		})
	}
}

func TestShapeErrorLocation(t *testing.T) {
	bad := value.FromInt(9).At(value.NewSpan(3, 5))
	_, err := Export(context.Background(), value.FromList(
		rec([]string{"a"}, value.FromInt(1)),
		bad,
	))
	shapeErr := &ShapeError{}
	if !errors.As(err, &shapeErr) {
		t.Fatalf("got %v", err)
	}
	if shapeErr.Span != value.NewSpan(3, 5) {
		t.Errorf("got span %v", shapeErr.Span)
	}
	if !strings.Contains(err.Error(), "offset 3..5") {
		t.Errorf("message %q carries no location", err.Error())
	}
}

func TestGateRunsBeforeConversion(t *testing.T) {
	// The second element flunks the shape check, so the error value
	// nested in the first element is never reached.
	boom := errors.New("boom")
	_, err := Export(context.Background(), value.FromList(
		rec([]string{"a"}, value.FromError(boom)),
		value.FromInt(2),
	))
	if !errors.Is(err, ErrShape) {
		t.Errorf("got %v, want ErrShape", err)
	}
}

func TestReparse(t *testing.T) {
	direct := mustExport(t, rec([]string{"title"}, value.FromString("x")))
	reparsed := mustExport(t, value.FromString(`title    =    "x"`))
	wantText(t, reparsed, direct)

	got := mustExport(t, value.FromString("count = 3\n[server]\nhost = \"a\"\n"))
	wantText(t, got, "count = 3\nserver = { host = \"a\" }\n")
}

func TestReparseError(t *testing.T) {
	_, err := Export(context.Background(), value.FromString("not valid").At(value.NewSpan(5, 14)))
	if !errors.Is(err, ErrEmbedded) {
		t.Fatalf("got %v, want ErrEmbedded", err)
	}
	if errors.Is(err, ErrShape) {
		t.Errorf("embedded parse failure reported as shape error")
	}
	parseErr := &ParseError{}
	if !errors.As(err, &parseErr) {
		t.Fatalf("no ParseError in %v", err)
	}
	if parseErr.Span != value.NewSpan(5, 14) {
		t.Errorf("got span %v", parseErr.Span)
	}
}

func TestBinaryField(t *testing.T) {
	got := mustExport(t, rec([]string{"data"}, value.FromBinary([]byte{1, 2, 3})))
	wantText(t, got, "data = [1, 2, 3]\n")
}

func TestScalarRenderings(t *testing.T) {
	date := time.Date(2021, 12, 27, 9, 30, 0, 0, time.UTC)
	v := rec(
		[]string{"took", "when", "size", "path"},
		value.FromDuration(90*time.Second),
		value.FromDate(date),
		value.FromFileSize(2048),
		value.FromCellPath(value.PathKey("a"), value.PathIndex(0), value.PathKey("b")),
	)
	got := mustExport(t, v)
	wantText(t, got, `took = "1m30s"
when = "2021-12-27T09:30:00Z"
size = 2048
path = ["a", 0, "b"]
`)
}

func TestPlaceholders(t *testing.T) {
	v := rec(
		[]string{"r", "b", "n", "c"},
		value.FromRange(&value.Range{From: 1, To: 5, Step: 1, Inclusive: true}),
		value.FromBlock(3),
		value.Nothing(),
		value.FromCustom(struct{}{}),
	)
	got := mustExport(t, v)
	wantText(t, got, `r = "<Range>"
b = "<Block>"
n = "<Nothing>"
c = "<Custom Value>"
`)
}

func TestStrict(t *testing.T) {
	pts := []struct {
		name string
		v    *value.Value
		kind value.Kind
	}{
		{"range", value.FromRange(&value.Range{From: 1, To: 2}), value.RangeKind},
		{"block", value.FromBlock(0), value.BlockKind},
		{"nothing", value.Nothing(), value.NothingKind},
		{"custom", value.FromCustom(nil), value.CustomKind},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			v := rec([]string{"x"}, pt.v)
			if _, err := Export(context.Background(), v); err != nil {
				t.Fatalf("default mode failed: %v", err)
			}
			_, err := Export(context.Background(), v, Strict(true))
			if !errors.Is(err, ErrUnrepresentable) {
				t.Fatalf("got %v, want ErrUnrepresentable", err)
			}
			unrepErr := &UnrepresentableError{}
			if !errors.As(err, &unrepErr) || unrepErr.Kind != pt.kind {
				t.Errorf("got %v, want kind %s", err, pt.kind)
			}
		})
	}
}

func TestErrorPropagation(t *testing.T) {
	boom := errors.New("boom")
	pts := []struct {
		name string
		v    *value.Value
	}{
		{"root", value.FromError(boom)},
		{"record field", rec([]string{"a"}, value.FromError(boom))},
		{
			"deeply nested",
			rec([]string{"a"}, rec([]string{"b"}, value.FromList(
				rec([]string{"c"}, value.FromError(boom)),
			))),
		},
		{"list element", value.FromList(value.FromError(boom))},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			_, err := Export(context.Background(), pt.v)
			if err != boom {
				t.Errorf("got %v, want the wrapped error itself", err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	date := time.Date(2021, 12, 27, 9, 30, 0, 0, time.UTC)
	pts := []struct {
		name string
		v    *value.Value
	}{
		{
			"flat scalars",
			rec(
				[]string{"s", "i", "f", "b"},
				value.FromString("x"),
				value.FromInt(-3),
				value.FromFloat(0.25),
				value.FromBool(false),
			),
		},
		{
			"nested",
			rec(
				[]string{"server", "tags", "data", "took", "when"},
				rec([]string{"host", "port"}, value.FromString("a"), value.FromInt(8080)),
				value.FromList(value.FromString("x"), value.FromString("y")),
				value.FromBinary([]byte{7, 8}),
				value.FromDuration(time.Second),
				value.FromDate(date),
			),
		},
		{"embedded document", value.FromString("a = 1\nb = \"two\"\n")},
	}
	for _, pt := range pts {
		t.Run(pt.name, func(t *testing.T) {
			ctx := context.Background()
			first, err := Convert(ctx, pt.v)
			if err != nil {
				t.Fatal(err)
			}
			out := mustExport(t, pt.v)
			second, err := toml.Parse([]byte(out))
			if err != nil {
				t.Fatalf("output %q does not reparse: %v", out, err)
			}
			if toml.Compare(first, second) != 0 {
				t.Errorf("trees differ:\n first %s\nsecond %s", toml.MustString(first), toml.MustString(second))
			}
		})
	}
}

func TestEmptyRoots(t *testing.T) {
	wantText(t, mustExport(t, rec(nil)), "")
	wantText(t, mustExport(t, value.FromList()), "[]\n")
	wantText(t, mustExport(t, value.FromString("")), "")
}

func TestDepthGuard(t *testing.T) {
	deep := value.FromInt(1)
	for i := 0; i < 600; i++ {
		deep = rec([]string{"n"}, deep)
	}
	_, err := Export(context.Background(), deep)
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("got %v, want ErrDepth", err)
	}
	if _, err := Export(context.Background(), deep, MaxDepth(1000)); err != nil {
		t.Errorf("raised limit still fails: %v", err)
	}

	two := rec([]string{"a"}, rec([]string{"b"}, value.FromInt(1)))
	if _, err := Export(context.Background(), two, MaxDepth(2)); err != nil {
		t.Errorf("depth 2 value rejected at limit 2: %v", err)
	}
	three := rec([]string{"a"}, rec([]string{"b"}, rec([]string{"c"}, value.FromInt(1))))
	if _, err := Export(context.Background(), three, MaxDepth(2)); !errors.Is(err, ErrDepth) {
		t.Errorf("got %v, want ErrDepth", err)
	}
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list := value.FromList(rec([]string{"a"}, value.FromInt(1)))
	if _, err := Export(ctx, list); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}

	// Only top-level list elements poll the context.
	if _, err := Export(ctx, rec([]string{"a"}, value.FromInt(1))); err != nil {
		t.Errorf("record root failed: %v", err)
	}
}

func sampleValue(k value.Kind) *value.Value {
	switch k {
	case value.BoolKind:
		return value.FromBool(true)
	case value.IntKind:
		return value.FromInt(1)
	case value.FloatKind:
		return value.FromFloat(1.5)
	case value.StringKind:
		return value.FromString("s")
	case value.BinaryKind:
		return value.FromBinary([]byte{1})
	case value.DurationKind:
		return value.FromDuration(time.Second)
	case value.DateKind:
		return value.FromDate(time.Unix(0, 0).UTC())
	case value.FileSizeKind:
		return value.FromFileSize(10)
	case value.RangeKind:
		return value.FromRange(&value.Range{From: 0, To: 1})
	case value.ListKind:
		return value.FromList(value.FromInt(1))
	case value.RecordKind:
		return rec([]string{"k"}, value.FromInt(1))
	case value.BlockKind:
		return value.FromBlock(0)
	case value.NothingKind:
		return value.Nothing()
	case value.ErrorKind:
		return value.FromError(errors.New("sample"))
	case value.CellPathKind:
		return value.FromCellPath(value.PathKey("k"))
	case value.CustomKind:
		return value.FromCustom("payload")
	}
	return nil
}

func TestEveryKindClassifies(t *testing.T) {
	for _, k := range value.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v := rec([]string{"x"}, sampleValue(k))
			_, err := Export(context.Background(), v)
			if k == value.ErrorKind {
				if err == nil || err.Error() != "sample" {
					t.Errorf("got %v, want the sample error", err)
				}
				return
			}
			if err != nil {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestInvalidKindIsInternal(t *testing.T) {
	cfg := newConfig(nil)
	_, err := cfg.classify(&value.Value{Kind: value.InvalidKind}, 0)
	if !errors.Is(err, errInternal) {
		t.Errorf("got %v, want internal error", err)
	}
}

func TestOutputIsValidTOML(t *testing.T) {
	v := rec(
		[]string{"title", "count", "tags", "point"},
		value.FromString("x"),
		value.FromInt(3),
		value.FromList(value.FromString("a"), value.FromString("b")),
		rec([]string{"x", "y"}, value.FromInt(1), value.FromInt(2)),
	)
	out := mustExport(t, v)

	var m map[string]any
	if err := gotomlv2.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("independent parser rejects output %q: %v", out, err)
	}
	want := map[string]any{
		"title": "x",
		"count": int64(3),
		"tags":  []any{"a", "b"},
		"point": map[string]any{"x": int64(1), "y": int64(2)},
	}
	if d := cmp.Diff(want, m); d != "" {
		t.Errorf("content (-want +got):\n%s", d)
	}
}
