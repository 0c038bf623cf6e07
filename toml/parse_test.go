package toml

import (
	"errors"
	"testing"
)

func TestParseKeepsOrder(t *testing.T) {
	node, err := Parse([]byte("b = 2\na = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != TableType {
		t.Fatalf("root is %s", node.Type)
	}
	if len(node.Keys) != 2 || node.Keys[0] != "b" || node.Keys[1] != "a" {
		t.Fatalf("keys %v", node.Keys)
	}
	if got := MustString(node); got != "b = 2\na = 1" {
		t.Errorf("got %q", got)
	}
}

func TestParseSections(t *testing.T) {
	in := `x = 1

[server]
host = "a"
port = 8080
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Keys) != 2 || node.Keys[0] != "x" || node.Keys[1] != "server" {
		t.Fatalf("keys %v", node.Keys)
	}
	server := node.Get("server")
	if server == nil || server.Type != InlineTableType {
		t.Fatalf("server %v", server)
	}
	if got := server.Get("host"); got == nil || got.Str != "a" {
		t.Errorf("host %v", got)
	}
	if got := server.Get("port"); got == nil || got.Int != 8080 {
		t.Errorf("port %v", got)
	}
}

func TestParseDatetimes(t *testing.T) {
	in := `odt = 1979-05-27T07:32:00Z
ld = 1979-05-27
lt = 07:32:00
ldt = 1979-05-27T07:32:00
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	wants := map[string]string{
		"odt": "1979-05-27T07:32:00Z",
		"ld":  "1979-05-27",
		"lt":  "07:32:00",
		"ldt": "1979-05-27T07:32:00",
	}
	for key, want := range wants {
		got := node.Get(key)
		if got == nil || got.Type != StringType {
			t.Errorf("%s: %v", key, got)
			continue
		}
		if got.Str != want {
			t.Errorf("%s: got %q, want %q", key, got.Str, want)
		}
	}
}

func TestParseArrayOfTables(t *testing.T) {
	in := `[[servers]]
host = "a"

[[servers]]
host = "b"
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	servers := node.Get("servers")
	if servers == nil || servers.Type != ArrayType {
		t.Fatalf("servers %v", servers)
	}
	if len(servers.Values) != 2 {
		t.Fatalf("%d servers", len(servers.Values))
	}
	for i, want := range []string{"a", "b"} {
		el := servers.Values[i]
		if el.Type != InlineTableType {
			t.Fatalf("element %d is %s", i, el.Type)
		}
		if got := el.Get("host"); got == nil || got.Str != want {
			t.Errorf("element %d host %v", i, got)
		}
	}
}

func TestParseInlineAndArrays(t *testing.T) {
	in := `point = { x = 1, y = 2 }
nums = [1, 2, 3]
mixed = [{ x = 1 }, { x = 2 }]
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	point := node.Get("point")
	if point == nil || point.Type != InlineTableType || len(point.Keys) != 2 {
		t.Fatalf("point %v", point)
	}
	nums := node.Get("nums")
	if nums == nil || nums.Type != ArrayType || len(nums.Values) != 3 {
		t.Fatalf("nums %v", nums)
	}
	if nums.Values[2].Int != 3 {
		t.Errorf("nums[2] = %d", nums.Values[2].Int)
	}
	mixed := node.Get("mixed")
	if mixed == nil || mixed.Type != ArrayType || len(mixed.Values) != 2 {
		t.Fatalf("mixed %v", mixed)
	}
	if mixed.Values[1].Type != InlineTableType {
		t.Errorf("mixed[1] is %s", mixed.Values[1].Type)
	}
}

func TestParseEmpty(t *testing.T) {
	node, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != TableType || len(node.Keys) != 0 {
		t.Errorf("got %v", node)
	}
	if got := MustString(node); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestParseBad(t *testing.T) {
	pts := []string{
		"= 1",
		"a =",
		"a = 1\na = 2",
		"[t\nx = 1",
		"big = 9223372036854775808",
	}
	for _, in := range pts {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: got %v, want ErrParse", in, err)
		}
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	in := `title = "example"
count = 3
servers = [
  { host = "a", port = 1 },
  { host = "b", port = 2 },
]
`
	first, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse([]byte(MustString(first)))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(first, second) != 0 {
		t.Errorf("trees differ:\n first %s\nsecond %s", MustString(first), MustString(second))
	}
}
