package toml

import (
	"strings"

	"github.com/fatih/color"
)

type Colorable struct {
	Type Type
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range Types() {
		able := Colorable{
			Type: t,
			Attr: KeyColor,
		}
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = IntegerType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = FloatType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = BoolType
	colors.Map[able] = color.CyanString

	able.Type = StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
