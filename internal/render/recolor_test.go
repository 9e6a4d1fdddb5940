package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const multiFillSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">` +
	`<rect width="50" height="50" fill="#000000"/>` +
	`<circle cx="75" cy="75" r="20" fill="red"/>` +
	`<path d="M0 0L10 10" fill="rgb(1,2,3)"/>` +
	`</svg>`

func TestRecolor_ReplacesEveryFill(t *testing.T) {
	out := Recolor(multiFillSVG, "#112233")

	assert.Equal(t, 3, strings.Count(out, `fill="#112233"`))
	assert.NotContains(t, out, `fill="#000000"`)
	assert.NotContains(t, out, `fill="red"`)
}

func TestRecolor_FillCountStableUnderRepeatedRecolor(t *testing.T) {
	once := Recolor(multiFillSVG, "#aaaaaa")
	twice := Recolor(once, "#bbccdd")

	assert.Equal(t, 3, strings.Count(twice, `fill=`))
	assert.Equal(t, 3, strings.Count(twice, `fill="#bbccdd"`))
}

func TestRecolor_InjectsFillWhenAbsent(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`
	out := Recolor(svg, "#445566")

	assert.Equal(t, 1, strings.Count(out, `fill=`))
	assert.True(t, strings.HasPrefix(out, `<svg fill="#445566"`), "fill must land on the root tag: %s", out)
}

func TestRecolor_PreservesOtherAttributes(t *testing.T) {
	svg := `<svg width="100" height="100"><rect stroke="blue" fill="green" rx="4"/></svg>`
	out := Recolor(svg, "#010203")

	assert.Contains(t, out, `stroke="blue"`)
	assert.Contains(t, out, `rx="4"`)
	assert.Contains(t, out, `width="100"`)
}

func TestRecolor_MalformedInputPassesThrough(t *testing.T) {
	// Not valid XML; substitution is still best-effort with no panic.
	broken := `<svg><rect fill="x"`
	assert.Equal(t, `<svg><rect fill="#000000"`, Recolor(broken, "#000000"))

	// No <svg> tag at all: returned unchanged.
	assert.Equal(t, "plain text", Recolor("plain text", "#000000"))
}
