package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_ListOrder(t *testing.T) {
	r := Builtin()
	list := r.List()

	require.Len(t, list, 2)
	assert.Equal(t, "modern", list[0].ID)
	assert.Equal(t, "classic", list[1].ID)
}

func TestResolve_KnownID(t *testing.T) {
	r := Builtin()

	tpl := r.Resolve("classic")
	assert.Equal(t, "classic", tpl.ID)
	assert.Equal(t, "Classic", tpl.Name)
}

func TestResolve_UnknownIDFallsBackToFirst(t *testing.T) {
	r := Builtin()

	fallback := r.Resolve("nonexistent-id")
	first := r.Resolve("modern")
	assert.Equal(t, first, fallback)
}

func TestRegister_MissingRegionFailsFast(t *testing.T) {
	r := NewRegistry()

	incomplete := modern()
	incomplete.ID = "broken"
	delete(incomplete.Styles, "highlight")

	err := r.Register(incomplete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"highlight"`)
}

func TestRegister_MissingIDFails(t *testing.T) {
	r := NewRegistry()

	tpl := modern()
	tpl.ID = ""

	assert.Error(t, r.Register(tpl))
}

func TestRegister_DuplicateIDFails(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(modern()))
	assert.Error(t, r.Register(modern()))
}

func TestStyleFor_UnknownRegionIsEmpty(t *testing.T) {
	tpl := Builtin().Resolve("modern")

	style := tpl.StyleFor("no-such-region")
	assert.Equal(t, Style{}, style)
	assert.Equal(t, "", style.CSS())
}

func TestStyleCSS(t *testing.T) {
	style := Style{
		FontSize:     24,
		Color:        "#2196F3",
		MarginBottom: 8,
	}
	assert.Equal(t, "font-size:24pt;color:#2196F3;margin-bottom:8pt", style.CSS())
}

func TestStyleCSS_Borders(t *testing.T) {
	style := Style{
		FontSize:      16,
		BorderBottom:  "1pt solid #000",
		PaddingBottom: 8,
		MarginBottom:  8,
	}
	css := style.CSS()
	assert.Contains(t, css, "border-bottom:1pt solid #000")
	assert.Contains(t, css, "padding-bottom:8pt")
}
