package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeExample(t *testing.T) {
	got := Compose(Parts{
		VibeName:   "cyberpunk",
		SeasonName: "winter",
		VibeDesc:   "neon rain falls on empty streets",
		SeasonDesc: "snow blankets the rooftops",
	})
	want := "write a prompt for an image generation language model using the folowing statement, " +
		"Flynn tower shows like a beacon amid A cyberpunk scene, neon rain falls on empty streets, " +
		"in winter, snow blankets the rooftops. Write only the prompt."
	assert.Equal(t, want, got)
}

func TestComposeMinimal(t *testing.T) {
	got := Compose(Parts{VibeName: "noir", SeasonName: "autumn"})
	assert.Equal(t, InstructionPrefix+"A noir scene, in autumn"+InstructionSuffix, got)
}

func TestClausesOrder(t *testing.T) {
	p := Parts{
		VibeName:        "cyberpunk",
		SeasonName:      "winter",
		VibeDesc:        "V",
		SeasonDesc:      "S",
		EventDesc:       "a parade",
		PageContextDesc: "P",
	}
	assert.Equal(t, []string{"A cyberpunk scene", "V", "in winter", "S", "featuring a parade", "P"}, Clauses(p))
	assert.Equal(t, "A cyberpunk scene, V, in winter, S, featuring a parade, P", Statement(p))
}

func TestOptionalClausesPresence(t *testing.T) {
	full := Parts{
		VibeName:        "vapor",
		SeasonName:      "summer",
		VibeDesc:        "pastel haze",
		SeasonDesc:      "long days",
		EventDesc:       "fireworks",
		PageContextDesc: "mountain trails",
	}
	optional := []struct {
		text  string
		clear func(p *Parts)
	}{
		{"pastel haze", func(p *Parts) { p.VibeDesc = "" }},
		{"long days", func(p *Parts) { p.SeasonDesc = "" }},
		{"featuring fireworks", func(p *Parts) { p.EventDesc = "" }},
		{"mountain trails", func(p *Parts) { p.PageContextDesc = "" }},
	}
	for _, o := range optional {
		p := full
		assert.Contains(t, Compose(p), o.text)
		o.clear(&p)
		got := Compose(p)
		assert.NotContains(t, got, o.text)
		assert.Contains(t, got, "A vapor scene")
		assert.Contains(t, got, "in summer")
		assert.True(t, strings.HasPrefix(got, InstructionPrefix))
		assert.True(t, strings.HasSuffix(got, InstructionSuffix))
	}
}

func TestComposePassesTextVerbatim(t *testing.T) {
	got := Compose(Parts{VibeName: `{{.x}} <b>`, SeasonName: "winter", EventDesc: `"quotes" & 100%`})
	assert.Contains(t, got, `A {{.x}} <b> scene`)
	assert.Contains(t, got, `featuring "quotes" & 100%`)
}

func TestTemplateRender(t *testing.T) {
	tpl, err := ParseTemplate(`Describe {{ .Statement }} ({{ len .Clauses }} clauses) {{ .Vibe | toUpper }}`)
	require.NoError(t, err)

	got, err := tpl.Render(Parts{VibeName: "cyberpunk", SeasonName: "winter", EventDesc: "a parade"})
	require.NoError(t, err)
	assert.Equal(t, "Describe A cyberpunk scene, in winter, featuring a parade (3 clauses) CYBERPUNK", got)
}

func TestTemplateFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "instruction.tmpl")
	require.NoError(t, os.WriteFile(file, []byte("  {{.Season}}: {{.Statement}}\n"), 0o644))

	tpl, err := ParseTemplate("@" + file)
	require.NoError(t, err)
	got, err := tpl.Render(Parts{VibeName: "noir", SeasonName: "winter"})
	require.NoError(t, err)
	assert.Equal(t, "winter: A noir scene, in winter", got)
}

func TestTemplateErrors(t *testing.T) {
	_, err := ParseTemplate("{{ .Statement ")
	assert.Error(t, err)

	_, err = ParseTemplate("@" + filepath.Join(t.TempDir(), "missing.tmpl"))
	assert.Error(t, err)

	tpl, err := ParseTemplate("{{ .Unknown }}")
	require.NoError(t, err)
	_, err = tpl.Render(Parts{VibeName: "noir", SeasonName: "winter"})
	assert.Error(t, err)
}
