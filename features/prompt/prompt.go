package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/ttombbab/vibeprompt/util"
	"github.com/ttombbab/vibeprompt/util/helper"
)

const (
	// Clause separator of the statement.
	Separator = ", "

	// The statement is inserted between prefix and suffix.
	// "folowing" is part of the existing instruction text, downstream consumers rely on it.
	InstructionPrefix = "write a prompt for an image generation language model using the folowing statement, " +
		"Flynn tower shows like a beacon amid "
	InstructionSuffix = ". Write only the prompt."
)

// Parts of an instruction. Empty description fields are absent and omitted.
type Parts struct {
	VibeName        string `json:"vibe"`
	SeasonName      string `json:"season"`
	VibeDesc        string `json:"vibe_description,omitempty"`
	SeasonDesc      string `json:"season_description,omitempty"`
	EventDesc       string `json:"event_description,omitempty"`
	PageContextDesc string `json:"page_context_description,omitempty"`
}

// Clauses returns the statement clauses in their fixed order:
// vibe name, vibe description, season name, season description, event, page context.
func Clauses(p Parts) []string {
	clauses := []string{fmt.Sprintf("A %s scene", p.VibeName)}
	if p.VibeDesc != "" {
		clauses = append(clauses, p.VibeDesc)
	}
	clauses = append(clauses, fmt.Sprintf("in %s", p.SeasonName))
	if p.SeasonDesc != "" {
		clauses = append(clauses, p.SeasonDesc)
	}
	if p.EventDesc != "" {
		clauses = append(clauses, fmt.Sprintf("featuring %s", p.EventDesc))
	}
	if p.PageContextDesc != "" {
		clauses = append(clauses, p.PageContextDesc)
	}
	return clauses
}

// Statement joins the clauses of p.
func Statement(p Parts) string {
	return strings.Join(Clauses(p), Separator)
}

// Compose returns the instruction text sent to the text generation model.
func Compose(p Parts) string {
	return InstructionPrefix + Statement(p) + InstructionSuffix
}

// Template is a user provided instruction template.
type Template struct {
	tpl *template.Template
}

// TemplateData is the data a Template is executed with.
type TemplateData struct {
	Statement   string
	Clauses     []string
	Vibe        string
	Season      string
	VibeDesc    string
	SeasonDesc  string
	Event       string
	PageContext string
}

// ParseTemplate parses a Go text template. See helper.GetTemplate for the "@file" syntax.
func ParseTemplate(tpl string) (*Template, error) {
	t, err := helper.GetTemplate(tpl, true)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &Template{tpl: t}, nil
}

// Render executes the template for p. The result is trim spaced.
func (t *Template) Render(p Parts) (string, error) {
	return util.ExecTemplate(t.tpl, TemplateData{
		Statement:   Statement(p),
		Clauses:     Clauses(p),
		Vibe:        p.VibeName,
		Season:      p.SeasonName,
		VibeDesc:    p.VibeDesc,
		SeasonDesc:  p.SeasonDesc,
		Event:       p.EventDesc,
		PageContext: p.PageContextDesc,
	})
}
