// Package pipeline assembles an image generation instruction from random
// description fragments and asks a text generation model to turn it into the final image prompt.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ttombbab/vibeprompt/config"
	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/features/fragment"
	"github.com/ttombbab/vibeprompt/features/llm"
	"github.com/ttombbab/vibeprompt/features/prompt"
	"github.com/ttombbab/vibeprompt/features/season"
)

// TextGenerator is implemented by *llm.Client.
type TextGenerator interface {
	Generate(ctx context.Context, baseUrl string, model string, prompt string) (string, error)
}

// Layout locates description files.
type Layout struct {
	VibesDir   string `json:"vibes_dir"`
	SeasonsDir string `json:"seasons_dir"`
	EventsFile string `json:"events_file"`
}

// Generator runs the pipeline. Every field but Fragments and Client is optional.
type Generator struct {
	Fragments *fragment.Source
	Season    season.Resolver // Defaults to season.Default
	Client    TextGenerator
	Layout    Layout
	Model     string
	BaseUrl   string
	// If set, replaces the fixed instruction text.
	Template *prompt.Template
	Logger   log.FieldLogger // Defaults to logrus standard logger
	// Progress output (assembled instruction and generated prompt). Nil discards it.
	Output io.Writer
}

// Assembly is the result of the fragment sampling and composing stage.
type Assembly struct {
	prompt.Parts
	Instruction string `json:"instruction"`
}

// Result of one pipeline run.
type Result struct {
	Assembly
	Model       string `json:"model"`
	ImagePrompt string `json:"image_prompt,omitempty"`
	Ok          bool   `json:"ok"`
}

func (g *Generator) logger() log.FieldLogger {
	if g.Logger == nil {
		return log.StandardLogger()
	}
	return g.Logger
}

func (g *Generator) output() io.Writer {
	if g.Output == nil {
		return io.Discard
	}
	return g.Output
}

// Assemble samples the vibe, season, event and (if pageContextFile is not empty) page context
// descriptions and composes the instruction. Unavailable descriptions are omitted.
func (g *Generator) Assemble(vibe string, pageContextFile string) (*Assembly, error) {
	resolver := g.Season
	if resolver == nil {
		resolver = season.Default
	}
	seasonName := resolver.Current()

	parts := prompt.Parts{VibeName: vibe, SeasonName: seasonName}
	parts.VibeDesc, _ = g.Fragments.Sample(fragment.VibeFile(g.Layout.VibesDir, vibe))
	parts.SeasonDesc, _ = g.Fragments.Sample(fragment.SeasonFile(g.Layout.SeasonsDir, seasonName))
	parts.EventDesc, _ = g.Fragments.Sample(g.Layout.EventsFile)
	if pageContextFile != "" {
		parts.PageContextDesc, _ = g.Fragments.Sample(pageContextFile)
	}

	assembly := &Assembly{Parts: parts}
	if g.Template != nil {
		instruction, err := g.Template.Render(parts)
		if err != nil {
			return nil, err
		}
		assembly.Instruction = instruction
	} else {
		assembly.Instruction = prompt.Compose(parts)
	}
	return assembly, nil
}

// Run assembles the instruction and sends it to the text generation model.
// It never returns an error: any failure is logged and reported as Result.Ok == false.
func (g *Generator) Run(ctx context.Context, vibe string, pageContextFile string) *Result {
	result := &Result{Model: g.Model}
	assembly, err := g.Assemble(vibe, pageContextFile)
	if err != nil {
		g.logger().Errorf("Error: failed to assemble instruction: %v", err)
		return result
	}
	result.Assembly = *assembly

	out := g.output()
	fmt.Fprintf(out, "--- Assembled Description for LLM Prompt ---\n%s\n---\n", assembly.Instruction)

	text, err := g.Client.Generate(ctx, g.BaseUrl, g.Model, assembly.Instruction)
	if err != nil {
		g.logFailure(err)
		return result
	}
	result.ImagePrompt = text
	result.Ok = true
	fmt.Fprintf(out, "--- LLM Generated Image Prompt ---\n%s\n---\n", text)
	return result
}

// Generate is Run reduced to the generated image prompt and whether there is one.
func (g *Generator) Generate(ctx context.Context, vibe string, pageContextFile string) (string, bool) {
	result := g.Run(ctx, vibe, pageContextFile)
	return result.ImagePrompt, result.Ok
}

func (g *Generator) logFailure(err error) {
	logger := g.logger()
	var apiErr *llm.ApiError
	if errors.As(err, &apiErr) {
		fields := log.Fields{"status": apiErr.Status, "temporary": apiErr.Temporary()}
		if apiErr.Body != "" {
			fields["body"] = apiErr.Body
		}
		logger = logger.WithFields(fields)
	}
	logger.Errorf("Error: Failed to generate image prompt from LLM: %v", err)
}

// New creates a Generator from cfg. Progress is written to out.
func New(cfg *config.Config, out io.Writer) (*Generator, error) {
	g := &Generator{
		Fragments: fragment.New(nil, nil),
		Season:    season.New(cfg.IsSeasonal()),
		Client:    &llm.Client{ApiKey: os.Getenv(constants.ENV_MODEL_KEY)},
		Layout: Layout{
			VibesDir:   cfg.VibesDir,
			SeasonsDir: cfg.SeasonsDir,
			EventsFile: cfg.EventsFile,
		},
		Model:   cfg.Model,
		BaseUrl: cfg.BaseUrl,
		Output:  out,
	}
	if cfg.Template != "" {
		tpl, err := prompt.ParseTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
		g.Template = tpl
	}
	return g, nil
}
