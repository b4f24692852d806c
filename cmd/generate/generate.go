package generate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/cmd"
	"github.com/ttombbab/vibeprompt/features/pipeline"
	"github.com/ttombbab/vibeprompt/util"
	"github.com/ttombbab/vibeprompt/util/helper"
)

var generateCmd = &cobra.Command{
	Use:     "generate [vibe]",
	Aliases: []string{"gen", "g"},
	Short:   "Generate an image prompt",
	Long: `Generate an image prompt.

It picks a random description of the vibe ("<vibes-dir>/<vibe>.txt"),
of the season ("<seasons-dir>/<season>.txt"), of an event (--events-file) and optionally
of the page context (--page-context), assembles them into an instruction
and asks the text generation model to write the image prompt.
Missing or empty description files are skipped.

Example:
  vibeprompt generate cyberpunk
  vibeprompt generate cyberpunk --page-context ./page_context/trails.txt

The assembled instruction and the generated prompt are printed to stdout.
Use --output to also save the generated prompt (or --json result) to a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: doGenerate,
}

var (
	flagPageContext string
	flagDryRun      bool
	flagJson        bool
	flagForce       bool
	flagOutput      string
)

func doGenerate(command *cobra.Command, args []string) error {
	vibe := cmd.Config.Vibe
	if len(args) > 0 {
		vibe = args[0]
	}
	generator, err := pipeline.New(cmd.Config, progressWriter(command))
	if err != nil {
		return err
	}

	var result *pipeline.Result
	if flagDryRun {
		assembly, err := generator.Assemble(vibe, flagPageContext)
		if err != nil {
			return err
		}
		result = &pipeline.Result{Assembly: *assembly, Model: generator.Model}
	} else {
		result = generator.Run(command.Context(), vibe, flagPageContext)
	}

	var contents string
	switch {
	case flagJson:
		data, err := util.Marshal("json", result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		contents = string(data) + "\n"
	case flagDryRun:
		contents = result.Instruction + "\n"
	case result.Ok:
		contents = result.ImagePrompt + "\n"
	}
	// Without --json or --dry-run, the generated prompt is already in the progress output.
	// A failed run leaves no output file behind.
	if (flagOutput != "-" || flagJson || flagDryRun) && (flagJson || flagDryRun || result.Ok) {
		if err := helper.WriteOutput(command.OutOrStdout(), flagOutput, contents, flagForce); err != nil {
			return err
		}
	}
	if !flagDryRun && !result.Ok {
		return fmt.Errorf("image prompt generation failed")
	}
	return nil
}

// In json mode, stdout is reserved for the result.
func progressWriter(command *cobra.Command) io.Writer {
	if flagJson || flagDryRun {
		return nil
	}
	return command.OutOrStdout()
}

func init() {
	generateCmd.Flags().StringVarP(&flagPageContext, "page-context", "p", "",
		"Page context description file. If not set, no page context is used")
	generateCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false,
		"Only assemble and print the instruction, do not call the text generation model")
	generateCmd.Flags().BoolVarP(&flagJson, "json", "", false,
		"Output the full result (descriptions, instruction, generated prompt) as JSON")
	generateCmd.Flags().BoolVarP(&flagForce, "force", "", false, "Force overwriting without confirmation")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", `Output file path. Use "-" for stdout`)
	cmd.RootCmd.AddCommand(generateCmd)
}
