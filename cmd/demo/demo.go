package demo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/cmd"
	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/features/pipeline"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate an index page and a sub-page image prompt",
	Long: `Generate an index page and a sub-page image prompt.

It runs the generation twice with the same vibe: once without page context (index page),
once with the --page-context file (sub-page). A failed generation is reported and does not stop the demo.`,
	Args: cobra.ExactArgs(0),
	RunE: doDemo,
}

var (
	flagVibe        string
	flagPageContext string
)

func doDemo(command *cobra.Command, args []string) error {
	out := command.OutOrStdout()
	generator, err := pipeline.New(cmd.Config, out)
	if err != nil {
		return err
	}
	vibe := flagVibe
	if vibe == "" {
		vibe = cmd.Config.Vibe
	}
	pages := []struct {
		name        string
		pageContext string
	}{
		{"Index", ""},
		{"Sub-Page", flagPageContext},
	}
	for _, page := range pages {
		if imagePrompt, ok := generator.Generate(command.Context(), vibe, page.pageContext); ok {
			fmt.Fprintf(out, "\n--- Final Image Prompt (%s) ---\n%s\n", page.name, imagePrompt)
		} else {
			fmt.Fprintf(out, "\nImage prompt generation failed.\n")
		}
	}
	return nil
}

func init() {
	demoCmd.Flags().StringVarP(&flagVibe, "vibe", "", "", `The vibe. Default: "`+constants.DEFAULT_VIBE+`"`)
	demoCmd.Flags().StringVarP(&flagPageContext, "page-context", "p", constants.DEFAULT_DEMO_PAGE_CONTEXT,
		"Page context description file of the sub-page")
	cmd.RootCmd.AddCommand(demoCmd)
}
