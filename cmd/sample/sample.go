package sample

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/cmd"
	"github.com/ttombbab/vibeprompt/features/fragment"
	"github.com/ttombbab/vibeprompt/util/helper"
)

var sampleCmd = &cobra.Command{
	Use:     "sample {file}...",
	Aliases: []string{"rand", "random"},
	Short:   "Print a random description from description file(s)",
	Long: `Print a random description from description file(s).

Each {file} can be a glob pattern, e.g. "./vibes/*.txt".
It outputs one random non-empty line of each file to stdout.
Missing or empty files are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: doSample,
}

var (
	flagSeed      uint64 // 0 means random seed
	flagCount     int
	flagShowFiles bool
)

func doSample(command *cobra.Command, args []string) error {
	var src *fragment.Source
	if flagSeed != 0 {
		src = fragment.NewSeeded(flagSeed, nil)
	} else {
		src = fragment.New(nil, nil)
	}
	errorCnt := 0
	for _, file := range helper.ParseFilenameArgs(args...) {
		for i := 0; i < flagCount; i++ {
			description, ok := src.Sample(file)
			if !ok {
				errorCnt++
				break
			}
			if flagShowFiles {
				fmt.Fprintf(command.OutOrStdout(), "%s\t%s\n", file, description)
			} else {
				fmt.Fprintf(command.OutOrStdout(), "%s\n", description)
			}
		}
	}
	if errorCnt > 0 {
		return fmt.Errorf("%d errors", errorCnt)
	}
	return nil
}

func init() {
	sampleCmd.Flags().Uint64VarP(&flagSeed, "seed", "s", 0, "Random seed. Same seed gives same output. 0 = random")
	sampleCmd.Flags().IntVarP(&flagCount, "count", "n", 1, "Number of descriptions to pick from each file")
	sampleCmd.Flags().BoolVarP(&flagShowFiles, "show-files", "f", false, `Output "<file>\t<description>" lines`)
	cmd.RootCmd.AddCommand(sampleCmd)
}
