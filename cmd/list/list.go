package list

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/cmd"
	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/features/fragment"
	"github.com/ttombbab/vibeprompt/util"
	"github.com/ttombbab/vibeprompt/util/helper"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available vibes and seasons",
	Long: `List available vibes and seasons.

It outputs "<category>\t<name>\t<count>" lines to stdout,
where <count> is the number of descriptions in the file.
Files without any description are omitted unless --all is set.`,
	Args: cobra.ExactArgs(0),
	RunE: doList,
}

var (
	flagAll bool
)

type entry struct {
	category string
	name     string
	count    int
}

func doList(command *cobra.Command, args []string) error {
	src := fragment.New(nil, nil)
	var entries []entry
	for _, category := range []struct{ name, dir string }{
		{"vibe", cmd.Config.VibesDir},
		{"season", cmd.Config.SeasonsDir},
	} {
		files := helper.ParseGlobFilenames(filepath.Join(category.dir, "*"+constants.DESCRIPTION_EXT))
		for _, file := range files {
			lines, err := src.Lines(file)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(file), constants.DESCRIPTION_EXT)
			entries = append(entries, entry{category.name, name, len(lines)})
		}
	}
	if !flagAll {
		entries = util.FilterSlice(entries, func(e entry) bool { return e.count > 0 })
	}
	for _, e := range entries {
		fmt.Fprintf(command.OutOrStdout(), "%s\t%s\t%d\n", e.category, e.name, e.count)
	}
	return nil
}

func init() {
	listCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "Also list description files without any description")
	cmd.RootCmd.AddCommand(listCmd)
}
