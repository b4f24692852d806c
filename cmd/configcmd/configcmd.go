package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/cmd"
	"github.com/ttombbab/vibeprompt/util"
	"github.com/ttombbab/vibeprompt/util/helper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Print the effective config, after applying command line flags, env variables and config file.

The output can be used as a config file.`,
	Args: cobra.ExactArgs(0),
	RunE: doConfig,
}

var (
	flagFormat string
	flagForce  bool
	flagOutput string
)

func doConfig(command *cobra.Command, args []string) error {
	data, err := util.Marshal(flagFormat, cmd.Config)
	if err != nil {
		return err
	}
	contents := string(data)
	if len(contents) > 0 && contents[len(contents)-1] != '\n' {
		contents += "\n"
	}
	return helper.WriteOutput(command.OutOrStdout(), flagOutput, contents, flagForce)
}

func init() {
	configCmd.Flags().StringVarP(&flagFormat, "format", "", "toml", `Output format: "toml", "yaml" or "json"`)
	configCmd.Flags().BoolVarP(&flagForce, "force", "", false, "Force overwriting without confirmation")
	configCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", `Output file path. Use "-" for stdout`)
	cmd.RootCmd.AddCommand(configCmd)
}
