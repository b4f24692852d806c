package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ttombbab/vibeprompt/config"
	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/version"
)

var RootCmd = &cobra.Command{
	Use:   "vibeprompt",
	Short: "vibeprompt " + version.Version,
	Long: `vibeprompt ` + version.Version + "." + `
Generate image prompts from random vibe, season and event descriptions using a local Ollama model.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	// Config values set by command line flags, see config.Resolve.
	Flags config.Config
	// The effective config, available to sub commands after RootCmd PersistentPreRunE.
	Config *config.Config

	flagConfigFile string
	flagSeasonal   bool
)

func setup(cmd *cobra.Command, args []string) error {
	// An unset flag must not override env or config file.
	Flags.Seasonal = nil
	if cmd.Flags().Changed("seasonal") {
		Flags.Seasonal = &flagSeasonal
	}
	cfg, err := config.Resolve(flagConfigFile, &Flags)
	if err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	Config = cfg
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flagConfigFile, "config", "", "", constants.HELP_CONFIG_FLAG)
	RootCmd.PersistentFlags().StringVarP(&Flags.LogLevel, "log-level", "", "",
		`Log level: "panic", "fatal", "error", "warn", "info", "debug", "trace". `+
			`If not set, it uses `+constants.ENV_LOG_LEVEL+` env, then config file, then "`+
			constants.DEFAULT_LOG_LEVEL+`"`)
	RootCmd.PersistentFlags().StringVarP(&Flags.Model, "model", "", "", constants.HELP_MODEL)
	RootCmd.PersistentFlags().StringVarP(&Flags.BaseUrl, "base-url", "", "", constants.HELP_BASE_URL)
	RootCmd.PersistentFlags().StringVarP(&Flags.VibesDir, "vibes-dir", "", "",
		`Dir of vibe description files ("<vibe>.txt"). Default: "`+constants.DEFAULT_VIBES_DIR+`"`)
	RootCmd.PersistentFlags().StringVarP(&Flags.SeasonsDir, "seasons-dir", "", "",
		`Dir of season description files ("<season>.txt"). Default: "`+constants.DEFAULT_SEASONS_DIR+`"`)
	RootCmd.PersistentFlags().StringVarP(&Flags.EventsFile, "events-file", "", "",
		`Event description file. Default: "`+constants.DEFAULT_EVENTS_FILE+`"`)
	RootCmd.PersistentFlags().BoolVarP(&flagSeasonal, "seasonal", "", false,
		`Pick season by current month. By default the season is always "`+constants.SEASON_WINTER+`"`)
	RootCmd.PersistentFlags().StringVarP(&Flags.Template, "template", "", "", constants.HELP_TEMPLATE_FLAG)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}
