package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/util"
	"github.com/ttombbab/vibeprompt/util/stringutil"
)

// Config of vibeprompt. Each value is resolved in order: command line flag, env, config file, default.
type Config struct {
	Model      string `json:"model,omitempty" yaml:"model,omitempty" toml:"model,omitempty"`
	BaseUrl    string `json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url,omitempty"`
	Vibe       string `json:"vibe,omitempty" yaml:"vibe,omitempty" toml:"vibe,omitempty"`
	VibesDir   string `json:"vibes_dir,omitempty" yaml:"vibes_dir,omitempty" toml:"vibes_dir,omitempty"`
	SeasonsDir string `json:"seasons_dir,omitempty" yaml:"seasons_dir,omitempty" toml:"seasons_dir,omitempty"`
	EventsFile string `json:"events_file,omitempty" yaml:"events_file,omitempty" toml:"events_file,omitempty"`
	Seasonal   *bool  `json:"seasonal,omitempty" yaml:"seasonal,omitempty" toml:"seasonal,omitempty"` // nil: unset
	Template   string `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty"`
	LogLevel   string `json:"log_level,omitempty" yaml:"log_level,omitempty" toml:"log_level,omitempty"`
}

// Load reads config file. If file is empty, it uses the VIBEPROMPT_CONFIG env,
// then constants.DEFAULT_CONFIG_FILE if it exists; no config file at all is not an error.
func Load(file string) (*Config, error) {
	cfg := &Config{}
	if file == "" {
		file = os.Getenv(constants.ENV_CONFIG)
	}
	if file == "" {
		if exists, _ := util.FileExists(constants.DEFAULT_CONFIG_FILE); !exists {
			return cfg, nil
		}
		file = constants.DEFAULT_CONFIG_FILE
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()
	if err := util.Unmarshal(filepath.Ext(file), f, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", file, err)
	}
	log.Debugf("loaded config file %q", file)
	return cfg, nil
}

// ApplyEnv overrides c with the set VIBEPROMPT_* env variables.
func (c *Config) ApplyEnv() {
	c.Model = util.FirstNonZero(os.Getenv(constants.ENV_MODEL), c.Model)
	c.BaseUrl = util.FirstNonZero(os.Getenv(constants.ENV_BASE_URL), c.BaseUrl)
	c.Vibe = util.FirstNonZero(os.Getenv(constants.ENV_DEFAULT_VIBE), c.Vibe)
	c.VibesDir = util.FirstNonZero(os.Getenv(constants.ENV_VIBES_DIR), c.VibesDir)
	c.SeasonsDir = util.FirstNonZero(os.Getenv(constants.ENV_SEASONS_DIR), c.SeasonsDir)
	c.EventsFile = util.FirstNonZero(os.Getenv(constants.ENV_EVENTS_FILE), c.EventsFile)
	c.LogLevel = util.FirstNonZero(os.Getenv(constants.ENV_LOG_LEVEL), c.LogLevel)
	if v := os.Getenv(constants.ENV_SEASONAL); v != "" {
		if seasonal, err := strconv.ParseBool(v); err == nil {
			c.Seasonal = &seasonal
		} else {
			log.Warnf("ignore invalid %s env %q", constants.ENV_SEASONAL, v)
		}
	}
}

// Override replaces values of c with the non-zero ones of o.
func (c *Config) Override(o *Config) {
	c.Model = util.FirstNonZero(o.Model, c.Model)
	c.BaseUrl = util.FirstNonZero(o.BaseUrl, c.BaseUrl)
	c.Vibe = util.FirstNonZero(o.Vibe, c.Vibe)
	c.VibesDir = util.FirstNonZero(o.VibesDir, c.VibesDir)
	c.SeasonsDir = util.FirstNonZero(o.SeasonsDir, c.SeasonsDir)
	c.EventsFile = util.FirstNonZero(o.EventsFile, c.EventsFile)
	c.Template = util.FirstNonZero(o.Template, c.Template)
	c.LogLevel = util.FirstNonZero(o.LogLevel, c.LogLevel)
	if o.Seasonal != nil {
		c.Seasonal = o.Seasonal
	}
}

// ApplyDefaults fills unset values with constants.
func (c *Config) ApplyDefaults() {
	c.Model = util.FirstNonZero(c.Model, constants.DEFAULT_MODEL)
	c.BaseUrl = util.FirstNonZero(c.BaseUrl, constants.DEFAULT_BASE_URL)
	c.Vibe = util.FirstNonZero(c.Vibe, constants.DEFAULT_VIBE)
	c.VibesDir = util.FirstNonZero(c.VibesDir, constants.DEFAULT_VIBES_DIR)
	c.SeasonsDir = util.FirstNonZero(c.SeasonsDir, constants.DEFAULT_SEASONS_DIR)
	c.EventsFile = util.FirstNonZero(c.EventsFile, constants.DEFAULT_EVENTS_FILE)
	c.LogLevel = util.FirstNonZero(c.LogLevel, constants.DEFAULT_LOG_LEVEL)
	if c.Seasonal == nil {
		seasonal := false
		c.Seasonal = &seasonal
	}
}

// IsSeasonal reports whether the season is picked by current month.
func (c *Config) IsSeasonal() bool {
	return c.Seasonal != nil && *c.Seasonal
}

func (c *Config) Validate() error {
	if !stringutil.IsUrl(c.BaseUrl) {
		return fmt.Errorf("invalid base url %q: must be a http:// or https:// url", c.BaseUrl)
	}
	if c.Model == "" {
		return fmt.Errorf("model not set")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Resolve builds the effective config: file, then env, then flags, then defaults.
func Resolve(file string, flags *Config) (*Config, error) {
	cfg, err := Load(file)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if flags != nil {
		cfg.Override(flags)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
