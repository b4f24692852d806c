package constants

const (
	// Env variable names

	ENV_MODEL        = "VIBEPROMPT_MODEL"
	ENV_BASE_URL     = "VIBEPROMPT_BASE_URL"  // text generation service base url
	ENV_MODEL_KEY    = "VIBEPROMPT_MODEL_KEY" // customary OpenAI API compatible model key
	ENV_CONFIG       = "VIBEPROMPT_CONFIG"    // config file path
	ENV_VIBES_DIR    = "VIBEPROMPT_VIBES_DIR"
	ENV_SEASONS_DIR  = "VIBEPROMPT_SEASONS_DIR"
	ENV_EVENTS_FILE  = "VIBEPROMPT_EVENTS_FILE"
	ENV_LOG_LEVEL    = "VIBEPROMPT_LOG_LEVEL"
	ENV_SEASONAL     = "VIBEPROMPT_SEASONAL"
	ENV_DEFAULT_VIBE = "VIBEPROMPT_VIBE"

	// Default text generation model served by the local Ollama instance
	DEFAULT_MODEL = "tomchat-1dllama"

	// Default Ollama server address
	DEFAULT_BASE_URL = "http://localhost:11434"

	DEFAULT_VIBES_DIR   = "./vibes"
	DEFAULT_SEASONS_DIR = "./seasons"
	DEFAULT_EVENTS_FILE = "./events/events.txt"

	DEFAULT_CONFIG_FILE = "vibeprompt.toml"

	DEFAULT_VIBE = "cyberpunk"

	// Page context file used by the sub-page run of the demo command
	DEFAULT_DEMO_PAGE_CONTEXT = "./page_context/trails.txt"

	DEFAULT_LOG_LEVEL = "info"

	DESCRIPTION_EXT = ".txt"

	SEASON_WINTER = "winter"
	SEASON_SPRING = "spring"
	SEASON_SUMMER = "summer"
	SEASON_AUTUMN = "autumn"

	MIME_JSON = "application/json"
)

const HELP_MODEL = `Text generation model. By default it's an Ollama model name served by --base-url. ` +
	`Any OpenAI API compatible model: "openai/<model-name>/<api-url>"; ` +
	`e.g. "openai/gpt-oss-120b/http://localhost:8080/v1". ` +
	`If not set, it uses ` + ENV_MODEL + ` env, then config file, then fallbacks to "` + DEFAULT_MODEL + `"`

const HELP_BASE_URL = `Ollama server base url. If not set, it uses ` + ENV_BASE_URL +
	` env, then config file, then fallbacks to "` + DEFAULT_BASE_URL + `"`

const HELP_TEMPLATE_FLAG = `Custom instruction template, a Go text template string. If the value starts with "@", ` +
	`it (the rest part after @) is treated as a filename, ` +
	`which contents will be used as template. ` +
	`Data fields: .Statement (joined clauses), .Clauses, .Vibe, .Season, .VibeDesc, .SeasonDesc, .Event, .PageContext. ` +
	`All sprout functions are supported, see https://github.com/go-sprout/sprout`

const HELP_CONFIG_FLAG = `Config file (.toml, .yaml or .json). If not set, it uses ` + ENV_CONFIG +
	` env, then "` + DEFAULT_CONFIG_FILE + `" in current dir if exists`
