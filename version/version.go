package version

// Set by -ldflags "-X github.com/ttombbab/vibeprompt/version.Version=..."
var Version = "dev"
