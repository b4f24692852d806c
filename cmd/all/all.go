package all

import (
	_ "github.com/ttombbab/vibeprompt/cmd/configcmd"
	_ "github.com/ttombbab/vibeprompt/cmd/demo"
	_ "github.com/ttombbab/vibeprompt/cmd/generate"
	_ "github.com/ttombbab/vibeprompt/cmd/list"
	_ "github.com/ttombbab/vibeprompt/cmd/sample"
	_ "github.com/ttombbab/vibeprompt/cmd/versioncmd"
)
