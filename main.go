package main

import (
	"github.com/ttombbab/vibeprompt/cmd"
	_ "github.com/ttombbab/vibeprompt/cmd/all"
)

func main() {
	cmd.Execute()
}
