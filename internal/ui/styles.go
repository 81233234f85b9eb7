package ui

import (
	"strings"

	"github.com/pterm/pterm"
)

func Separator() {
	pterm.Println(pterm.Gray(strings.Repeat("─", 40)))
}
