// Package cli holds shared terminal output helpers for the non-TUI commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/fatih/color"
)

var (
	// Colors.
	labelColor  = color.New(color.Bold)
	valueColor  = color.New(color.FgCyan)
	formatColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	formatColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", width-len(title)-len(separator1))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	formatColor.Println(output)
}

// Label printed to cli, bold.
func Label(text string, args ...any) {
	labelColor.Printf(text, args...)
}

// Value printed to cli.
func Value(text string, args ...any) {
	valueColor.Printf(text, args...)
}

// Warn printed to cli.
func Warn(text string, args ...any) {
	warnColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// Ask prompts for a single line of input.
func Ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

// AskPassword prompts for a secret without echoing it.
func AskPassword(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Password{Message: message}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

// Confirm prompts for a yes/no answer, defaulting to no.
func Confirm(message string) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &answer)
	return answer, err
}
