package outwriter

import (
	"os"

	"github.com/huangsam/orderpulse/internal/contract"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80 // used when the terminal size cannot be detected
	minTextWidth     = 15
	maxTextWidth     = 60
)

// GetTermWidth returns the width override from the config, the detected
// terminal width, or a conservative default for pipes and CI.
func GetTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultTermWidth
	}
	return detectedWidth
}

// GetMaxTextWidth returns the room left for one free-text column once the
// fixed columns, which take reserved characters, are laid out.
func GetMaxTextWidth(cfg *contract.Config, reserved int) int {
	available := GetTermWidth(cfg) - reserved
	if available < minTextWidth {
		return minTextWidth
	}
	if available > maxTextWidth {
		return maxTextWidth
	}
	return available
}
