package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/orderpulse/schema"
)

// Color variables for console output.
var (
	GoodColor    = color.New(color.FgGreen)             // completed, well stocked, rising
	WarnColor    = color.New(color.FgYellow)            // back order, medium stock
	BadColor     = color.New(color.FgRed, color.Bold)   // low stock, falling
	InfoColor    = color.New(color.FgBlue)              // in progress
	NeutralColor = color.New(color.FgHiBlack)           // flat or unknown
	HeaderColor  = color.New(color.FgCyan, color.Bold)  // section headers
	ErrorColor   = color.New(color.FgHiRed, color.Bold) // failed sections
)

// statusColors maps the order status codes to their display colors.
var statusColors = map[string]*color.Color{
	"0": color.New(color.FgYellow),
	"1": color.New(color.FgBlue),
	"2": color.New(color.FgMagenta),
	"3": color.New(color.FgHiRed),
	"4": color.New(color.FgCyan),
	"8": color.New(color.FgHiBlue, color.Bold),
	"9": color.New(color.FgGreen),
}

// GetStatusColorLabel returns the status description colored by its status code.
func GetStatusColorLabel(code, text string) string {
	if c, ok := statusColors[strings.TrimSpace(code)]; ok {
		return c.Sprint(text)
	}
	return NeutralColor.Sprint(text)
}

// GetOrderStateColorLabel returns a colored label for an order line state.
func GetOrderStateColorLabel(state schema.OrderState) string {
	text := string(state)
	switch state {
	case schema.CompletedState:
		return GoodColor.Sprint(text)
	case schema.BackOrderState:
		return WarnColor.Sprint(text)
	default: // "In Progress"
		return InfoColor.Sprint(text)
	}
}

// GetStockLevelColorLabel returns a colored label for a stock level.
func GetStockLevelColorLabel(level schema.StockLevel) string {
	text := string(level)
	switch level {
	case schema.WellStocked:
		return GoodColor.Sprint(text)
	case schema.MediumStock:
		return WarnColor.Sprint(text)
	case schema.LowStock:
		return BadColor.Sprint(text)
	default:
		return NeutralColor.Sprint(text)
	}
}

// GetDirectionColorText colors text by the direction of the change it describes.
func GetDirectionColorText(dir schema.Direction, text string) string {
	switch dir {
	case schema.Up:
		return GoodColor.Sprint(text)
	case schema.Down:
		return BadColor.Sprint(text)
	default:
		return NeutralColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
