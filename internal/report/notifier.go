package report

import (
	"fmt"
	"io"
	"strings"
)

// Notifier delivers finished report text to the players.
type Notifier interface {
	Send(text string) error
}

// ConsoleNotifier writes reports to a terminal or any other writer.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Send writes text followed by a newline if it lacks one.
func (c *ConsoleNotifier) Send(text string) error {
	if text == "" {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(c.w, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
