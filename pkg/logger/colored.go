package logger

import (
	"sync"

	"github.com/fatih/color"
)

// coloredLogger is a thread-safe logger that writes colored messages to stdout.
type coloredLogger struct {
	mu    sync.Mutex
	color *color.Color
}

// NewColoredLogger creates a logger that prints in the given color attributes.
func NewColoredLogger(attrs ...color.Attribute) Logger {
	return &coloredLogger{
		color: color.New(attrs...),
	}
}

// Logf writes a formatted colored message to stdout with thread safety.
func (c *coloredLogger) Logf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color.Printf(format+"\n", args...)
}
