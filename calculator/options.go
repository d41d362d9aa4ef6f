package calculator

import (
	"io"
	"log"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger that records rejected triggers.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }
