// Package log is the app's structured audit log: small wrappers over zerolog
// that pull request context out of fiber when one is available.
package log

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Init configures the global logger. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zlog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
}

func write(ev *zerolog.Event, c *fiber.Ctx, action string, err error, fields map[string]any) {
	if c != nil {
		ev = ev.Str("ip", c.IP()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode())
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ev = ev.Str("req_id", rid)
		}
	}
	if err != nil {
		ev = ev.Err(err)
	}
	if len(fields) > 0 {
		ev = ev.Fields(fields)
	}
	ev.Msg(action)
}

// Info logs a routine event. c may be nil outside a request.
func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(zlog.Info(), c, action, nil, fields)
}

// Audit logs a state-changing action for the audit trail.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(zlog.Info().Bool("audit", true), c, action, nil, fields)
}

// Security logs a rejected or suspicious request.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(zlog.Warn(), c, action, nil, fields)
}

// Error logs a failure that was contained at a boundary.
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(zlog.Error(), c, action, err, fields)
}
