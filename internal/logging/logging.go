// Package logging builds the zap loggers used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type options struct {
	level  zapcore.Level
	format string
	out    io.Writer
	fields []zap.Field
}

// Option configures New.
type Option func(*options) error

// WithLevel sets the minimum level by name (debug, info, warn, error).
func WithLevel(name string) Option {
	return func(o *options) error {
		lvl, err := zapcore.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		o.level = lvl
		return nil
	}
}

// WithFormat selects the console or json encoder.
func WithFormat(format string) Option {
	return func(o *options) error {
		switch format {
		case FormatConsole, FormatJSON:
			o.format = format
			return nil
		default:
			return fmt.Errorf("log format must be %q or %q: %q", FormatConsole, FormatJSON, format)
		}
	}
}

// WithOutput redirects log output. The default is stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) error {
		if w != nil {
			o.out = w
		}
		return nil
	}
}

// WithFields attaches fields to every entry.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) error {
		o.fields = append(o.fields, fields...)
		return nil
	}
}

// New returns a logger writing at info level in console format to stderr
// unless configured otherwise.
func New(opts ...Option) (*zap.Logger, error) {
	o := options{
		level:  zapcore.InfoLevel,
		format: FormatConsole,
		out:    os.Stderr,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if o.format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(o.out), zap.NewAtomicLevelAt(o.level))
	return zap.New(core).With(o.fields...), nil
}
