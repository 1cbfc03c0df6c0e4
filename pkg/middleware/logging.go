package middleware

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	ConsoleLoggingEnabled bool
	EncodeLogsAsJson      bool
	FileLoggingEnabled    bool
	Level                 string
	Directory             string
	Filename              string
	MaxSize               int
	MaxBackups            int
	MaxAge                int
	LocalTime             bool
}

var requestLog = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	zerolog.CallerFieldName = "line"
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		if rel := strings.SplitN(file, "udpserial-panel/", 2); len(rel) == 2 {
			file = rel[1]
		}
		return fmt.Sprintf("%s:%d", file, line)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

func LoggingMiddleware(next http.Handler) http.Handler {
	h1 := hlog.NewHandler(requestLog)
	h2 := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		event := hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.String()).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration)

		if rCtx, ok := ContextFromRequest(r); ok {
			event.Str("ip", rCtx.IP)
			if rCtx.View != "" {
				event.Str("view", rCtx.View)
			}
		}

		event.Msg("")
	})
	h3 := hlog.RequestIDHandler("request_id", "X-Request-ID")
	return h1(h2(h3(next)))
}

// InitLog replaces the global logger. The console is always written to,
// a rolling file only when a directory is configured.
func InitLog(c Config) {
	var writers []io.Writer

	if c.ConsoleLoggingEnabled {
		if c.EncodeLogsAsJson {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		}
	}
	if c.FileLoggingEnabled && c.Directory != "" {
		if rf := newRollingFile(c); rf != nil {
			writers = append(writers, rf)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	mw := io.MultiWriter(writers...)

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.MessageFieldName = "msg"
	log.Logger = zerolog.New(mw).With().Timestamp().Logger()
	requestLog = log.Logger.With().Caller().Logger()
}

func newRollingFile(c Config) io.Writer {
	if err := os.MkdirAll(c.Directory, 0744); err != nil {
		log.Error().Err(err).Str("path", c.Directory).Msg("can't create log directory")
		return nil
	}

	return &lumberjack.Logger{
		Filename:   path.Join(c.Directory, c.Filename),
		MaxBackups: c.MaxBackups,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		LocalTime:  c.LocalTime,
	}
}
