package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// ginContextKey is where the server stores its base logger so handlers can derive request scoped loggers from it
const ginContextKey = "psteg.logger"

type Logger struct {
	*slog.Logger
}

func BuildLogger(output io.Writer, level slog.Leveler) *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))}
	return &logger
}

// BuildLoggerFromCtx returns the logger attached by Middleware, annotated with the request path and method
func BuildLoggerFromCtx(ctx *gin.Context) *Logger {
	value, _ := ctx.Get(ginContextKey)
	base, ok := value.(*Logger)
	if !ok {
		base = BuildLogger(os.Stdout, slog.LevelDebug)
	}
	logger := Logger{Logger: base.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
	return &logger
}

// Middleware makes logger available to BuildLoggerFromCtx
func Middleware(logger *Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(ginContextKey, logger)
		ctx.Next()
	}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
