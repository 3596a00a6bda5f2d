// Package logger arma el logger zerolog de la aplicación a partir de
// AppConfig: consola legible en development, JSON en los demás entornos,
// con el nombre del servicio como campo fijo en cada línea.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/jhoicas/Gestion-api/pkg/config"
)

// Logger envuelve zerolog para inyectarlo en casos de uso y comandos.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación escribiendo a stdout.
func New(app config.AppConfig) *Logger {
	return NewWithWriter(app, os.Stdout)
}

// NewWithWriter construye el logger sobre un writer arbitrario.
// El nivel viene de LOG_LEVEL; un valor no reconocido cae a info.
// También reapunta el logger global de zerolog, para librerías que lo usan.
func NewWithWriter(app config.AppConfig, w io.Writer) *Logger {
	if app.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().
		Timestamp().
		Str("service", app.Name).
		Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos adicionales.
func (l *Logger) With() zerolog.Context { return l.zl.With() }
