package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func TestNewWithWriter_ProductionEmiteJSONConServicio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.AppConfig{
		Env:      "production",
		Name:     "gestion-pro",
		LogLevel: "info",
	}, &buf)

	log.Info().Str("modulo", "facturacion").Msg("factura emitida")

	out := buf.String()
	assert.Contains(t, out, `"service":"gestion-pro"`)
	assert.Contains(t, out, `"modulo":"facturacion"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestNewWithWriter_RespetaElNivelConfigurado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.AppConfig{
		Env:      "production",
		Name:     "gestion-pro",
		LogLevel: "warn",
	}, &buf)

	log.Info().Msg("no debería salir")
	log.Warn().Msg("saldo pendiente alto")

	out := buf.String()
	assert.NotContains(t, out, "no debería salir")
	assert.Contains(t, out, "saldo pendiente alto")
}

func TestNewWithWriter_NivelDesconocidoCaeAInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(config.AppConfig{
		Env:      "production",
		Name:     "gestion-pro",
		LogLevel: "verboso",
	}, &buf)

	log.Debug().Msg("suprimido en info")
	log.Info().Msg("visible en info")

	out := buf.String()
	assert.NotContains(t, out, "suprimido en info")
	assert.Contains(t, out, "visible en info")
}
