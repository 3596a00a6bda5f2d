package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.NewWithWriter(config.AppConfig{Env: "production", Name: "gestion-pro", LogLevel: "error"}, &bytes.Buffer{})
}

func TestMountSwagger_SinArchivoElServerSigueArrancando(t *testing.T) {
	app := fiber.New()
	missing := filepath.Join(t.TempDir(), "swagger.json")

	require.NotPanics(t, func() {
		mountSwagger(app, testLogger(), missing)
	})

	// el resto de rutas sigue funcionando
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMountSwagger_ConArchivoPublicaDocs(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "swagger.json")
	spec := []byte(`{"openapi":"3.0.0","info":{"title":"Gestión Pro API","version":"1.0.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(specPath, spec, 0o644))

	app := fiber.New()
	mountSwagger(app, testLogger(), specPath)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
