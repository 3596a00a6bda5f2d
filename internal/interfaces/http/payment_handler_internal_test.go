package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// responseFor monta un handler que devuelve err mapeado y captura la respuesta.
func responseFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		return paymentError(c, err)
	})
	resp, testErr := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

// Un sobrepago es entrada inválida del cliente, no un conflicto de estado.
func TestPaymentError_SobrepagoRetorna400(t *testing.T) {
	status, out := responseFor(t, &domain.OverpaymentError{Excess: decimal.RequireFromString("15.50")})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "OVERPAYMENT", out.Code)
	assert.Contains(t, out.Message, "15.50")
}

func TestPaymentError_ReembolsoExcesivoRetorna400(t *testing.T) {
	status, out := responseFor(t, domain.ErrRefundExceedsPaid)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "REFUND_EXCEEDS_PAID", out.Code)
}

func TestPaymentError_PagoInmutableRetorna409(t *testing.T) {
	status, out := responseFor(t, domain.ErrPaymentImmutable)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "PAYMENT_IMMUTABLE", out.Code)
}
