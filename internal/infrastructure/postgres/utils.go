package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si err es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// nullable convierte string vacío a NULL para columnas opcionales con FK.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullableTime convierte el cero de time.Time a NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// fromNullable devuelve "" para NULL.
func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromNullableTime devuelve el cero de time.Time para NULL.
func fromNullableTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
