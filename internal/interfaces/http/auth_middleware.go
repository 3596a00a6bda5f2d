package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain/permission"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// Locals keys para los datos de la cuenta autenticada en Fiber.
const (
	LocalAccountID  = "account_id"
	LocalRole       = "role"
	LocalCustomerID = "customer_id"
)

// Cookies donde Login deja el par de tokens para clientes de navegador.
const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

// AuthMiddleware valida el Bearer Token JWT (o la cookie access_token) y
// extrae AccountID, Role y CustomerID a c.Locals. Solo acepta tokens de
// acceso; un token de refresco no autentica peticiones.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Cookies(accessTokenCookie)
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header o cookie access_token requeridos"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalCustomerID, claims.CustomerID)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequirePermission exige que el rol autenticado tenga al menos uno de los
// permisos indicados. Se monta después de AuthMiddleware.
func RequirePermission(perms ...permission.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "cuenta sin rol"})
		}
		if !permission.RoleHasAny(role, perms...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetAccountID devuelve el AccountID del contexto (después del middleware de auth).
func GetAccountID(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCustomerID devuelve el CustomerID del contexto; vacío para cuentas internas.
func GetCustomerID(c *fiber.Ctx) string {
	v := c.Locals(LocalCustomerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ownScope devuelve el CustomerID cuando el rol sólo tiene lectura de lo
// propio. Para roles con lectura global devuelve cadena vacía (sin filtro).
func ownScope(c *fiber.Ctx, global permission.Permission) string {
	if permission.RoleHas(GetRole(c), global) {
		return ""
	}
	return GetCustomerID(c)
}
