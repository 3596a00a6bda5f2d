package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memAccountRepo struct {
	accounts map[string]*entity.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *memAccountRepo) Create(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *memAccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.accounts[id], nil
}
func (r *memAccountRepo) FindByEmail(email string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAccountRepo) List(limit, offset int) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}
func (r *memAccountRepo) Update(a *entity.Account) error { r.accounts[a.ID] = a; return nil }
func (r *memAccountRepo) Delete(id string) error         { delete(r.accounts, id); return nil }

type memCustomerRepo struct {
	byAccount map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byAccount: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if c.AccountID != "" {
		r.byAccount[c.AccountID] = c
	}
	return nil
}
func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error)       { return nil, nil }
func (r *memCustomerRepo) GetByTaxID(taxID string) (*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) GetByAccountID(accountID string) (*entity.Customer, error) {
	return r.byAccount[accountID], nil
}
func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Count() (int, error)                                { return len(r.byAccount), nil }
func (r *memCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (r *memCustomerRepo) Delete(id string) error                             { return nil }

const authTestSecret = "secret-para-tests-de-auth"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *memAccountRepo, *memCustomerRepo) {
	t.Helper()
	accounts := newMemAccountRepo()
	customers := newMemCustomerRepo()
	uc := auth.NewAuthUseCase(accounts, customers, auth.JWTConfig{
		Secret:            authTestSecret,
		ExpMinutes:        60,
		RefreshExpMinutes: 7 * 24 * 60,
		Issuer:            "gestion-pro-test",
	})
	return uc, accounts, customers
}

// ── Registro ──────────────────────────────────────────────────────────────────

func TestRegisterAccount_HasheaPasswordYAsignaRolCliente(t *testing.T) {
	uc, accounts, _ := newAuthFixture(t)

	resp, err := uc.RegisterAccount(dto.RegisterRequest{
		Email:    "maria@acme.co",
		Password: "clave-segura",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCliente, resp.Role)
	assert.Equal(t, "active", resp.Status)
	stored := accounts.accounts[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash)
}

func TestRegisterAccount_EmailDuplicado(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterAccount(dto.RegisterRequest{Email: "maria@acme.co", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.RegisterAccount(dto.RegisterRequest{Email: "maria@acme.co", Password: "x2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterAccount_RolDesconocido(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterAccount(dto.RegisterRequest{
		Email:    "maria@acme.co",
		Password: "x",
		Role:     "superusuario",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestLogin_EmiteParDeTokens(t *testing.T) {
	uc, _, customers := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{Email: "cli@acme.co", Password: "clave"})
	require.NoError(t, err)
	require.NoError(t, customers.Create(&entity.Customer{ID: "cust-1", AccountID: acc.ID, Name: "Acme"}))

	resp, err := uc.Login(dto.LoginRequest{Email: "cli@acme.co", Password: "clave"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)

	// el token de acceso lleva customer_id para cuentas de rol cliente
	claims, err := jwt.Parse(authTestSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, acc.ID, claims.AccountID)
	assert.Equal(t, entity.RoleCliente, claims.Role)
	assert.Equal(t, "cust-1", claims.CustomerID)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

	refreshClaims, err := jwt.Parse(authTestSecret, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, refreshClaims.TokenType)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterAccount(dto.RegisterRequest{Email: "cli@acme.co", Password: "clave"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "cli@acme.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaSuspendida(t *testing.T) {
	uc, accounts, _ := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{Email: "cli@acme.co", Password: "clave"})
	require.NoError(t, err)
	accounts.accounts[acc.ID].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "cli@acme.co", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_CuentaInexistente(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@acme.co", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// ── Refresh ───────────────────────────────────────────────────────────────────

func TestRefresh_ReemiteTokensConRolActualizado(t *testing.T) {
	uc, accounts, _ := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{
		Email:    "ops@acme.co",
		Password: "clave",
		Role:     entity.RoleVentas,
	})
	require.NoError(t, err)
	login, err := uc.Login(dto.LoginRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)

	// un cambio de rol surte efecto en el siguiente refresco
	accounts.accounts[acc.ID].Role = entity.RoleFinanzas

	refreshed, err := uc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	claims, err := jwt.Parse(authTestSecret, refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFinanzas, claims.Role)
}

func TestRefresh_CuentaSuspendidaRechazada(t *testing.T) {
	uc, accounts, _ := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)
	login, err := uc.Login(dto.LoginRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)

	accounts.accounts[acc.ID].Status = "suspended"

	_, err = uc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un token de acceso no refresca: su expiración corta dejaría de importar.
func TestRefresh_RechazaTokenDeAcceso(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.RegisterAccount(dto.RegisterRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)
	login, err := uc.Login(dto.LoginRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)

	_, err = uc.Refresh(login.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Refresh("no-es-un-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ── Administración de cuentas ─────────────────────────────────────────────────

func TestUpdateAccount_CambiaRolYEstado(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)

	updated, err := uc.UpdateAccount(acc.ID, dto.UpdateAccountRequest{
		Role:   entity.RoleOperaciones,
		Status: "inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperaciones, updated.Role)
	assert.Equal(t, "inactive", updated.Status)
}

func TestUpdateAccount_EstadoInvalido(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	acc, err := uc.RegisterAccount(dto.RegisterRequest{Email: "ops@acme.co", Password: "clave"})
	require.NoError(t, err)

	_, err = uc.UpdateAccount(acc.ID, dto.UpdateAccountRequest{Status: "congelada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteAccount_Inexistente(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	err := uc.DeleteAccount("no-existe")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
