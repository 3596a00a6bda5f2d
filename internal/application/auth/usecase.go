package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/permission"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret            string
	ExpMinutes        int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase casos de uso de autenticación: registro, login e identidad.
type AuthUseCase struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, customerRepo repository.CustomerRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, customerRepo: customerRepo, jwtCfg: jwtCfg}
}

// RegisterAccount crea una cuenta: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterAccount(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.accountRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	if len(permission.ForRole(role)) == 0 {
		return nil, domain.ErrInvalidInput // rol desconocido
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
// Para cuentas de rol cliente incluye customer_id en los claims, de modo que
// el filtrado de "solo mis recursos" no consulte la DB en cada petición.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if account.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.issueTokens(account)
}

// Refresh valida un token de refresco y emite un nuevo par de tokens.
// Un token de acceso queda rechazado por el claim token_type, así que su
// expiración corta no se puede eludir refrescando con él.
// La cuenta se relee de la DB para que un cambio de rol o una suspensión
// surtan efecto en el siguiente refresco.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	account, err := uc.accountRepo.GetByID(claims.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if account.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.issueTokens(account)
}

// issueTokens genera el par acceso+refresco para la cuenta.
func (uc *AuthUseCase) issueTokens(account *entity.Account) (*dto.LoginResponse, error) {
	customerID := ""
	if account.Role == entity.RoleCliente {
		if customer, _ := uc.customerRepo.GetByAccountID(account.ID); customer != nil {
			customerID = customer.ID
		}
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, customerID, uc.jwtCfg.Issuer, jwt.TokenTypeAccess, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, customerID, uc.jwtCfg.Issuer, jwt.TokenTypeRefresh, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Account:      *toAccountResponse(account),
	}, nil
}

// Me devuelve la cuenta autenticada con sus permisos resueltos.
func (uc *AuthUseCase) Me(accountID string) (*dto.MeResponse, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	perms := permission.ForRole(account.Role)
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, string(p))
	}
	resp := &dto.MeResponse{
		Account:     *toAccountResponse(account),
		Permissions: names,
	}
	if account.Role == entity.RoleCliente {
		if customer, _ := uc.customerRepo.GetByAccountID(account.ID); customer != nil {
			resp.CustomerID = customer.ID
		}
	}
	return resp, nil
}

// ListAccounts lista cuentas con paginación (administración).
func (uc *AuthUseCase) ListAccounts(page dto.PageRequest) ([]*dto.AccountResponse, error) {
	page.Normalize()
	list, err := uc.accountRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// UpdateAccount cambia rol, estado o nombre de una cuenta (administración).
func (uc *AuthUseCase) UpdateAccount(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if in.Role != "" {
		if len(permission.ForRole(in.Role)) == 0 {
			return nil, domain.ErrInvalidInput
		}
		account.Role = in.Role
	}
	if in.Status != "" {
		switch in.Status {
		case "active", "inactive", "suspended":
			account.Status = in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Name != "" {
		account.Name = in.Name
	}
	account.UpdatedAt = time.Now()
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// DeleteAccount elimina una cuenta (administración).
func (uc *AuthUseCase) DeleteAccount(id string) error {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	return uc.accountRepo.Delete(id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
