package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
	"github.com/apelypenko/fueltrack-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// PrimaryAdmin credenciales canónicas del administrador primario. Se siembra
// si falta y sus campos se refuerzan en cada carga.
type PrimaryAdmin struct {
	Name     string
	Email    string
	Password string
}

// AuthUseCase casos de uso de autenticación: login, sesión actual y siembra
// del administrador primario.
type AuthUseCase struct {
	store   repository.SnapshotStore
	jwtCfg  JWTConfig
	primary PrimaryAdmin
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store repository.SnapshotStore, jwtCfg JWTConfig, primary PrimaryAdmin) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg, primary: primary}
}

// EnsurePrimaryAdmin garantiza el registro canónico del administrador
// primario: lo siembra si falta y fuerza email, rol y credencial de vuelta a
// los valores de configuración si la copia almacenada fue alterada.
func (uc *AuthUseCase) EnsurePrimaryAdmin() error {
	users, err := uc.store.LoadUsers()
	if err != nil {
		return err
	}

	admin := entity.FindUserByID(users, entity.PrimaryAdminID)
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(uc.primary.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, entity.AuthUser{
			ID:           entity.PrimaryAdminID,
			Name:         uc.primary.Name,
			Email:        uc.primary.Email,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Permissions:  entity.AllPermissions(),
		})
		return uc.store.ReplaceUsers(users)
	}

	dirty := false
	if admin.Role != entity.RoleAdmin {
		admin.Role = entity.RoleAdmin
		dirty = true
	}
	if !strings.EqualFold(admin.Email, uc.primary.Email) {
		admin.Email = uc.primary.Email
		dirty = true
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(uc.primary.Password)) != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(uc.primary.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin.PasswordHash = string(hash)
		dirty = true
	}
	if !dirty {
		return nil
	}
	return uc.store.ReplaceUsers(users)
}

// Login verifica email (case-insensitive) y password contra bcrypt, genera
// JWT y retorna token + usuario. Cualquier fallo devuelve el mismo
// ErrInvalidCredentials genérico, sin distinguir email desconocido de
// password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, err
	}

	var user *entity.AuthUser
	for i := range users {
		if strings.EqualFold(users[i].Email, strings.TrimSpace(in.Email)) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		// Compara contra un hash dummy para igualar el costo del camino
		// de email desconocido con el de password incorrecto.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval"), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// CurrentUser resuelve el usuario de una sesión ya autenticada por su ID.
func (uc *AuthUseCase) CurrentUser(userID string) (*dto.UserResponse, error) {
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	user := entity.FindUserByID(users, userID)
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// toUserResponse mapea la entidad a respuesta con el set de permisos
// efectivo: un admin siempre reporta el universal.
func toUserResponse(u *entity.AuthUser) dto.UserResponse {
	perms := u.Permissions
	if u.IsAdmin() {
		perms = entity.AllPermissions()
	}
	return dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Permissions: dto.PermissionsPayload{
			CanSeeCost:            perms.CanSeeCost,
			CanManageUsers:        perms.CanManageUsers,
			CanManageTransactions: perms.CanManageTransactions,
			CanManageClients:      perms.CanManageClients,
			CanExport:             perms.CanExport,
		},
	}
}
