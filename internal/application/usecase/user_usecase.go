package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// UserUseCase administración de usuarios autorizados. El administrador
// primario es intocable: no se borra y su rol no se degrada por esta vía.
type UserUseCase struct {
	store repository.SnapshotStore
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store repository.SnapshotStore) *UserUseCase {
	return &UserUseCase{store: store}
}

// List devuelve todos los usuarios autorizados, sin credenciales.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

// Create registra un usuario nuevo. El email es clave de login única,
// comparada sin distinguir mayúsculas.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, in.Email) {
			return nil, domain.ErrInvalidInput
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.AuthUser{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  fromPermissionsPayload(in.Permissions),
	}
	users = append(users, user)
	if err := uc.store.ReplaceUsers(users); err != nil {
		return nil, err
	}
	resp := toUserResponse(&user)
	return &resp, nil
}

// Update edita un usuario. Password vacío conserva la credencial vigente.
// El administrador primario mantiene su rol admin pase lo que pase.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, err
	}
	user := entity.FindUserByID(users, id)
	if user == nil {
		return nil, domain.ErrNotFound
	}
	for i := range users {
		if users[i].ID != id && strings.EqualFold(users[i].Email, in.Email) {
			return nil, domain.ErrInvalidInput
		}
	}

	user.Name = strings.TrimSpace(in.Name)
	user.Email = strings.TrimSpace(in.Email)
	user.Role = in.Role
	user.Permissions = fromPermissionsPayload(in.Permissions)
	if id == entity.PrimaryAdminID {
		user.Role = entity.RoleAdmin
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.store.ReplaceUsers(users); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Delete elimina un usuario. Ni el administrador primario ni la propia
// sesión pueden borrarse.
func (uc *UserUseCase) Delete(id, sessionUserID string) error {
	if id == entity.PrimaryAdminID {
		return domain.ErrPrimaryAdmin
	}
	if id == sessionUserID {
		return domain.ErrForbidden
	}
	users, err := uc.store.LoadUsers()
	if err != nil {
		return err
	}
	kept := make([]entity.AuthUser, 0, len(users))
	found := false
	for i := range users {
		if users[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, users[i])
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.store.ReplaceUsers(kept)
}

func fromPermissionsPayload(p dto.PermissionsPayload) entity.PermissionSet {
	return entity.PermissionSet{
		CanSeeCost:            p.CanSeeCost,
		CanManageUsers:        p.CanManageUsers,
		CanManageTransactions: p.CanManageTransactions,
		CanManageClients:      p.CanManageClients,
		CanExport:             p.CanExport,
	}
}

// toUserResponse mapea con el set de permisos efectivo: un admin reporta
// siempre el universal, sin importar lo almacenado.
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
