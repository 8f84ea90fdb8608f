package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
)

func storeConAdminPrimario(t *testing.T) *memory.SnapshotStore {
	t.Helper()
	store := memory.NewSnapshotStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-canonica"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceUsers([]entity.AuthUser{{
		ID: entity.PrimaryAdminID, Name: "Andriy Pelypenko",
		Email: "andriy.pelypenko@gmail.com", PasswordHash: string(hash),
		Role: entity.RoleAdmin, Permissions: entity.AllPermissions(),
	}}))
	return store
}

func altaUsuario(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Oksana",
		Email:    email,
		Password: "clave-de-ocho",
		Role:     entity.RoleUser,
		Permissions: dto.PermissionsPayload{
			CanManageTransactions: true,
			CanExport:             true,
		},
	}
}

func TestUserCreate_HasheaLaCredencial(t *testing.T) {
	store := storeConAdminPrimario(t)
	uc := NewUserUseCase(store)

	got, err := uc.Create(altaUsuario("oksana@example.com"))

	require.NoError(t, err)
	users, _ := store.LoadUsers()
	created := entity.FindUserByID(users, got.ID)
	require.NotNil(t, created)
	assert.NotEqual(t, "clave-de-ocho", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("clave-de-ocho")))
}

func TestUserCreate_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc := NewUserUseCase(storeConAdminPrimario(t))
	_, err := uc.Create(altaUsuario("oksana@example.com"))
	require.NoError(t, err)

	_, err = uc.Create(altaUsuario("OKSANA@example.com"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el email es clave de login única sin distinguir mayúsculas")
}

func TestUserCreate_PasswordCorto(t *testing.T) {
	uc := NewUserUseCase(storeConAdminPrimario(t))

	in := altaUsuario("oksana@example.com")
	in.Password = "corta"
	_, err := uc.Create(in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_PasswordVacioConservaCredencial(t *testing.T) {
	store := storeConAdminPrimario(t)
	uc := NewUserUseCase(store)
	created, err := uc.Create(altaUsuario("oksana@example.com"))
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateUserRequest{
		Name: "Oksana K.", Email: "oksana@example.com", Role: entity.RoleUser,
	})

	require.NoError(t, err)
	users, _ := store.LoadUsers()
	updated := entity.FindUserByID(users, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("clave-de-ocho")), "sin password nuevo la credencial vigente no cambia")
	assert.Equal(t, "Oksana K.", updated.Name)
}

func TestUserUpdate_AdminPrimarioNoSeDegrada(t *testing.T) {
	store := storeConAdminPrimario(t)
	uc := NewUserUseCase(store)

	_, err := uc.Update(entity.PrimaryAdminID, dto.UpdateUserRequest{
		Name: "Andriy Pelypenko", Email: "andriy.pelypenko@gmail.com", Role: entity.RoleUser,
	})

	require.NoError(t, err)
	users, _ := store.LoadUsers()
	admin := entity.FindUserByID(users, entity.PrimaryAdminID)
	assert.Equal(t, entity.RoleAdmin, admin.Role, "el rol del admin primario es inamovible")
}

func TestUserDelete_AdminPrimarioIntocable(t *testing.T) {
	uc := NewUserUseCase(storeConAdminPrimario(t))

	err := uc.Delete(entity.PrimaryAdminID, "otro-admin")

	assert.ErrorIs(t, err, domain.ErrPrimaryAdmin)
}

func TestUserDelete_NoPuedeBorrarseASiMismo(t *testing.T) {
	uc := NewUserUseCase(storeConAdminPrimario(t))
	created, err := uc.Create(altaUsuario("oksana@example.com"))
	require.NoError(t, err)

	err = uc.Delete(created.ID, created.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserDelete_Basico(t *testing.T) {
	store := storeConAdminPrimario(t)
	uc := NewUserUseCase(store)
	created, err := uc.Create(altaUsuario("oksana@example.com"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID, entity.PrimaryAdminID))

	users, _ := store.LoadUsers()
	assert.Len(t, users, 1, "solo queda el admin primario")
}
