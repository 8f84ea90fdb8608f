package auth

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

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "fueltrack-test"
	testPassword = "super-secreto-01"
)

func newUseCase(t *testing.T) (*AuthUseCase, *memory.SnapshotStore) {
	t.Helper()
	store := memory.NewSnapshotStore()
	uc := NewAuthUseCase(store,
		JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
		PrimaryAdmin{Name: "Andriy Pelypenko", Email: "andriy.pelypenko@gmail.com", Password: testPassword},
	)
	require.NoError(t, uc.EnsurePrimaryAdmin(), "la siembra del admin primario no debe fallar")
	return uc, store
}

func TestEnsurePrimaryAdmin_SiembraSiFalta(t *testing.T) {
	_, store := newUseCase(t)

	users, err := store.LoadUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	admin := users[0]
	assert.Equal(t, entity.PrimaryAdminID, admin.ID)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NotEqual(t, testPassword, admin.PasswordHash, "la credencial nunca se guarda en texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(testPassword)))
}

func TestEnsurePrimaryAdmin_RefuerzaCamposAlterados(t *testing.T) {
	uc, store := newUseCase(t)

	// Simula una copia almacenada adulterada: rol degradado y credencial pisada.
	users, _ := store.LoadUsers()
	users[0].Role = entity.RoleUser
	users[0].PasswordHash = "hash-roto"
	require.NoError(t, store.ReplaceUsers(users))

	require.NoError(t, uc.EnsurePrimaryAdmin())

	users, _ = store.LoadUsers()
	admin := entity.FindUserByID(users, entity.PrimaryAdminID)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role, "el rol canónico debe restaurarse en cada carga")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(testPassword)), "la credencial canónica debe restaurarse")
}

func TestEnsurePrimaryAdmin_EsIdempotente(t *testing.T) {
	uc, store := newUseCase(t)

	require.NoError(t, uc.EnsurePrimaryAdmin())
	require.NoError(t, uc.EnsurePrimaryAdmin())

	users, _ := store.LoadUsers()
	assert.Len(t, users, 1, "reforzar no debe duplicar el registro")
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "ANDRIY.PELYPENKO@Gmail.com", Password: testPassword})

	require.NoError(t, err, "el email hace match sin distinguir mayúsculas")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.PrimaryAdminID, resp.User.ID)
	assert.True(t, resp.User.Permissions.CanSeeCost, "un admin reporta el set de permisos universal")
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "andriy.pelypenko@gmail.com", Password: "otra-cosa"})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDesconocidoDevuelveElMismoError(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: testPassword})

	// Mismo error genérico que password incorrecto: sin pista de enumeración.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCurrentUser_UsuarioNoAdminReportaSusPermisos(t *testing.T) {
	uc, store := newUseCase(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("clave-de-ocho"), bcrypt.DefaultCost)
	require.NoError(t, err)
	users, _ := store.LoadUsers()
	users = append(users, entity.AuthUser{
		ID: "u-2", Name: "Oksana", Email: "oksana@example.com",
		PasswordHash: string(hash), Role: entity.RoleUser,
		Permissions: entity.PermissionSet{CanExport: true},
	})
	require.NoError(t, store.ReplaceUsers(users))

	got, err := uc.CurrentUser("u-2")

	require.NoError(t, err)
	assert.True(t, got.Permissions.CanExport)
	assert.False(t, got.Permissions.CanSeeCost, "un usuario no-admin reporta sus booleanos tal cual")
}

func TestCurrentUser_IDInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CurrentUser("fantasma")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
