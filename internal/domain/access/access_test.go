package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apelypenko/fueltrack-api/internal/domain/access"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// El admin tiene el conjunto universal aunque sus permisos almacenados
// digan lo contrario (copia alterada o heredada de un rol anterior).
func TestHasPermission_AdminIgnoraPermisosAlmacenados(t *testing.T) {
	admin := &entity.AuthUser{ID: "u1", Role: entity.RoleAdmin, Permissions: entity.PermissionSet{}}

	for _, key := range []access.Permission{
		access.CanSeeCost, access.CanManageUsers, access.CanManageTransactions,
		access.CanManageClients, access.CanExport,
	} {
		assert.True(t, access.HasPermission(admin, key), "admin debe tener %s", key)
	}
}

func TestHasPermission_UserRespondeLoAlmacenado(t *testing.T) {
	user := &entity.AuthUser{
		ID:   "u2",
		Role: entity.RoleUser,
		Permissions: entity.PermissionSet{
			CanManageTransactions: true,
			CanExport:             true,
		},
	}

	assert.True(t, access.HasPermission(user, access.CanManageTransactions))
	assert.True(t, access.HasPermission(user, access.CanExport))
	assert.False(t, access.HasPermission(user, access.CanSeeCost))
	assert.False(t, access.HasPermission(user, access.CanManageUsers))
	assert.False(t, access.HasPermission(user, access.CanManageClients))
}

func TestHasPermission_SinUsuarioActivo(t *testing.T) {
	assert.False(t, access.HasPermission(nil, access.CanExport),
		"sin sesión activa no hay capacidades")
	assert.False(t, access.Session{}.HasPermission(access.CanSeeCost))
}

func TestHasPermission_ClaveDesconocida(t *testing.T) {
	user := &entity.AuthUser{ID: "u3", Role: entity.RoleUser, Permissions: entity.AllPermissions()}
	assert.False(t, access.HasPermission(user, access.Permission("canDoAnything")))
}
