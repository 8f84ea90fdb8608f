// Package access implementa el evaluador de permisos. La evaluación es una
// función pura sobre el usuario de la sesión: el rol admin implica siempre el
// conjunto universal de permisos, sin importar lo que haya almacenado; el rol
// user responde con el booleano guardado bajo la clave.
//
// El paquete no aplica el gating por sí mismo: la capa HTTP decide cuándo
// preguntar (ver RequirePermission en interfaces/http).
package access

import "github.com/apelypenko/fueltrack-api/internal/domain/entity"

// Permission clave de capacidad consultable.
type Permission string

// Claves de permiso por categoría de operación.
const (
	CanSeeCost            Permission = "canSeeCost"
	CanManageUsers        Permission = "canManageUsers"
	CanManageTransactions Permission = "canManageTransactions"
	CanManageClients      Permission = "canManageClients"
	CanExport             Permission = "canExport"
)

// Session sesión activa: cero o un usuario autenticado. Se pasa explícita a
// las operaciones en lugar de vivir en estado global.
type Session struct {
	User *entity.AuthUser
}

// HasPermission evalúa una capacidad para la sesión.
func (s Session) HasPermission(key Permission) bool {
	return HasPermission(s.User, key)
}

// HasPermission evalúa una capacidad para un usuario.
// Sin usuario activo → false. Admin → true incondicional.
func HasPermission(u *entity.AuthUser, key Permission) bool {
	if u == nil {
		return false
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	switch key {
	case CanSeeCost:
		return u.Permissions.CanSeeCost
	case CanManageUsers:
		return u.Permissions.CanManageUsers
	case CanManageTransactions:
		return u.Permissions.CanManageTransactions
	case CanManageClients:
		return u.Permissions.CanManageClients
	case CanExport:
		return u.Permissions.CanExport
	default:
		return false
	}
}
