package entity

// Roles válidos para AuthUser.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// PrimaryAdminID es el ID fijo del administrador primario. El registro se
// siembra si falta y sus campos canónicos se refuerzan en cada carga,
// pisando cualquier copia almacenada alterada.
const PrimaryAdminID = "primary-admin"

// PermissionSet permisos nombrados de un usuario con rol "user".
// Para rol "admin" el conjunto efectivo es siempre el universal,
// sin importar lo almacenado.
type PermissionSet struct {
	CanSeeCost            bool `json:"canSeeCost"`
	CanManageUsers        bool `json:"canManageUsers"`
	CanManageTransactions bool `json:"canManageTransactions"`
	CanManageClients      bool `json:"canManageClients"`
	CanExport             bool `json:"canExport"`
}

// AllPermissions devuelve el conjunto universal.
func AllPermissions() PermissionSet {
	return PermissionSet{
		CanSeeCost:            true,
		CanManageUsers:        true,
		CanManageTransactions: true,
		CanManageClients:      true,
		CanExport:             true,
	}
}

// AuthUser representa un usuario autorizado del sistema.
// PasswordHash es siempre bcrypt; nunca se persiste un password plano.
type AuthUser struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"` // clave de login, única (case-insensitive)
	PasswordHash string        `json:"passwordHash"`
	Role         string        `json:"role"` // admin | user
	Permissions  PermissionSet `json:"permissions"`
}

// IsAdmin indica si el usuario tiene rol administrador.
func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// FindUserByID busca un usuario por ID. Devuelve nil si no existe.
func FindUserByID(users []AuthUser, id string) *AuthUser {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
