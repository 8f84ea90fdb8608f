package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PermissionsPayload los cinco permisos nominales de un usuario no-admin.
type PermissionsPayload struct {
	CanSeeCost            bool `json:"canSeeCost"`
	CanManageUsers        bool `json:"canManageUsers"`
	CanManageTransactions bool `json:"canManageTransactions"`
	CanManageClients      bool `json:"canManageClients"`
	CanExport             bool `json:"canExport"`
}

// UserResponse usuario en respuestas (sin credencial). Permissions refleja
// el set efectivo: para un admin siempre viene todo en true.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Permissions PermissionsPayload `json:"permissions"`
}

// CreateUserRequest body para POST /api/users (password en texto, se hashea
// en el use case).
type CreateUserRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Email       string             `json:"email" validate:"required,email"`
	Password    string             `json:"password" validate:"required,min=8"`
	Role        string             `json:"role" validate:"required,oneof=admin user"`
	Permissions PermissionsPayload `json:"permissions"`
}

// UpdateUserRequest body para PUT /api/users/:id. Password vacío conserva
// la credencial actual.
type UpdateUserRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Email       string             `json:"email" validate:"required,email"`
	Password    string             `json:"password" validate:"omitempty,min=8"`
	Role        string             `json:"role" validate:"required,oneof=admin user"`
	Permissions PermissionsPayload `json:"permissions"`
}
