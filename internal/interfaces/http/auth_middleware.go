package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain/access"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
	"github.com/apelypenko/fueltrack-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequirePermission devuelve un middleware Fiber que evalúa una capacidad
// contra el documento de usuarios. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalUserID). El rol admin del token corta temprano sin tocar
// el almacén; para el resto la fuente de verdad es el documento persistido,
// de modo que un cambio de permisos aplica sin esperar a que expire el token.
//
// Comportamiento:
//   - 401 Unauthorized → sin user_id en el contexto, o el usuario ya no existe.
//   - 403 Forbidden    → el permiso está denegado.
//   - 503 Service Unavailable → fallo de infraestructura al consultar el almacén.
func RequirePermission(store repository.SnapshotStore, perm access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		if GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}

		user, err := sessionUser(c, store)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "la cuenta de la sesión ya no existe",
			})
		}
		if !access.HasPermission(user, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la cuenta no tiene el permiso '" + string(perm) + "'",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// sessionUser carga el usuario de la sesión desde el documento de usuarios.
// Devuelve nil sin error si la cuenta fue eliminada.
func sessionUser(c *fiber.Ctx, store repository.SnapshotStore) (*entity.AuthUser, error) {
	users, err := store.LoadUsers()
	if err != nil {
		return nil, err
	}
	return entity.FindUserByID(users, GetUserID(c)), nil
}

// sessionCanSeeCost evalúa el permiso de costos para la sesión actual.
// Ante un fallo del almacén responde false: los costos se omiten, nunca
// se filtran por error.
func sessionCanSeeCost(c *fiber.Ctx, store repository.SnapshotStore) bool {
	if GetRole(c) == entity.RoleAdmin {
		return true
	}
	user, err := sessionUser(c, store)
	if err != nil {
		return false
	}
	return access.HasPermission(user, access.CanSeeCost)
}
