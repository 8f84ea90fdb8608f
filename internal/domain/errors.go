package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Toda validación se ejecuta antes de cualquier mutación de colección:
// un error de esta lista garantiza que el estado quedó intacto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")

	// ErrCardMismatch: la tarjeta de la transacción no pertenece al cliente destino.
	ErrCardMismatch = errors.New("la tarjeta no está vinculada al cliente seleccionado")

	// Violaciones de unicidad al crear/editar clientes.
	ErrDuplicateClientID         = errors.New("ya existe un cliente con ese identificador")
	ErrDuplicateCardAssignment   = errors.New("la tarjeta ya está asignada a otro cliente")
	ErrDuplicateCardInSubmission = errors.New("tarjeta repetida dentro del mismo cliente")

	// ErrImportParse: archivo de importación ilegible; el import completo se aborta.
	ErrImportParse = errors.New("archivo de importación ilegible")

	// ErrRestoreFormat: el respaldo no contiene las claves mínimas (clients, transactions).
	ErrRestoreFormat = errors.New("formato de respaldo inválido")

	// ErrPrimaryAdmin: el administrador primario no puede eliminarse ni degradarse.
	ErrPrimaryAdmin = errors.New("el administrador primario está protegido")
)
