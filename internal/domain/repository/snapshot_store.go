package repository

import "github.com/apelypenko/fueltrack-api/internal/domain/entity"

// SnapshotStore define el puerto de persistencia de colecciones (DIP).
//
// Cada colección se persiste como un documento JSON independiente y
// versionado; la escritura reemplaza el documento completo (snapshot
// inmutable, nunca diff por entidad). Load de un documento inexistente
// devuelve la colección vacía, no error.
type SnapshotStore interface {
	LoadClients() ([]entity.Client, error)
	ReplaceClients(clients []entity.Client) error

	LoadTransactions() ([]entity.FuelTransaction, error)
	ReplaceTransactions(txs []entity.FuelTransaction) error

	LoadUsers() ([]entity.AuthUser, error)
	ReplaceUsers(users []entity.AuthUser) error

	// LoadLanguage devuelve el código de dos letras del idioma de reportes
	// ("en" si nunca se guardó uno).
	LoadLanguage() (string, error)
	SaveLanguage(code string) error
}
