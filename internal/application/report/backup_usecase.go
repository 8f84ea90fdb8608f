package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// backupVersion versión del formato de backup.
const backupVersion = "1.0"

// PrimaryAdminEnforcer re-siembra el administrador primario después de
// reemplazar la colección de usuarios.
type PrimaryAdminEnforcer interface {
	EnsurePrimaryAdmin() error
}

// BackupUseCase export e import del estado completo como un único documento
// JSON. El restore es irreversible: reemplaza las colecciones wholesale y
// exige confirmación explícita antes de tocar nada.
type BackupUseCase struct {
	store    repository.SnapshotStore
	enforcer PrimaryAdminEnforcer
	now      func() time.Time
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(store repository.SnapshotStore, enforcer PrimaryAdminEnforcer) *BackupUseCase {
	return &BackupUseCase{store: store, enforcer: enforcer, now: time.Now}
}

// Backup arma el documento completo del estado vigente.
func (uc *BackupUseCase) Backup() (*dto.BackupDocument, string, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, "", err
	}
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, "", err
	}
	users, err := uc.store.LoadUsers()
	if err != nil {
		return nil, "", err
	}
	doc := &dto.BackupDocument{
		Clients:         clients,
		Transactions:    txs,
		AuthorizedUsers: users,
		ExportDate:      uc.now().UTC().Format(time.RFC3339),
		Version:         backupVersion,
	}
	filename := "FuelTrack_Backup_" + uc.now().Format("20060102_1504") + ".json"
	return doc, filename, nil
}

// Restore aplica un backup. Valida el formato completo antes de la primera
// escritura: clients y transactions son claves obligatorias; los usuarios
// solo se reemplazan si el documento los trae, y el administrador primario
// se re-siembra después por si el backup no lo incluía.
func (uc *BackupUseCase) Restore(raw []byte, confirmed bool) (*dto.RestoreResult, error) {
	if !confirmed {
		return nil, fmt.Errorf("%w: el restore requiere confirmación explícita", domain.ErrInvalidInput)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestoreFormat, err)
	}
	if _, ok := keys["clients"]; !ok {
		return nil, fmt.Errorf("%w: falta la clave clients", domain.ErrRestoreFormat)
	}
	if _, ok := keys["transactions"]; !ok {
		return nil, fmt.Errorf("%w: falta la clave transactions", domain.ErrRestoreFormat)
	}
	var doc dto.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRestoreFormat, err)
	}

	if err := uc.store.ReplaceClients(doc.Clients); err != nil {
		return nil, err
	}
	if err := uc.store.ReplaceTransactions(doc.Transactions); err != nil {
		return nil, err
	}
	result := &dto.RestoreResult{Clients: len(doc.Clients), Transactions: len(doc.Transactions)}
	if doc.AuthorizedUsers != nil {
		if err := uc.store.ReplaceUsers(doc.AuthorizedUsers); err != nil {
			return nil, err
		}
		result.Users = len(doc.AuthorizedUsers)
	}
	if err := uc.enforcer.EnsurePrimaryAdmin(); err != nil {
		return nil, err
	}
	return result, nil
}
