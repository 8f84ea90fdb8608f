package dto

import "github.com/apelypenko/fueltrack-api/internal/domain/entity"

// BackupDocument export completo del estado para GET /api/backup y entrada
// de POST /api/restore. Clients y Transactions son obligatorios en un
// restore; AuthorizedUsers es opcional (un backup viejo puede no traerlos).
type BackupDocument struct {
	Clients         []entity.Client          `json:"clients"`
	Transactions    []entity.FuelTransaction `json:"transactions"`
	AuthorizedUsers []entity.AuthUser        `json:"authorizedUsers,omitempty"`
	ExportDate      string                   `json:"exportDate"`
	Version         string                   `json:"version"`
}

// RestoreResult resumen de un restore aplicado.
type RestoreResult struct {
	Clients      int `json:"clients"`
	Transactions int `json:"transactions"`
	Users        int `json:"users"`
}
