package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

// Nombres de documento persistidos.
const (
	docClients      = "clients"
	docTransactions = "transactions"
	docUsers        = "authorized_users"
	docLanguage     = "language"
)

// SnapshotStore implementación del puerto SnapshotStore sobre PostgreSQL.
// Cada colección vive en una fila de la tabla documents como un cuerpo
// jsonb versionado; Replace reescribe el documento completo e incrementa la
// versión en la misma sentencia (upsert atómico).
type SnapshotStore struct {
	pool *pgxpool.Pool
}

// NewSnapshotStore construye el adaptador de persistencia de documentos.
func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

// EnsureSchema crea la tabla de documentos si no existe.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			name       text PRIMARY KEY,
			version    bigint NOT NULL DEFAULT 1,
			body       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla documents: %w", err)
	}
	return nil
}

func (s *SnapshotStore) LoadClients() ([]entity.Client, error) {
	out := []entity.Client{}
	if err := s.load(docClients, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SnapshotStore) ReplaceClients(clients []entity.Client) error {
	if clients == nil {
		clients = []entity.Client{}
	}
	return s.replace(docClients, clients)
}

func (s *SnapshotStore) LoadTransactions() ([]entity.FuelTransaction, error) {
	out := []entity.FuelTransaction{}
	if err := s.load(docTransactions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SnapshotStore) ReplaceTransactions(txs []entity.FuelTransaction) error {
	if txs == nil {
		txs = []entity.FuelTransaction{}
	}
	return s.replace(docTransactions, txs)
}

func (s *SnapshotStore) LoadUsers() ([]entity.AuthUser, error) {
	out := []entity.AuthUser{}
	if err := s.load(docUsers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SnapshotStore) ReplaceUsers(users []entity.AuthUser) error {
	if users == nil {
		users = []entity.AuthUser{}
	}
	return s.replace(docUsers, users)
}

func (s *SnapshotStore) LoadLanguage() (string, error) {
	code := ""
	if err := s.load(docLanguage, &code); err != nil {
		return "", err
	}
	if code == "" {
		return "en", nil
	}
	return code, nil
}

func (s *SnapshotStore) SaveLanguage(code string) error {
	return s.replace(docLanguage, code)
}

// load deserializa el cuerpo del documento en dest. Un documento inexistente
// no es error: dest queda con su valor cero (colección vacía).
func (s *SnapshotStore) load(name string, dest any) error {
	var body []byte
	err := s.pool.QueryRow(context.Background(),
		`SELECT body FROM documents WHERE name = $1`, name,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer documento %s: %w", name, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("deserializar documento %s: %w", name, err)
	}
	return nil
}

// replace upsert del documento completo, incrementando la versión.
func (s *SnapshotStore) replace(name string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar documento %s: %w", name, err)
	}
	_, err = s.pool.Exec(context.Background(), `
		INSERT INTO documents (name, version, body, updated_at)
		VALUES ($1, 1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET version = documents.version + 1, body = EXCLUDED.body, updated_at = now()`,
		name, body,
	)
	if err != nil {
		return fmt.Errorf("escribir documento %s: %w", name, err)
	}
	return nil
}
