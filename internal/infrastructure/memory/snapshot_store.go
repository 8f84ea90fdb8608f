// Package memory implementa el SnapshotStore en memoria, para desarrollo
// local y tests. Mismo contrato que el adaptador de PostgreSQL: reemplazo
// wholesale de cada colección, sin diffing.
package memory

import (
	"sync"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore colecciones en memoria protegidas por un RWMutex. Load
// devuelve copias: el caller nunca comparte backing array con el store.
type SnapshotStore struct {
	mu           sync.RWMutex
	clients      []entity.Client
	transactions []entity.FuelTransaction
	users        []entity.AuthUser
	language     string
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{language: "en"}
}

func (s *SnapshotStore) LoadClients() ([]entity.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

func (s *SnapshotStore) ReplaceClients(clients []entity.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make([]entity.Client, len(clients))
	copy(s.clients, clients)
	return nil
}

func (s *SnapshotStore) LoadTransactions() ([]entity.FuelTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.FuelTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out, nil
}

func (s *SnapshotStore) ReplaceTransactions(txs []entity.FuelTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = make([]entity.FuelTransaction, len(txs))
	copy(s.transactions, txs)
	return nil
}

func (s *SnapshotStore) LoadUsers() ([]entity.AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.AuthUser, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *SnapshotStore) ReplaceUsers(users []entity.AuthUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]entity.AuthUser, len(users))
	copy(s.users, users)
	return nil
}

func (s *SnapshotStore) LoadLanguage() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.language == "" {
		return "en", nil
	}
	return s.language, nil
}

func (s *SnapshotStore) SaveLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
	return nil
}
