package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para cuentas de clientes. Toda mutación es
// validate-then-commit: los invariantes de unicidad se verifican contra el
// snapshot completo antes de reemplazarlo.
type ClientUseCase struct {
	store repository.SnapshotStore
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(store repository.SnapshotStore) *ClientUseCase {
	return &ClientUseCase{store: store}
}

// List devuelve todas las cuentas en orden de inserción.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return out, nil
}

// GetByID obtiene una cuenta por su ID interno.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	client := entity.FindClientByID(clients, id)
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(client)
	return &resp, nil
}

// Create crea una cuenta nueva. Falla sin mutar nada si el uniqueId ya
// existe, si una tarjeta se repite dentro del alta o si la tarjeta ya
// pertenece a otra cuenta.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}

	candidate := entity.Client{
		ID:              uuid.New().String(),
		UniqueID:        strings.TrimSpace(in.UniqueID),
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Address:         strings.TrimSpace(in.Address),
		FuelCardNumbers: normalizeCards(in.FuelCardNumbers),
		MarginPerLiter:  in.MarginPerLiter,
	}
	if candidate.UniqueID == "" || candidate.Name == "" || candidate.MarginPerLiter.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := validateClientUniqueness(clients, &candidate, ""); err != nil {
		return nil, err
	}

	clients = append(clients, candidate)
	if err := uc.store.ReplaceClients(clients); err != nil {
		return nil, err
	}
	resp := toClientResponse(&candidate)
	return &resp, nil
}

// Update reemplaza los campos de una cuenta. Re-valida los invariantes de
// unicidad contra todas las demás cuentas, excluyéndose a sí misma.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	current := entity.FindClientByID(clients, id)
	if current == nil {
		return nil, domain.ErrNotFound
	}

	candidate := entity.Client{
		ID:              id,
		UniqueID:        strings.TrimSpace(in.UniqueID),
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Address:         strings.TrimSpace(in.Address),
		FuelCardNumbers: normalizeCards(in.FuelCardNumbers),
		MarginPerLiter:  in.MarginPerLiter,
	}
	if candidate.UniqueID == "" || candidate.Name == "" || candidate.MarginPerLiter.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := validateClientUniqueness(clients, &candidate, id); err != nil {
		return nil, err
	}

	*current = candidate
	if err := uc.store.ReplaceClients(clients); err != nil {
		return nil, err
	}
	resp := toClientResponse(&candidate)
	return &resp, nil
}

// Delete elimina una cuenta. No cascadea: las transacciones que la
// referencian quedan huérfanas (referencia débil tolerada).
func (uc *ClientUseCase) Delete(id string) error {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return err
	}
	kept := make([]entity.Client, 0, len(clients))
	found := false
	for i := range clients {
		if clients[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, clients[i])
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.store.ReplaceClients(kept)
}

// validateClientUniqueness aplica los tres invariantes de unicidad:
// uniqueId global, tarjeta sin repetir dentro del alta, y tarjeta en a lo
// sumo una cuenta de todo el sistema. excludeID omite la propia cuenta en
// una edición.
func validateClientUniqueness(clients []entity.Client, candidate *entity.Client, excludeID string) error {
	seen := make(map[string]struct{}, len(candidate.FuelCardNumbers))
	for _, card := range candidate.FuelCardNumbers {
		if _, dup := seen[card]; dup {
			return domain.ErrDuplicateCardInSubmission
		}
		seen[card] = struct{}{}
	}
	for i := range clients {
		other := &clients[i]
		if other.ID == excludeID {
			continue
		}
		if strings.EqualFold(other.UniqueID, candidate.UniqueID) {
			return domain.ErrDuplicateClientID
		}
		for _, card := range candidate.FuelCardNumbers {
			if other.HasCard(card) {
				return domain.ErrDuplicateCardAssignment
			}
		}
	}
	return nil
}

func normalizeCards(cards []string) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:              c.ID,
		UniqueID:        c.UniqueID,
		Name:            c.Name,
		Email:           c.Email,
		Address:         c.Address,
		FuelCardNumbers: c.FuelCardNumbers,
		MarginPerLiter:  c.MarginPerLiter,
	}
}
