package usecase

import (
	"github.com/google/uuid"

	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/cards"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/ledger"
	"github.com/apelypenko/fueltrack-api/internal/domain/pricing"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// TransactionUseCase casos de uso del libro mayor: alta, edición, baja y
// consulta. La autorización de tarjeta corre en alta y edición manual; no se
// re-evalúa después si las tarjetas del cliente cambian.
type TransactionUseCase struct {
	store repository.SnapshotStore
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(store repository.SnapshotStore) *TransactionUseCase {
	return &TransactionUseCase{store: store}
}

// Query filtra y ordena el libro mayor. canSeeCost controla si las
// respuestas llevan costo de compra y margen de línea.
func (uc *TransactionUseCase) Query(q dto.LedgerQuery, canSeeCost bool) (*dto.LedgerResponse, error) {
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}

	matched := ledger.Query(txs, clients, ledger.Filter{
		ClientID:  q.ClientID,
		Text:      q.Search,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})

	out := make([]dto.TransactionResponse, 0, len(matched))
	for i := range matched {
		out = append(out, toTransactionResponse(&matched[i], clients, canSeeCost))
	}
	return &dto.LedgerResponse{Transactions: out, Total: len(out)}, nil
}

// Create registra una transacción nueva. La tarjeta debe pertenecer al
// cliente destino salvo que la transacción quede sin asignar.
func (uc *TransactionUseCase) Create(in dto.CreateTransactionRequest, canSeeCost bool) (*dto.TransactionResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	if err := validateTransactionInput(&in); err != nil {
		return nil, err
	}
	if err := cards.ValidateAssignment(in.ClientID, in.FuelCardNumber, clients); err != nil {
		return nil, err
	}
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}

	tx := entity.FuelTransaction{
		ID:               uuid.New().String(),
		ClientID:         in.ClientID,
		FuelCardNumber:   in.FuelCardNumber,
		Date:             in.Date,
		Time:             in.Time,
		FuelType:         defaultString(in.FuelType, "Diesel"),
		StationName:      in.StationName,
		StationAddress:   in.StationAddress,
		Liters:           in.Liters,
		CostPerLiter:     in.CostPerLiter,
		ShowCostToClient: in.ShowCostToClient,
	}
	txs = append(txs, tx)
	if err := uc.store.ReplaceTransactions(txs); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(&tx, clients, canSeeCost)
	return &resp, nil
}

// Update reemplaza los campos de una transacción, re-corriendo la
// autorización de tarjeta contra la lista de clientes vigente.
func (uc *TransactionUseCase) Update(id string, in dto.UpdateTransactionRequest, canSeeCost bool) (*dto.TransactionResponse, error) {
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}
	if err := validateTransactionInput(&in); err != nil {
		return nil, err
	}
	if err := cards.ValidateAssignment(in.ClientID, in.FuelCardNumber, clients); err != nil {
		return nil, err
	}
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	current := findTransaction(txs, id)
	if current == nil {
		return nil, domain.ErrNotFound
	}

	current.ClientID = in.ClientID
	current.FuelCardNumber = in.FuelCardNumber
	current.Date = in.Date
	current.Time = in.Time
	current.FuelType = defaultString(in.FuelType, "Diesel")
	current.StationName = in.StationName
	current.StationAddress = in.StationAddress
	current.Liters = in.Liters
	current.CostPerLiter = in.CostPerLiter
	current.ShowCostToClient = in.ShowCostToClient

	if err := uc.store.ReplaceTransactions(txs); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(current, clients, canSeeCost)
	return &resp, nil
}

// Delete elimina una transacción del libro mayor.
func (uc *TransactionUseCase) Delete(id string) error {
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return err
	}
	kept := make([]entity.FuelTransaction, 0, len(txs))
	found := false
	for i := range txs {
		if txs[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, txs[i])
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.store.ReplaceTransactions(kept)
}

func validateTransactionInput(in *dto.CreateTransactionRequest) error {
	if in.ClientID == "" || in.Date == "" || in.Time == "" {
		return domain.ErrInvalidInput
	}
	if !in.Liters.IsPositive() || in.CostPerLiter.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func findTransaction(txs []entity.FuelTransaction, id string) *entity.FuelTransaction {
	for i := range txs {
		if txs[i].ID == id {
			return &txs[i]
		}
	}
	return nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// toTransactionResponse resuelve cliente y valores derivados. Sin permiso de
// ver costos se omiten costo de compra y margen, pero el precio de venta y
// el total de línea siempre viajan.
func toTransactionResponse(tx *entity.FuelTransaction, clients []entity.Client, canSeeCost bool) dto.TransactionResponse {
	client := entity.FindClientByID(clients, tx.ClientID)
	resp := dto.TransactionResponse{
		ID:                tx.ID,
		ClientID:          tx.ClientID,
		FuelCardNumber:    tx.FuelCardNumber,
		Date:              tx.Date,
		Time:              tx.Time,
		FuelType:          tx.FuelType,
		StationName:       tx.StationName,
		StationAddress:    tx.StationAddress,
		Liters:            tx.Liters,
		SellPricePerLiter: pricing.SellPrice(tx, client),
		LineTotal:         pricing.LineTotal(tx, client),
		ShowCostToClient:  tx.ShowCostToClient,
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if canSeeCost {
		cost := tx.CostPerLiter
		margin := pricing.LineMargin(tx, client)
		resp.CostPerLiter = &cost
		resp.LineMargin = &margin
	}
	return resp
}
