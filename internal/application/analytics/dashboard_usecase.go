// Package analytics arma las métricas agregadas del panel de control.
package analytics

import (
	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/fleet"
	"github.com/apelypenko/fueltrack-api/internal/domain/ledger"
	"github.com/apelypenko/fueltrack-api/internal/domain/pricing"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// recentLimit transacciones recientes que muestra el panel.
const recentLimit = 5

// DashboardUseCase totales de flota y actividad reciente.
type DashboardUseCase struct {
	store repository.SnapshotStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.SnapshotStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary agrega el libro mayor completo: litros, facturación y margen
// totales, más las últimas transacciones. El margen viaja solo con permiso
// de ver costos.
func (uc *DashboardUseCase) Summary(canSeeCost bool) (*dto.DashboardResponse, error) {
	txs, err := uc.store.LoadTransactions()
	if err != nil {
		return nil, err
	}
	clients, err := uc.store.LoadClients()
	if err != nil {
		return nil, err
	}

	totals := fleet.Aggregate(txs, clients)
	ordered := ledger.Query(txs, clients, ledger.Filter{})
	if len(ordered) > recentLimit {
		ordered = ordered[:recentLimit]
	}

	recent := make([]dto.TransactionResponse, 0, len(ordered))
	for i := range ordered {
		recent = append(recent, toRecentResponse(&ordered[i], clients, canSeeCost))
	}

	resp := &dto.DashboardResponse{
		TotalLiters:        totals.Liters,
		TotalRevenue:       totals.Revenue,
		TransactionCount:   totals.Count,
		ClientCount:        len(clients),
		ActiveCardCount:    countCards(clients),
		RecentTransactions: recent,
	}
	if canSeeCost {
		margin := totals.Margin
		resp.TotalMargin = &margin
	}
	return resp, nil
}

func countCards(clients []entity.Client) int {
	n := 0
	for i := range clients {
		n += len(clients[i].FuelCardNumbers)
	}
	return n
}

func toRecentResponse(tx *entity.FuelTransaction, clients []entity.Client, canSeeCost bool) dto.TransactionResponse {
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
