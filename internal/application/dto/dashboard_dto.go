package dto

import "github.com/shopspring/decimal"

// DashboardResponse métricas de flota para GET /api/dashboard.
// TotalMargin viaja solo para usuarios con permiso de ver costos.
type DashboardResponse struct {
	TotalLiters        decimal.Decimal       `json:"totalLiters"`
	TotalRevenue       decimal.Decimal       `json:"totalRevenue"`
	TotalMargin        *decimal.Decimal      `json:"totalMargin,omitempty"`
	TransactionCount   int                   `json:"transactionCount"`
	ClientCount        int                   `json:"clientCount"`
	ActiveCardCount    int                   `json:"activeCardCount"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}
