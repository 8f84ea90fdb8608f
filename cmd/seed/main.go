// seed puebla el almacén con datos de demostración: tres cuentas de cliente
// con tarjetas y márgenes distintos, y un puñado de transacciones recientes.
//
// Uso: go run ./cmd/seed
// Respeta STORE_DRIVER y el resto de la configuración estándar. Aborta si ya
// existen clientes para no duplicar datos.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/apelypenko/fueltrack-api/internal/application/auth"
	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/memory"
	"github.com/apelypenko/fueltrack-api/internal/infrastructure/postgres"
	"github.com/apelypenko/fueltrack-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var store repository.SnapshotStore
	switch cfg.Store.Driver {
	case "memory":
		store = memory.NewSnapshotStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		pgStore := postgres.NewSnapshotStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "esquema de documentos: %v\n", err)
			os.Exit(1)
		}
		store = pgStore
	}

	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.PrimaryAdmin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err := authUC.EnsurePrimaryAdmin(); err != nil {
		fmt.Fprintf(os.Stderr, "sembrar administrador primario: %v\n", err)
		os.Exit(1)
	}

	existing, err := store.LoadClients()
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer clientes: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("ya existen %d clientes, no se siembra nada\n", len(existing))
		return
	}

	clients := demoClients()
	if err := store.ReplaceClients(clients); err != nil {
		fmt.Fprintf(os.Stderr, "escribir clientes: %v\n", err)
		os.Exit(1)
	}
	txs := demoTransactions(clients)
	if err := store.ReplaceTransactions(txs); err != nil {
		fmt.Fprintf(os.Stderr, "escribir transacciones: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sembrados %d clientes y %d transacciones\n", len(clients), len(txs))
}

func demoClients() []entity.Client {
	return []entity.Client{
		{
			ID:              uuid.NewString(),
			UniqueID:        "CLI-TRANSUA",
			Name:            "TransUA Logistics",
			Email:           "fleet@transua.example",
			Address:         "Peremohy Ave 12, Kyiv",
			FuelCardNumbers: []string{"4411 0001", "4411 0002", "4411 0003"},
			MarginPerLiter:  decimal.RequireFromString("0.30"),
		},
		{
			ID:              uuid.NewString(),
			UniqueID:        "CLI-AGROTEK",
			Name:            "AgroTek Farms",
			Email:           "office@agrotek.example",
			Address:         "Soborna St 4, Vinnytsia",
			FuelCardNumbers: []string{"4412 0001"},
			MarginPerLiter:  decimal.RequireFromString("0.15"),
		},
		{
			ID:              uuid.NewString(),
			UniqueID:        "CLI-BUDMASH",
			Name:            "BudMash Construction",
			Email:           "accounts@budmash.example",
			Address:         "Naberezhna St 30, Dnipro",
			FuelCardNumbers: []string{"4413 0001", "4413 0002"},
			MarginPerLiter:  decimal.RequireFromString("0.25"),
		},
	}
}

func demoTransactions(clients []entity.Client) []entity.FuelTransaction {
	stations := []struct{ name, addr string }{
		{"OKKO Kyiv-12", "Peremohy Ave 89, Kyiv"},
		{"WOG Lviv-3", "Horodotska St 174, Lviv"},
		{"UPG Odesa-7", "Kyivskyi Way 21, Odesa"},
	}
	var txs []entity.FuelTransaction
	day := time.Now()
	for i := 0; i < 12; i++ {
		client := clients[i%len(clients)]
		st := stations[i%len(stations)]
		txs = append(txs, entity.FuelTransaction{
			ID:               uuid.NewString(),
			ClientID:         client.ID,
			FuelCardNumber:   client.FuelCardNumbers[0],
			Date:             day.AddDate(0, 0, -i).Format("2006-01-02"),
			Time:             fmt.Sprintf("%02d:15", 8+(i%10)),
			FuelType:         "Diesel",
			StationName:      st.name,
			StationAddress:   st.addr,
			Liters:           decimal.NewFromInt(int64(40 + 5*i)),
			CostPerLiter:     decimal.RequireFromString("42.10"),
			ShowCostToClient: i%3 != 1,
		})
	}
	return txs
}
