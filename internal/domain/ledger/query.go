// Package ledger implementa el motor de consulta del libro mayor: filtrado
// por cuenta, texto libre y rango de fechas, más el ordenamiento canónico.
//
// Query es referencialmente transparente: depende solo de sus cuatro entradas
// y nunca muta las colecciones, por lo que es segura de memoizar.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// AllClients valor del filtro de cuenta que desactiva el filtrado.
const AllClients = "all"

const dateLayout = "2006-01-02"

// Filter parámetros de consulta. Los campos vacíos son límites abiertos.
type Filter struct {
	ClientID  string // ID exacto, o AllClients / vacío para todas las cuentas
	Text      string // substring, case-insensitive
	StartDate string // YYYY-MM-DD inclusive
	EndDate   string // YYYY-MM-DD inclusive (el día completo)
}

// Query devuelve la secuencia ordenada de transacciones que cumplen el filtro.
// Orden: fecha descendente, hora descendente, y orden de inserción como
// desempate estable cuando fecha y hora coinciden.
func Query(txs []entity.FuelTransaction, clients []entity.Client, f Filter) []entity.FuelTransaction {
	start, hasStart := parseDay(f.StartDate)
	end, hasEnd := parseDay(f.EndDate)
	if hasEnd {
		// El límite superior incluye el día completo (normalización fin-de-día).
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	text := strings.ToLower(strings.TrimSpace(f.Text))

	out := make([]entity.FuelTransaction, 0, len(txs))
	for _, tx := range txs {
		if !matchClient(&tx, f.ClientID) {
			continue
		}
		if text != "" && !matchText(&tx, clients, text) {
			continue
		}
		if (hasStart || hasEnd) && !matchDate(&tx, start, hasStart, end, hasEnd) {
			continue
		}
		out = append(out, tx)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out
}

func matchClient(tx *entity.FuelTransaction, clientID string) bool {
	if clientID == "" || clientID == AllClients {
		return true
	}
	return tx.ClientID == clientID
}

// matchText busca el término en tarjeta, estación, dirección o nombre del
// cliente resuelto: basta con que cualquiera lo contenga.
func matchText(tx *entity.FuelTransaction, clients []entity.Client, lowered string) bool {
	if strings.Contains(strings.ToLower(tx.FuelCardNumber), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.StationName), lowered) {
		return true
	}
	if strings.Contains(strings.ToLower(tx.StationAddress), lowered) {
		return true
	}
	if c := entity.FindClientByID(clients, tx.ClientID); c != nil {
		return strings.Contains(strings.ToLower(c.Name), lowered)
	}
	return false
}

// matchDate compara solo fecha calendario, ignorando la hora del registro.
// Una fecha no parseable queda fuera de cualquier rango activo.
func matchDate(tx *entity.FuelTransaction, start time.Time, hasStart bool, end time.Time, hasEnd bool) bool {
	day, ok := parseDay(tx.Date)
	if !ok {
		return false
	}
	if hasStart && day.Before(start) {
		return false
	}
	if hasEnd && day.After(end) {
		return false
	}
	return true
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
