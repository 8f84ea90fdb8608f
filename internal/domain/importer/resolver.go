// Package importer resuelve filas tabulares heterogéneas (encabezados
// arbitrarios, números con formato local) en entidades del dominio.
//
// La resolución de columnas usa tablas de alias por campo canónico: el
// encabezado se normaliza (minúsculas, sin espacios) y gana el primer alias
// presente en la fila. La importación masiva es deliberadamente permisiva:
// nunca invoca la validación de tarjetas y los valores no parseables caen a
// su default de campo en lugar de abortar la fila.
package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/apelypenko/fueltrack-api/internal/domain/entity"
)

// Row una fila de planilla ya leída: encabezado crudo → valor crudo de celda.
type Row map[string]string

// Tablas de alias por campo canónico, en orden de prioridad. Incluyen las
// variantes en inglés y ucraniano que aparecen en las planillas de los
// operadores de flota.
var (
	clientUniqueIDAliases = []string{"id", "uniqueid", "client id", "код", "код клієнта"}
	clientNameAliases     = []string{"name", "client", "client name", "назва", "клієнт", "назва клієнта"}
	clientEmailAliases    = []string{"email", "e-mail", "mail", "пошта", "ел. пошта"}
	clientAddressAliases  = []string{"address", "адреса"}
	clientCardsAliases    = []string{"cards", "fuel cards", "card numbers", "картки", "номери карток"}
	clientMarginAliases   = []string{"margin", "margin per liter", "markup", "маржа", "націнка"}

	txCardAliases     = []string{"cardnumber", "card number", "card", "fuel card", "картка", "номер картки"}
	txDateAliases     = []string{"date", "transaction date", "дата"}
	txTimeAliases     = []string{"time", "час"}
	txFuelTypeAliases = []string{"fueltype", "fuel type", "type", "fuel", "пальне", "тип пального"}
	txStationAliases  = []string{"station", "station name", "station_name", "азс", "станція", "назва азс"}
	txAddressAliases  = []string{"address", "location", "station address", "адреса", "адреса азс"}
	txLitersAliases   = []string{"liters", "litres", "volume", "quantity", "qty", "amount", "літри", "кількість", "об'єм"}
	txCostAliases     = []string{"cost", "price", "cost per liter", "buy price", "ціна", "вартість", "ціна закупівлі"}
)

// Defaults de campo cuando ningún alias resuelve.
const (
	defaultClientName  = "Unknown Client"
	defaultClientEmail = "no-email@example.com"
	defaultFuelType    = "Diesel"
	defaultStation     = "Generic Station"
	defaultAddress     = "Unknown Address"
	defaultTxTime      = "12:00"
	defaultMargin      = "0.10"
)

// Resolver convierte filas en entidades. Now y NewID existen para fijar
// tiempo e identidad en tests; NewResolver instala los reales.
type Resolver struct {
	Now   func() time.Time
	NewID func() string
}

func NewResolver() *Resolver {
	return &Resolver{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// ResolveClient materializa un Client desde una fila. Nunca falla: cada
// campo ausente o inválido toma su default.
func (r *Resolver) ResolveClient(row Row) entity.Client {
	uniqueID := r.lookup(row, clientUniqueIDAliases)
	if uniqueID == "" {
		uniqueID = "CLI-" + r.NewID()[:8]
	}
	name := r.lookup(row, clientNameAliases)
	if name == "" {
		name = defaultClientName
	}
	email := r.lookup(row, clientEmailAliases)
	if email == "" {
		email = defaultClientEmail
	}
	margin := CoerceDecimal(r.lookup(row, clientMarginAliases))
	if margin.IsZero() && r.lookup(row, clientMarginAliases) == "" {
		margin = CoerceDecimal(defaultMargin)
	}
	return entity.Client{
		ID:              r.NewID(),
		UniqueID:        uniqueID,
		Name:            name,
		Email:           email,
		Address:         r.lookup(row, clientAddressAliases),
		FuelCardNumbers: splitCards(r.lookup(row, clientCardsAliases)),
		MarginPerLiter:  margin,
	}
}

// ResolveTransaction materializa una FuelTransaction desde una fila. La
// tarjeta parseada se busca en la lista de clientes vigente (gana el primer
// match); sin match, la transacción queda sin asignar.
func (r *Resolver) ResolveTransaction(row Row, clients []entity.Client) entity.FuelTransaction {
	cardNum := r.lookup(row, txCardAliases)
	clientID := entity.UnassignedClientID
	if c := entity.FindClientByCard(clients, cardNum); c != nil {
		clientID = c.ID
	}

	date := r.lookup(row, txDateAliases)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = r.Now().Format("2006-01-02")
	}
	txTime := r.lookup(row, txTimeAliases)
	if txTime == "" {
		txTime = defaultTxTime
	}
	fuelType := r.lookup(row, txFuelTypeAliases)
	if fuelType == "" {
		fuelType = defaultFuelType
	}
	station := r.lookup(row, txStationAliases)
	if station == "" {
		station = defaultStation
	}
	address := r.lookup(row, txAddressAliases)
	if address == "" {
		address = defaultAddress
	}

	return entity.FuelTransaction{
		ID:               r.NewID(),
		ClientID:         clientID,
		FuelCardNumber:   cardNum,
		Date:             date,
		Time:             txTime,
		FuelType:         fuelType,
		StationName:      station,
		StationAddress:   address,
		Liters:           CoerceDecimal(r.lookup(row, txLitersAliases)),
		CostPerLiter:     CoerceDecimal(r.lookup(row, txCostAliases)),
		ShowCostToClient: true,
	}
}

// lookup devuelve el primer valor cuyo encabezado normalizado coincide con
// un alias, en el orden de la tabla.
func (r *Resolver) lookup(row Row, aliases []string) string {
	normalized := make(map[string]string, len(row))
	for header, value := range row {
		normalized[normalizeHeader(header)] = value
	}
	for _, alias := range aliases {
		if v, ok := normalized[normalizeHeader(alias)]; ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// normalizeHeader compara encabezados sin distinguir mayúsculas ni espacios.
func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), "")
}

// CoerceDecimal parsea un número con formato local: descarta todo lo que no
// sea dígito, coma, punto o signo menos, normaliza la coma decimal a punto y
// parsea. Un resultado no parseable coerciona a cero, nunca falla.
func CoerceDecimal(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func splitCards(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	cards := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cards = append(cards, trimmed)
		}
	}
	return cards
}
