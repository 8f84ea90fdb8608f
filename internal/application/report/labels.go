// Package report genera los artefactos de salida del libro mayor: planilla
// XLSX, invoices PDF y backup/restore del estado completo.
package report

import (
	"golang.org/x/text/language"
)

// Labels rótulos de reporte resueltos a un idioma.
type Labels struct {
	InvoiceTitle      string
	ConsolidatedTitle string
	ClientID          string
	ClientName        string
	Address           string
	InvoiceDate       string
	ReportGenerated   string
	Scope             string
	AllClients        string
	ManualEntry       string
	Date              string
	Time              string
	Client            string
	Card              string
	Station           string
	FuelType          string
	Liters            string
	PricePerLiter     string
	BuyPrice          string
	Total             string
	GrandTotal        string
	Currency          string
}

var labelsEN = Labels{
	InvoiceTitle:      "FUEL PURCHASE INVOICE",
	ConsolidatedTitle: "CONSOLIDATED FUEL INVOICE",
	ClientID:          "Client ID",
	ClientName:        "Client Name",
	Address:           "Address",
	InvoiceDate:       "Invoice Date",
	ReportGenerated:   "Report Generated",
	Scope:             "Scope",
	AllClients:        "All Clients",
	ManualEntry:       "Manual Entry",
	Date:              "Date",
	Time:              "Time",
	Client:            "Client",
	Card:              "Card",
	Station:           "Station",
	FuelType:          "Type",
	Liters:            "Liters",
	PricePerLiter:     "Price/L",
	BuyPrice:          "Buy Price",
	Total:             "Total",
	GrandTotal:        "GRAND TOTAL",
	Currency:          "UAH",
}

var labelsUK = Labels{
	InvoiceTitle:      "РАХУНОК НА ПАЛЬНЕ",
	ConsolidatedTitle: "ЗВЕДЕНИЙ ЗВІТ",
	ClientID:          "ID Клієнта",
	ClientName:        "Назва",
	Address:           "Адреса",
	InvoiceDate:       "Дата",
	ReportGenerated:   "Створено",
	Scope:             "Область",
	AllClients:        "Всі клієнти",
	ManualEntry:       "Ручний запис",
	Date:              "Дата",
	Time:              "Час",
	Client:            "Клієнт",
	Card:              "Картка",
	Station:           "АЗС",
	FuelType:          "Тип",
	Liters:            "Літри",
	PricePerLiter:     "Ціна/Л",
	BuyPrice:          "Ціна закупівлі",
	Total:             "Всього",
	GrandTotal:        "ВСЬОГО",
	Currency:          "UAH",
}

// matcher negocia el idioma de reportes soportado más cercano al pedido.
var matcher = language.NewMatcher([]language.Tag{
	language.English, // fallback
	language.Ukrainian,
})

// LabelsFor resuelve el set de rótulos para un código de idioma. Códigos
// desconocidos o regionales ("uk-UA", "en-GB") negocian al soportado más
// cercano; todo lo demás cae a inglés.
func LabelsFor(code string) Labels {
	_, idx := language.MatchStrings(matcher, code)
	if idx == 1 {
		return labelsUK
	}
	return labelsEN
}
