package dto

// InsightRequest body para POST /api/insights. Language vacío usa el idioma
// configurado de reportes.
type InsightRequest struct {
	Language string `json:"language" validate:"omitempty,oneof=en uk"`
}

// InsightResponse resumen de actividad de flota generado por el LLM.
type InsightResponse struct {
	Summary     string `json:"summary"`
	Provider    string `json:"provider"`
	SampleSize  int    `json:"sampleSize"`
	GeneratedAt string `json:"generatedAt"`
}

// ImportResult resumen de una importación de planilla aplicada.
type ImportResult struct {
	Imported int    `json:"imported"`
	Kind     string `json:"kind"` // "clients" o "transactions"
}

// LanguageResponse idioma vigente de reportes.
type LanguageResponse struct {
	Language string `json:"language"`
}

// UpdateLanguageRequest body para PUT /api/settings/language.
type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en uk"`
}
