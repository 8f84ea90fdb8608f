package usecase

import (
	"github.com/apelypenko/fueltrack-api/internal/application/dto"
	"github.com/apelypenko/fueltrack-api/internal/domain"
	"github.com/apelypenko/fueltrack-api/internal/domain/repository"
)

// SettingsUseCase preferencias globales del sistema (hoy solo el idioma de
// reportes).
type SettingsUseCase struct {
	store repository.SnapshotStore
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.SnapshotStore) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Language idioma vigente de reportes.
func (uc *SettingsUseCase) Language() (*dto.LanguageResponse, error) {
	code, err := uc.store.LoadLanguage()
	if err != nil {
		return nil, err
	}
	return &dto.LanguageResponse{Language: code}, nil
}

// UpdateLanguage fija el idioma de reportes. Solo se aceptan los soportados.
func (uc *SettingsUseCase) UpdateLanguage(in dto.UpdateLanguageRequest) (*dto.LanguageResponse, error) {
	if in.Language != "en" && in.Language != "uk" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.store.SaveLanguage(in.Language); err != nil {
		return nil, err
	}
	return &dto.LanguageResponse{Language: in.Language}, nil
}
