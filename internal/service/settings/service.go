package settings

import (
	"context"
	"fmt"

	"github.com/mawared/mawared-backend/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepository}
}

// GetSetting implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSetting(ctx context.Context, key string) (settings.SettingResponse, error) {
	setting, err := s.SettingsRepository.Get(ctx, key)
	if err != nil {
		return settings.SettingResponse{}, err
	}
	return settings.NewSettingResponse(setting), nil
}

// ListSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) ListSettings(ctx context.Context) ([]settings.SettingResponse, error) {
	list, err := s.SettingsRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	responses := make([]settings.SettingResponse, 0, len(list))
	for _, setting := range list {
		responses = append(responses, settings.NewSettingResponse(setting))
	}
	return responses, nil
}

// UpsertSetting implements settings.SettingsService.
func (s *SettingsServiceImpl) UpsertSetting(ctx context.Context, req settings.UpsertSettingRequest, updatedBy string) (settings.SettingResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingResponse{}, err
	}

	setting := settings.Setting{
		Key:       req.Key,
		Value:     req.Value,
		Kind:      settings.Kind(req.Kind),
		UpdatedBy: &updatedBy,
	}
	if err := s.SettingsRepository.Upsert(ctx, setting); err != nil {
		return settings.SettingResponse{}, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return settings.NewSettingResponse(setting), nil
}
