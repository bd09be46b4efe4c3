package settings

import "context"

// SettingsService defines business logic for typed system settings
type SettingsService interface {
	// GetSetting retrieves one setting by key
	GetSetting(ctx context.Context, key string) (SettingResponse, error)

	// ListSettings lists every setting
	ListSettings(ctx context.Context) ([]SettingResponse, error)

	// UpsertSetting creates or replaces a setting (super admin)
	UpsertSetting(ctx context.Context, req UpsertSettingRequest, updatedBy string) (SettingResponse, error)
}
