package settings

import "context"

// SettingsRepository - interface for system_settings table
type SettingsRepository interface {
	Get(ctx context.Context, key string) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	Upsert(ctx context.Context, setting Setting) error
}
