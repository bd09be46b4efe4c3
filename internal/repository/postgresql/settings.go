package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/settings"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func (r *settingsRepositoryImpl) Get(ctx context.Context, key string) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT key, value, kind, updated_by, updated_at FROM system_settings WHERE key = $1`

	var s settings.Setting
	err := q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.Kind, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Setting{}, settings.ErrSettingNotFound
		}
		return settings.Setting{}, err
	}
	return s, nil
}

func (r *settingsRepositoryImpl) List(ctx context.Context) ([]settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT key, value, kind, updated_by, updated_at FROM system_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []settings.Setting{}
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.Kind, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *settingsRepositoryImpl) Upsert(ctx context.Context, setting settings.Setting) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_settings (key, value, kind, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			kind = EXCLUDED.kind,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, setting.Key, setting.Value, setting.Kind, setting.UpdatedBy)
	return err
}
