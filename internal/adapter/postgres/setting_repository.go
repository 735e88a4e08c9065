package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaigns-api/internal/core/domain"
	"campaigns-api/internal/core/port"
)

const foreignKeyViolation = "23503"

// SettingRepository implements port.SettingRepository using pgxpool.
type SettingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository returns a new repository instance.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

func scanSetting(row pgx.CollectableRow) (domain.Setting, error) {
	var s domain.Setting
	err := row.Scan(&s.ID, &s.CampaignID, &s.MaxPrice, &s.Enabled)
	return s, err
}

// ListSettings returns every setting ordered by id.
func (r *SettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, max_price, enabled FROM settings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	settings, err := pgx.CollectRows(rows, scanSetting)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = []domain.Setting{}
	}
	return settings, nil
}

// GetSetting returns a setting by id, or nil when missing.
func (r *SettingRepository) GetSetting(ctx context.Context, id int64) (*domain.Setting, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, max_price, enabled FROM settings WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSetting)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSetting inserts s and sets its ID.
func (r *SettingRepository) CreateSetting(ctx context.Context, s *domain.Setting) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO settings (campaign_id, max_price, enabled) VALUES ($1, $2, $3) RETURNING id`,
		s.CampaignID, s.MaxPrice, s.Enabled).Scan(&s.ID)
	return ownerViolation(err)
}

// UpdateSetting overwrites every column of the setting with s.ID.
func (r *SettingRepository) UpdateSetting(ctx context.Context, s *domain.Setting) error {
	tag, err := r.pool.Exec(ctx, `UPDATE settings SET campaign_id = $1, max_price = $2, enabled = $3 WHERE id = $4`,
		s.CampaignID, s.MaxPrice, s.Enabled, s.ID)
	if err != nil {
		return ownerViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteSetting removes one setting.
func (r *SettingRepository) DeleteSetting(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM settings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CampaignExists reports whether a campaign with id exists.
func (r *SettingRepository) CampaignExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// ownerViolation maps a foreign key failure on campaign_id to
// port.ErrOwnerMissing and passes any other error through.
func ownerViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return port.ErrOwnerMissing
	}
	return err
}
