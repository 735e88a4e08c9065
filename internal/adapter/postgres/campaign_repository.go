package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaigns-api/internal/core/domain"
)

// readSnapshot makes the campaign query and the settings query of one read
// observe the same committed state.
var readSnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.OverridePrice, &c.StartDate)
	c.StartDate = c.StartDate.UTC()
	return c, err
}

// ListCampaigns returns all campaigns ordered by id, each with its settings.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := pgx.BeginTxFunc(ctx, r.pool, readSnapshot, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT id, name, override_price, start_date FROM campaigns ORDER BY id`)
		if err != nil {
			return err
		}
		campaigns, err = pgx.CollectRows(rows, scanCampaign)
		if err != nil {
			return err
		}
		if len(campaigns) == 0 {
			return nil
		}

		ids := make([]int64, len(campaigns))
		for i := range campaigns {
			ids[i] = campaigns[i].ID
		}
		owned, err := settingsByOwner(ctx, tx, ids)
		if err != nil {
			return err
		}
		for i := range campaigns {
			campaigns[i].Settings = owned[campaigns[i].ID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// GetCampaign returns a campaign with its settings, or nil when missing.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var found *domain.Campaign
	err := pgx.BeginTxFunc(ctx, r.pool, readSnapshot, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT id, name, override_price, start_date FROM campaigns WHERE id = $1`, id)
		if err != nil {
			return err
		}
		c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		owned, err := settingsByOwner(ctx, tx, []int64{c.ID})
		if err != nil {
			return err
		}
		c.Settings = owned[c.ID]
		found = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// CreateCampaign inserts c and sets its ID.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns (name, override_price, start_date) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.OverridePrice, c.StartDate).Scan(&c.ID)
}

// UpdateCampaign overwrites name, override_price and start_date.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET name = $1, override_price = $2, start_date = $3 WHERE id = $4`,
		c.Name, c.OverridePrice, c.StartDate, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCampaign removes the settings of the campaign and then the
// campaign itself in one transaction. The foreign key cascades as well,
// but the explicit delete keeps the behaviour independent of the schema.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM settings WHERE campaign_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// settingsByOwner loads the settings of the given campaigns in insertion
// order. Every requested id gets a non-nil slice.
func settingsByOwner(ctx context.Context, q pgx.Tx, ids []int64) (map[int64][]domain.Setting, error) {
	rows, err := q.Query(ctx, `SELECT id, campaign_id, max_price, enabled FROM settings WHERE campaign_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	settings, err := pgx.CollectRows(rows, scanSetting)
	if err != nil {
		return nil, err
	}

	owned := make(map[int64][]domain.Setting, len(ids))
	for _, id := range ids {
		owned[id] = []domain.Setting{}
	}
	for _, s := range settings {
		owned[s.CampaignID] = append(owned[s.CampaignID], s)
	}
	return owned, nil
}
