package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo campaigns with a few settings each. It does nothing
// when at least one campaign exists and reports how many campaigns it
// created.
func Seed(ctx context.Context, db *pgxpool.Pool) (int, error) {
	var existing int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		for i := 1; i <= 5; i++ {
			name := fmt.Sprintf("Campaign %d", i)
			start := time.Now().UTC().Truncate(time.Hour).AddDate(0, 0, 7*i)
			price := decimal.NewFromInt(int64(50 + r.Intn(150))).Add(decimal.New(99, -2))

			var id int64
			err := tx.QueryRow(ctx, `INSERT INTO campaigns (name, override_price, start_date)
VALUES ($1, $2, $3) RETURNING id`, name, price, start).Scan(&id)
			if err != nil {
				return err
			}
			for j := 1; j <= 3; j++ {
				maxPrice := price.Mul(decimal.NewFromInt(int64(j + 1))).Round(2)
				_, err = tx.Exec(ctx, `INSERT INTO settings (campaign_id, max_price, enabled)
VALUES ($1, $2, $3)`, id, maxPrice, j == 1)
				if err != nil {
					return err
				}
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
