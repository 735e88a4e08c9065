package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents an event sales campaign with its pricing and start
// date. Settings holds the owned settings in insertion order; it is only
// populated by reads that load them explicitly.
type Campaign struct {
	ID            int64
	Name          string
	OverridePrice decimal.Decimal
	StartDate     time.Time
	Settings      []Setting
}

// String returns the display name used in logs.
func (c Campaign) String() string {
	return c.Name
}
