package domain

import "github.com/shopspring/decimal"

// Setting is a per-campaign configuration record. Every setting belongs to
// exactly one campaign and is removed together with it.
type Setting struct {
	ID         int64
	CampaignID int64
	MaxPrice   decimal.Decimal
	Enabled    bool
}
