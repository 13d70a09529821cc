package models

import "time"

// Investment is one worker's position in the pooled gold product. Principal
// accumulates additively and only ever resets to zero on full recovery.
// GoldMicrograms tracks principal converted at the fixed unit price, so
// micrograms*unitPrice stays within rounding distance of TotalInvestedPaise.
type Investment struct {
	Identity           string    `json:"identity"`
	TotalInvestedPaise int64     `json:"total_invested_paise"`
	GoldMicrograms     int64     `json:"gold_micrograms"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
