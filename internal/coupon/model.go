package coupon

import "time"

type Coupon struct {
	ID          string
	StoreID     string
	Code        string
	Description string
	Discount    int
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// DateLayout is the wire format for expiry dates; coupons expire at
// date granularity, not instants.
const DateLayout = "2006-01-02"

type Input struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Discount    int    `json:"discount"`
	ExpiresAt   string `json:"expires_at"`
}
