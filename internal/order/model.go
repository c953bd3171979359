package order

import "time"

type Status string

const (
	StatusOrderPlaced Status = "ORDER_PLACED"
	StatusProcessing  Status = "PROCESSING"
	StatusShipped     Status = "SHIPPED"
	StatusDelivered   Status = "DELIVERED"
)

var statusRank = map[Status]int{
	StatusOrderPlaced: 0,
	StatusProcessing:  1,
	StatusShipped:     2,
	StatusDelivered:   3,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Address is snapshotted into the order at creation; later edits to the
// shopper's address book never touch it.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

// Item carries the product name and unit price as they were at
// purchase time. They are a financial record, never recomputed from the
// live product.
type Item struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

type Order struct {
	ID            string
	UserID        string
	StoreID       string
	Total         float64
	PaymentMethod string
	Status        Status
	IsPaid        bool
	CouponID      *string
	CouponCode    string
	Discount      int
	Address       Address
	Items         []Item
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PlaceItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceInput struct {
	StoreID       string      `json:"store_id"`
	PaymentMethod string      `json:"payment_method"`
	CouponCode    string      `json:"coupon_code"`
	Address       Address     `json:"address"`
	Items         []PlaceItem `json:"items"`
}
