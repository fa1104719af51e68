package model

import "time"

type OrderPriority string

const (
	PriorityLow    OrderPriority = "LOW"
	PriorityMedium OrderPriority = "MEDIUM"
	PriorityHigh   OrderPriority = "HIGH"
)

func (p OrderPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

const OrderStatusPending = "PENDING"

// Order is a dealer order header. DealerID references an Employee carrying
// ROLE_DEALER.
type Order struct {
	BaseModel
	OrderNumber  string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`
	DealerID     string        `gorm:"type:varchar(50);not null;index" json:"dealer_id"`
	Priority     OrderPriority `gorm:"type:varchar(10);default:LOW" json:"priority"`
	OrderNote    string        `gorm:"type:text" json:"order_note"`
	Status       string        `gorm:"type:varchar(20);default:PENDING" json:"status"`
	DeliveryDate *time.Time    `json:"delivery_date,omitempty"`
}

// OrderDetails is one line of an order. Product descriptor fields are
// snapshotted at order time; later catalog edits never rewrite history.
// Lines are created atomically with the order and not independently mutable.
type OrderDetails struct {
	BaseModel
	OrderDetailsNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_details_number"`
	OrderNumber        string    `gorm:"type:varchar(50);not null;index" json:"order_number"`
	ProductID          string    `gorm:"type:varchar(50);not null" json:"product_id"`
	ProductBrand       string    `gorm:"type:varchar(100);not null" json:"product_brand"`
	ProductName        string    `gorm:"type:varchar(150);not null" json:"product_name"`
	ProductModel       string    `gorm:"type:varchar(100);not null" json:"product_model"`
	ProductType        string    `gorm:"type:varchar(100);not null" json:"product_type"`
	QtyOrdered         int       `gorm:"not null" json:"qty_ordered"`
	QtyDelivered       int       `gorm:"default:0" json:"qty_delivered"`
	DeliveryDate       time.Time `gorm:"not null" json:"delivery_date"`
	Status             string    `gorm:"type:varchar(20);default:PENDING" json:"status"`
}
