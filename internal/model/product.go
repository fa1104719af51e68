package model

import "time"

// Product is a catalog entry. AvailableStock is a derived cache: it always
// equals the sum of Stock.Stock across all stock rows for this product and is
// recomputed after every ledger mutation.
type Product struct {
	BaseModel
	ProductID   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"product_id"`
	Brand       string `gorm:"type:varchar(100);not null" json:"brand"`
	Model       string `gorm:"type:varchar(100);not null" json:"model"`
	ProductType string `gorm:"type:varchar(100);not null" json:"product_type"`
	ProductName string `gorm:"type:varchar(150);not null" json:"product_name"`
	Status      string `gorm:"type:varchar(20);default:active" json:"status"`

	AvailableStock int `gorm:"default:0" json:"available_stock"`
}

// ProductResponse is the API view of a product.
type ProductResponse struct {
	ProductID      string    `json:"product_id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	ProductType    string    `json:"product_type"`
	ProductName    string    `json:"product_name"`
	Status         string    `json:"status"`
	AvailableStock int       `json:"available_stock"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Brand:          p.Brand,
		Model:          p.Model,
		ProductType:    p.ProductType,
		ProductName:    p.ProductName,
		Status:         p.Status,
		AvailableStock: p.AvailableStock,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
