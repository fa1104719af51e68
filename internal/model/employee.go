package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee represents a staff account. Dealers are employees too, carrying
// ROLE_DEALER; they are the counterparty on orders.
type Employee struct {
	BaseModel
	EmployeeID    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"employee_id"`
	EmployeeName  string `gorm:"type:varchar(150);not null" json:"employee_name"`
	EmployeeEmail string `gorm:"type:varchar(255);uniqueIndex;not null" json:"employee_email"`
	Password      string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	EmployeePhone string `gorm:"type:varchar(20);uniqueIndex;not null" json:"employee_phone"`
	Role          Role   `gorm:"type:varchar(30);not null" json:"role"`
	Status        string `gorm:"type:varchar(20);default:active" json:"status"`

	// Shop / location fields
	ShopName string `gorm:"type:varchar(150)" json:"shop_name,omitempty"`
	Photo    string `gorm:"type:text" json:"photo,omitempty"`
	District string `gorm:"type:varchar(100)" json:"district,omitempty"`
	Town     string `gorm:"type:varchar(100)" json:"town,omitempty"`
	Brand    string `gorm:"type:varchar(100)" json:"brand,omitempty"`
	Address  string `gorm:"type:text" json:"address,omitempty"`
}

// SetPassword hashes and sets the employee's password
func (e *Employee) SetPassword(password string, cost int) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	e.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (e *Employee) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password))
	return err == nil
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

// EmployeeResponse is used for API responses (without sensitive data)
type EmployeeResponse struct {
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	EmployeePhone string    `json:"employee_phone"`
	Role          Role      `json:"role"`
	Status        string    `json:"status"`
	CreatedBy     string    `json:"created_by"`
	ShopName      string    `json:"shop_name,omitempty"`
	Photo         string    `json:"photo,omitempty"`
	District      string    `json:"district,omitempty"`
	Town          string    `json:"town,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToResponse converts Employee to EmployeeResponse
func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		EmployeeEmail: e.EmployeeEmail,
		EmployeePhone: e.EmployeePhone,
		Role:          e.Role,
		Status:        e.Status,
		CreatedBy:     e.CreatedBy,
		ShopName:      e.ShopName,
		Photo:         e.Photo,
		District:      e.District,
		Town:          e.Town,
		Brand:         e.Brand,
		Address:       e.Address,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
