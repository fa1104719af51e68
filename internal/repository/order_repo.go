package repository

import (
	"gorm.io/gorm"

	"go-enterprise-ops/internal/model"
)

type OrderRepository interface {
	CreateOrder(order *model.Order) error
	CreateDetails(details *model.OrderDetails) error
	FindByOrderNumber(orderNumber string) (*model.Order, error)
	FindAll() ([]model.Order, error)
	DetailsByOrderNumber(orderNumber string) ([]model.OrderDetails, error)
	DetailsByOrderNumbers(orderNumbers []string) ([]model.OrderDetails, error)
	ExistsOrderNumber(orderNumber string) (bool, error)
	ExistsDetailsNumber(detailsNumber string) (bool, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) CreateOrder(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) CreateDetails(details *model.OrderDetails) error {
	return r.db.Create(details).Error
}

func (r *orderRepo) FindByOrderNumber(orderNumber string) (*model.Order, error) {
	var order model.Order
	err := r.db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &order, nil
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) DetailsByOrderNumber(orderNumber string) ([]model.OrderDetails, error) {
	var details []model.OrderDetails
	err := r.db.Where("order_number = ?", orderNumber).Find(&details).Error
	return details, err
}

// DetailsByOrderNumbers fetches lines for many orders in one query; the order
// list endpoint maps them back per order instead of issuing per-order reads.
func (r *orderRepo) DetailsByOrderNumbers(orderNumbers []string) ([]model.OrderDetails, error) {
	var details []model.OrderDetails
	err := r.db.Where("order_number IN ?", orderNumbers).Find(&details).Error
	return details, err
}

func (r *orderRepo) ExistsOrderNumber(orderNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

func (r *orderRepo) ExistsDetailsNumber(detailsNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&model.OrderDetails{}).Where("order_details_number = ?", detailsNumber).Count(&count).Error
	return count > 0, err
}
