package repository

import (
	"gorm.io/gorm"

	"go-enterprise-ops/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByProductID(productID string) (*model.Product, error)
	FindAll() ([]model.Product, error)
	ExistsProductID(productID string) (bool, error)
	TripleTaken(brand, productModel, productType, excludeProductID string) (bool, error)
	UpdateFields(productID string, fields map[string]interface{}) (*model.Product, error)
	UpdateAvailableStock(productID string, total int, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByProductID(productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("product_id = ?", productID).First(&product).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &product, nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) ExistsProductID(productID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("product_id = ?", productID).Count(&count).Error
	return count > 0, err
}

// TripleTaken checks the (brand, model, product_type) uniqueness invariant
// among active products, excluding the given product when updating.
func (r *productRepo) TripleTaken(brand, productModel, productType, excludeProductID string) (bool, error) {
	q := r.db.Model(&model.Product{}).
		Where("brand = ? AND model = ? AND product_type = ? AND status = ?",
			brand, productModel, productType, model.StatusActive)
	if excludeProductID != "" {
		q = q.Where("product_id <> ?", excludeProductID)
	}
	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *productRepo) UpdateFields(productID string, fields map[string]interface{}) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).Where("product_id = ?", productID).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByProductID(productID)
}

func (r *productRepo) UpdateAvailableStock(productID string, total int, updatedBy string) error {
	return r.db.Model(&model.Product{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"available_stock": total,
			"updated_by":      updatedBy,
		}).Error
}
