package repository

import (
	"gorm.io/gorm"

	"go-enterprise-ops/internal/model"
)

type StockRepository interface {
	Create(stock *model.Stock) error
	// Increment applies one ledger mutation as a single conditional UPDATE,
	// so two concurrent mutations on the same (product, stock_type) row
	// serialize at the storage layer instead of racing a read-modify-write.
	// Returns false when no row exists yet for the pair.
	Increment(productID string, stockType model.StockType, qty int, action model.StockAction, noteLine, actor string) (bool, error)
	FindByProductAndType(productID string, stockType model.StockType) (*model.Stock, error)
	FindByProduct(productID string) ([]model.Stock, error)
	SumStock(productID string) (int, error)
	ExistsStockID(stockID string) (bool, error)
}

type stockRepo struct {
	db *gorm.DB
}

func NewStockRepo(db *gorm.DB) StockRepository {
	return &stockRepo{db}
}

func (r *stockRepo) Create(stock *model.Stock) error {
	return r.db.Create(stock).Error
}

func (r *stockRepo) Increment(productID string, stockType model.StockType, qty int, action model.StockAction, noteLine, actor string) (bool, error) {
	// The running total is always add_stock - return_stock, so a RETURN
	// carries a negative delta while its cumulative counter still grows.
	counter := "add_stock"
	delta := qty
	if action == model.StockReturn {
		counter = "return_stock"
		delta = -qty
	}

	res := r.db.Model(&model.Stock{}).
		Where("product_id = ? AND stock_type = ?", productID, stockType).
		Updates(map[string]interface{}{
			"stock":       gorm.Expr("stock + ?", delta),
			counter:       gorm.Expr(counter+" + ?", qty),
			"stock_notes": gorm.Expr("stock_notes || ?", "\n"+noteLine),
			"updated_by":  actor,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *stockRepo) FindByProductAndType(productID string, stockType model.StockType) (*model.Stock, error) {
	var stock model.Stock
	err := r.db.Where("product_id = ? AND stock_type = ?", productID, stockType).First(&stock).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &stock, nil
}

func (r *stockRepo) FindByProduct(productID string) ([]model.Stock, error) {
	var stocks []model.Stock
	err := r.db.Where("product_id = ?", productID).Order("stock_type ASC").Find(&stocks).Error
	return stocks, err
}

// SumStock is the fresh aggregate the available_stock recomputation relies on.
func (r *stockRepo) SumStock(productID string) (int, error) {
	var total int
	err := r.db.Model(&model.Stock{}).
		Select("COALESCE(SUM(stock), 0)").
		Where("product_id = ?", productID).
		Scan(&total).Error
	return total, err
}

func (r *stockRepo) ExistsStockID(stockID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Stock{}).Where("stock_id = ?", stockID).Count(&count).Error
	return count > 0, err
}
