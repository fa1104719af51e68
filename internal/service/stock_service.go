package service

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/ids"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/repository"
	"go-enterprise-ops/internal/ws"
)

var stockMutationRoles = []model.Role{
	model.RoleSuperAdmin,
	model.RoleAdmin,
	model.RoleSupervisor,
	model.RoleManager,
}

type StockService interface {
	Apply(productID string, req *ApplyRequest, ctx reqctx.Context) (*ApplyResult, error)
	ApplyBatch(batch map[string][]ApplyRequest, ctx reqctx.Context) (BatchResult, error)
	GetByProduct(productID string) (*ApplyResult, error)
}

type ApplyRequest struct {
	StockType   model.StockType   `json:"stock_type"`
	Action      model.StockAction `json:"action"`
	Quantity    int               `json:"quantity"`
	Notes       string            `json:"stock_notes"`
	OrderNumber string            `json:"order_number,omitempty"`
}

type ApplyResult struct {
	Stocks  []model.Stock         `json:"stocks"`
	Product model.ProductResponse `json:"product"`
}

// BatchResult reports per-product pass/fail; entries for other products are
// unaffected by one product's failure, and committed mutations are never
// rolled back.
type BatchResult map[string]*BatchEntry

type BatchEntry struct {
	Applied int          `json:"applied"`
	Error   string       `json:"error,omitempty"`
	Result  *ApplyResult `json:"result,omitempty"`
}

type stockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	hub         *ws.Hub
	log         *zap.SugaredLogger
}

func NewStockService(stockRepo repository.StockRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, hub *ws.Hub, log *zap.SugaredLogger) StockService {
	return &stockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		hub:         hub,
		log:         log,
	}
}

// auditLine composes the append-only note recorded with every mutation.
func auditLine(ctx reqctx.Context, req *ApplyRequest) string {
	line := fmt.Sprintf("%s | %s (%s) | %s %d %s",
		time.Now().UTC().Format(time.RFC3339),
		ctx.EmployeeID, ctx.Role, req.Action, req.Quantity, req.StockType)
	if req.OrderNumber != "" {
		line += " | order " + req.OrderNumber
	}
	if req.Notes != "" {
		line += " | " + req.Notes
	}
	return line
}

func (s *stockService) Apply(productID string, req *ApplyRequest, ctx reqctx.Context) (*ApplyResult, error) {
	if err := requireRole(ctx, "Access denied: not authorized to mutate stock.", stockMutationRoles...); err != nil {
		return nil, err
	}

	if !req.Action.Valid() {
		return nil, apperr.BadRequest("Action must be ADD or RETURN")
	}
	if req.Quantity <= 0 {
		return nil, apperr.BadRequest("Quantity must be a positive number")
	}
	if !req.StockType.Valid() {
		return nil, apperr.BadRequest("Stock type must be PACKED or UNPACKED")
	}

	if req.Action == model.StockReturn {
		if req.OrderNumber == "" {
			return nil, apperr.BadRequest("A RETURN requires an order_number")
		}
		order, err := s.orderRepo.FindByOrderNumber(req.OrderNumber)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperr.BadRequest("No order found with this order number %s", req.OrderNumber)
		}
	}

	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.BadRequest("No product found with this product ID %s", productID)
	}

	note := auditLine(ctx, req)
	if err := s.upsert(productID, req, note, ctx); err != nil {
		return nil, err
	}

	// available_stock is recomputed from a fresh aggregate across all stock
	// rows, never incremented. That keeps the cache self-healing against any
	// drift, at the cost of being eventually consistent under extreme
	// interleaving.
	total, err := s.stockRepo.SumStock(productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.UpdateAvailableStock(productID, total, ctx.EmployeeID); err != nil {
		return nil, err
	}

	result, err := s.GetByProduct(productID)
	if err != nil {
		return nil, err
	}

	s.log.Infow("stock mutation applied",
		"product_id", productID, "stock_type", req.StockType, "action", req.Action,
		"quantity", req.Quantity, "available_stock", result.Product.AvailableStock,
		"actor", ctx.EmployeeID)

	s.hub.PublishStockUpdate(result.Product, string(req.Action), req.Quantity, ctx.EmployeeID)
	return result, nil
}

// upsert creates the (product, stock_type) row on first mutation, otherwise
// applies a single conditional increment. A create that loses the race to a
// concurrent first mutation falls back to the increment path; the composite
// unique index guarantees at most one row ever exists per pair.
func (s *stockService) upsert(productID string, req *ApplyRequest, note string, ctx reqctx.Context) error {
	updated, err := s.stockRepo.Increment(productID, req.StockType, req.Quantity, req.Action, note, ctx.EmployeeID)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	stockID, err := ids.NewUnique(s.stockRepo.ExistsStockID)
	if err != nil {
		return err
	}
	row := &model.Stock{
		StockID:    stockID,
		ProductID:  productID,
		StockType:  req.StockType,
		StockNotes: note,
	}
	// stock always equals add_stock - return_stock, including on the row's
	// first mutation.
	if req.Action == model.StockAdd {
		row.Stock = req.Quantity
		row.AddStock = req.Quantity
	} else {
		row.Stock = -req.Quantity
		row.ReturnStock = req.Quantity
	}
	row.CreatedBy = ctx.EmployeeID
	row.UpdatedBy = ctx.EmployeeID

	createErr := s.stockRepo.Create(row)
	if createErr == nil {
		return nil
	}

	// Lost the creation race: the row must exist now, increment it.
	updated, err = s.stockRepo.Increment(productID, req.StockType, req.Quantity, req.Action, note, ctx.EmployeeID)
	if err != nil {
		return err
	}
	if !updated {
		return createErr
	}
	return nil
}

func (s *stockService) ApplyBatch(batch map[string][]ApplyRequest, ctx reqctx.Context) (BatchResult, error) {
	if err := requireRole(ctx, "Access denied: not authorized to mutate stock.", stockMutationRoles...); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, apperr.BadRequest("Stock batch is empty")
	}

	productIDs := make([]string, 0, len(batch))
	for productID := range batch {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	result := make(BatchResult, len(batch))
	for _, productID := range productIDs {
		entry := &BatchEntry{}
		result[productID] = entry
		for i := range batch[productID] {
			applied, err := s.Apply(productID, &batch[productID][i], ctx)
			if err != nil {
				// Remaining entries for this product are skipped; other
				// products continue, and nothing already written is undone.
				entry.Error = apperr.From(err).Message
				break
			}
			entry.Applied++
			entry.Result = applied
		}
	}
	return result, nil
}

func (s *stockService) GetByProduct(productID string) (*ApplyResult, error) {
	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.BadRequest("No product found with this product ID %s", productID)
	}
	stocks, err := s.stockRepo.FindByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &ApplyResult{
		Stocks:  stocks,
		Product: product.ToResponse(),
	}, nil
}
