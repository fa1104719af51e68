package service

import (
	"errors"
	"sync"

	"go-enterprise-ops/internal/model"
)

// In-memory repository fakes. The stock fake mirrors the storage contract the
// ledger depends on: Increment is atomic under its mutex and Create enforces
// the (product_id, stock_type) unique index.

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []*model.Employee
}

func (r *fakeEmployeeRepo) Create(e *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, e)
	return nil
}

func (r *fakeEmployeeRepo) Update(e *model.Employee) error {
	return nil
}

func (r *fakeEmployeeRepo) FindActiveByEmail(email string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeeEmail == email && e.Status == model.StatusActive {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindActiveByEmployeeID(id string) (*model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeeID == id && e.Status == model.StatusActive {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindByEmployeeIDs(ids []string) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Employee
	for _, e := range r.employees {
		for _, id := range ids {
			if e.EmployeeID == id {
				out = append(out, *e)
			}
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindActive(offset, limit int) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []model.Employee
	for _, e := range r.employees {
		if e.Status == model.StatusActive {
			active = append(active, *e)
		}
	}
	if offset >= len(active) {
		return nil, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], nil
}

func (r *fakeEmployeeRepo) CountActive() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.employees {
		if e.Status == model.StatusActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeEmployeeRepo) ExistsEmployeeID(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeeID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) EmailTaken(email, exclude string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeeEmail == email && e.EmployeeID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) PhoneTaken(phone, exclude string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmployeePhone == phone && e.EmployeeID != exclude {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*model.Product
}

func (r *fakeProductRepo) Create(p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) FindByProductID(id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ProductID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, len(r.products))
	for i, p := range r.products {
		out[i] = *p
	}
	return out, nil
}

func (r *fakeProductRepo) ExistsProductID(id string) (bool, error) {
	p, _ := r.FindByProductID(id)
	return p != nil, nil
}

func (r *fakeProductRepo) TripleTaken(brand, productModel, productType, exclude string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Brand == brand && p.Model == productModel && p.ProductType == productType &&
			p.Status == model.StatusActive && p.ProductID != exclude {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) UpdateFields(id string, fields map[string]interface{}) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ProductID == id {
			if v, ok := fields["brand"].(string); ok {
				p.Brand = v
			}
			if v, ok := fields["model"].(string); ok {
				p.Model = v
			}
			if v, ok := fields["product_type"].(string); ok {
				p.ProductType = v
			}
			if v, ok := fields["product_name"].(string); ok {
				p.ProductName = v
			}
			if v, ok := fields["status"].(string); ok {
				p.Status = v
			}
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) UpdateAvailableStock(id string, total int, updatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ProductID == id {
			p.AvailableStock = total
			p.UpdatedBy = updatedBy
			return nil
		}
	}
	return nil
}

type stockKey struct {
	productID string
	stockType model.StockType
}

type fakeStockRepo struct {
	mu   sync.Mutex
	rows map[stockKey]*model.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[stockKey]*model.Stock)}
}

func (r *fakeStockRepo) Create(s *model.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stockKey{s.ProductID, s.StockType}
	if _, exists := r.rows[key]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	cp := *s
	r.rows[key] = &cp
	return nil
}

func (r *fakeStockRepo) Increment(productID string, stockType model.StockType, qty int, action model.StockAction, noteLine, actor string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[stockKey{productID, stockType}]
	if !ok {
		return false, nil
	}
	if action == model.StockReturn {
		row.Stock -= qty
		row.ReturnStock += qty
	} else {
		row.Stock += qty
		row.AddStock += qty
	}
	row.StockNotes += "\n" + noteLine
	row.UpdatedBy = actor
	return true, nil
}

func (r *fakeStockRepo) FindByProductAndType(productID string, stockType model.StockType) (*model.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if row, ok := r.rows[stockKey{productID, stockType}]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) FindByProduct(productID string) ([]model.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Stock
	for key, row := range r.rows {
		if key.productID == productID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) SumStock(productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for key, row := range r.rows {
		if key.productID == productID {
			total += row.Stock
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ExistsStockID(stockID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.StockID == stockID {
			return true, nil
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  []*model.Order
	details []*model.OrderDetails
}

func (r *fakeOrderRepo) CreateOrder(o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) CreateDetails(d *model.OrderDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.details = append(r.details, &cp)
	return nil
}

func (r *fakeOrderRepo) FindByOrderNumber(n string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.OrderNumber == n {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll() ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = *o
	}
	return out, nil
}

func (r *fakeOrderRepo) DetailsByOrderNumber(n string) ([]model.OrderDetails, error) {
	return r.DetailsByOrderNumbers([]string{n})
}

func (r *fakeOrderRepo) DetailsByOrderNumbers(ns []string) ([]model.OrderDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.OrderDetails
	for _, d := range r.details {
		for _, n := range ns {
			if d.OrderNumber == n {
				out = append(out, *d)
			}
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ExistsOrderNumber(n string) (bool, error) {
	o, _ := r.FindByOrderNumber(n)
	return o != nil, nil
}

func (r *fakeOrderRepo) ExistsDetailsNumber(n string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.details {
		if d.OrderDetailsNumber == n {
			return true, nil
		}
	}
	return false, nil
}
