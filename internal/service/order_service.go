package service

import (
	"time"

	"go.uber.org/zap"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/ids"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/repository"
)

var orderCreateRoles = []model.Role{model.RoleSuperAdmin, model.RoleAdmin, model.RoleSalesman}

type OrderService interface {
	Create(req *CreateOrderRequest, ctx reqctx.Context) (*OrderView, error)
	GetByOrderNumber(orderNumber string) (*OrderView, error)
	List() ([]OrderView, error)
}

type OrderLineRequest struct {
	ProductID    string `json:"product_id"`
	ProductBrand string `json:"product_brand"`
	ProductName  string `json:"product_name"`
	ProductModel string `json:"product_model"`
	ProductType  string `json:"product_type"`
	QtyOrdered   int    `json:"qty_ordered"`
	DeliveryDate string `json:"delivery_date"`
}

type CreateOrderRequest struct {
	DealerID     string              `json:"dealer_id"`
	Priority     model.OrderPriority `json:"priority"`
	OrderNote    string              `json:"order_note"`
	DeliveryDate string              `json:"delivery_date"`
	OrderDetails []OrderLineRequest  `json:"order_details"`
}

// OrderView is the composed read model: the order header, the dealer it was
// placed for, and its lines.
type OrderView struct {
	Order        model.Order            `json:"order"`
	Dealer       model.EmployeeResponse `json:"dealer"`
	OrderDetails []model.OrderDetails   `json:"order_details"`
}

type orderService struct {
	orderRepo    repository.OrderRepository
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	log          *zap.SugaredLogger
}

func NewOrderService(orderRepo repository.OrderRepository, employeeRepo repository.EmployeeRepository, productRepo repository.ProductRepository, log *zap.SugaredLogger) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

var deliveryDateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDeliveryDate(raw string) (time.Time, error) {
	for _, layout := range deliveryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.BadRequest("delivery_date %q is not a valid date", raw)
}

func (s *orderService) validateLine(i int, line *OrderLineRequest) error {
	required := map[string]string{
		"product_id":    line.ProductID,
		"product_brand": line.ProductBrand,
		"product_name":  line.ProductName,
		"product_model": line.ProductModel,
		"product_type":  line.ProductType,
	}
	for field, value := range required {
		if value == "" {
			return apperr.BadRequest("order_details[%d]: %s is required", i, field)
		}
	}
	if line.QtyOrdered <= 0 {
		return apperr.BadRequest("order_details[%d]: qty_ordered must be greater than 0", i)
	}
	if line.DeliveryDate == "" {
		return apperr.BadRequest("order_details[%d]: delivery_date is required", i)
	}
	product, err := s.productRepo.FindByProductID(line.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.BadRequest("order_details[%d]: no product found with this product ID %s", i, line.ProductID)
	}
	return nil
}

func (s *orderService) Create(req *CreateOrderRequest, ctx reqctx.Context) (*OrderView, error) {
	if err := requireRole(ctx, "Access denied: not authorized to create orders.", orderCreateRoles...); err != nil {
		return nil, err
	}

	if req.DealerID == "" {
		return nil, apperr.BadRequest("dealer_id is required")
	}
	if !req.Priority.Valid() {
		return nil, apperr.BadRequest("Priority must be one of: LOW, MEDIUM, HIGH")
	}
	if len(req.OrderDetails) == 0 {
		return nil, apperr.BadRequest("order_details must contain at least one line")
	}

	dealer, err := s.employeeRepo.FindActiveByEmployeeID(req.DealerID)
	if err != nil {
		return nil, err
	}
	if dealer == nil || dealer.Role != model.RoleDealer {
		return nil, apperr.BadRequest("dealer_id %s does not reference an employee with role DEALER", req.DealerID)
	}

	lineDates := make([]time.Time, len(req.OrderDetails))
	for i := range req.OrderDetails {
		if err := s.validateLine(i, &req.OrderDetails[i]); err != nil {
			return nil, err
		}
		lineDates[i], err = parseDeliveryDate(req.OrderDetails[i].DeliveryDate)
		if err != nil {
			return nil, err
		}
	}

	var orderDeliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := parseDeliveryDate(req.DeliveryDate)
		if err != nil {
			return nil, err
		}
		orderDeliveryDate = &parsed
	}

	orderNumber, err := ids.NewUnique(s.orderRepo.ExistsOrderNumber)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderNumber:  orderNumber,
		DealerID:     req.DealerID,
		Priority:     req.Priority,
		OrderNote:    req.OrderNote,
		Status:       model.OrderStatusPending,
		DeliveryDate: orderDeliveryDate,
	}
	order.CreatedBy = ctx.EmployeeID
	order.UpdatedBy = ctx.EmployeeID

	if err := s.orderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	// Lines snapshot the product descriptors supplied at order time; later
	// catalog edits never rewrite them. There is no transaction across the
	// header and its lines.
	details := make([]model.OrderDetails, 0, len(req.OrderDetails))
	for i, line := range req.OrderDetails {
		detailsNumber, err := ids.NewUnique(s.orderRepo.ExistsDetailsNumber)
		if err != nil {
			return nil, err
		}
		d := model.OrderDetails{
			OrderDetailsNumber: detailsNumber,
			OrderNumber:        orderNumber,
			ProductID:          line.ProductID,
			ProductBrand:       line.ProductBrand,
			ProductName:        line.ProductName,
			ProductModel:       line.ProductModel,
			ProductType:        line.ProductType,
			QtyOrdered:         line.QtyOrdered,
			DeliveryDate:       lineDates[i],
			Status:             model.OrderStatusPending,
		}
		d.CreatedBy = ctx.EmployeeID
		d.UpdatedBy = ctx.EmployeeID
		if err := s.orderRepo.CreateDetails(&d); err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	s.log.Infow("order created",
		"order_number", orderNumber, "dealer_id", req.DealerID,
		"lines", len(details), "created_by", ctx.EmployeeID)

	return &OrderView{
		Order:        *order,
		Dealer:       dealer.ToResponse(),
		OrderDetails: details,
	}, nil
}

func (s *orderService) GetByOrderNumber(orderNumber string) (*OrderView, error) {
	order, err := s.orderRepo.FindByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.NotFound("No order found with this order number %s", orderNumber)
	}

	details, err := s.orderRepo.DetailsByOrderNumber(orderNumber)
	if err != nil {
		return nil, err
	}

	view := OrderView{Order: *order, OrderDetails: details}
	dealers, err := s.employeeRepo.FindByEmployeeIDs([]string{order.DealerID})
	if err != nil {
		return nil, err
	}
	if len(dealers) > 0 {
		view.Dealer = dealers[0].ToResponse()
	}
	return &view, nil
}

// List composes all orders with one dealer query and one details query,
// instead of per-order fetches.
func (s *orderService) List() ([]OrderView, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []OrderView{}, nil
	}

	orderNumbers := make([]string, len(orders))
	dealerIDSet := make(map[string]struct{})
	for i := range orders {
		orderNumbers[i] = orders[i].OrderNumber
		dealerIDSet[orders[i].DealerID] = struct{}{}
	}
	dealerIDs := make([]string, 0, len(dealerIDSet))
	for id := range dealerIDSet {
		dealerIDs = append(dealerIDs, id)
	}

	dealers, err := s.employeeRepo.FindByEmployeeIDs(dealerIDs)
	if err != nil {
		return nil, err
	}
	dealerByID := make(map[string]model.EmployeeResponse, len(dealers))
	for i := range dealers {
		dealerByID[dealers[i].EmployeeID] = dealers[i].ToResponse()
	}

	allDetails, err := s.orderRepo.DetailsByOrderNumbers(orderNumbers)
	if err != nil {
		return nil, err
	}
	detailsByOrder := make(map[string][]model.OrderDetails)
	for i := range allDetails {
		detailsByOrder[allDetails[i].OrderNumber] = append(detailsByOrder[allDetails[i].OrderNumber], allDetails[i])
	}

	views := make([]OrderView, len(orders))
	for i := range orders {
		views[i] = OrderView{
			Order:        orders[i],
			Dealer:       dealerByID[orders[i].DealerID],
			OrderDetails: detailsByOrder[orders[i].OrderNumber],
		}
	}
	return views, nil
}
