package service

import (
	"go.uber.org/zap"

	"go-enterprise-ops/internal/apperr"
	"go-enterprise-ops/internal/ids"
	"go-enterprise-ops/internal/model"
	"go-enterprise-ops/internal/reqctx"
	"go-enterprise-ops/internal/repository"
	"go-enterprise-ops/pkg/validator"
)

var productWriteRoles = []model.Role{model.RoleAdmin, model.RoleSuperAdmin}

type ProductService interface {
	Create(req *CreateProductRequest, ctx reqctx.Context) (*model.ProductResponse, error)
	Update(productID string, req *UpdateProductRequest, ctx reqctx.Context) (*model.ProductResponse, error)
	GetByProductID(productID string) (*model.ProductResponse, error)
	List() ([]model.ProductResponse, error)
}

// StockSeed is an optional opening balance applied right after the product
// record commits.
type StockSeed struct {
	StockType model.StockType `json:"stock_type"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"stock_notes"`
}

type CreateProductRequest struct {
	Brand        string      `json:"brand" validate:"required"`
	Model        string      `json:"model" validate:"required"`
	ProductType  string      `json:"product_type" validate:"required"`
	ProductName  string      `json:"product_name" validate:"required"`
	InitialStock []StockSeed `json:"initial_stock"`
}

type UpdateProductRequest struct {
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	ProductType *string `json:"product_type"`
	ProductName *string `json:"product_name"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type productService struct {
	productRepo repository.ProductRepository
	stocks      StockService
	log         *zap.SugaredLogger
}

func NewProductService(productRepo repository.ProductRepository, stocks StockService, log *zap.SugaredLogger) ProductService {
	return &productService{
		productRepo: productRepo,
		stocks:      stocks,
		log:         log,
	}
}

func productFieldError(field string) apperr.FieldError {
	return apperr.FieldError{Field: field, Message: field + " is required"}
}

func (s *productService) Create(req *CreateProductRequest, ctx reqctx.Context) (*model.ProductResponse, error) {
	if err := requireRole(ctx, "Only admins can create products.", productWriteRoles...); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		fields := make([]apperr.FieldError, len(errs))
		for i, e := range errs {
			switch e.FailedField {
			case "Brand":
				fields[i] = productFieldError("brand")
			case "Model":
				fields[i] = productFieldError("model")
			case "ProductType":
				fields[i] = productFieldError("product_type")
			default:
				fields[i] = productFieldError("product_name")
			}
		}
		return nil, apperr.Validation(fields)
	}

	taken, err := s.productRepo.TripleTaken(req.Brand, req.Model, req.ProductType, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(
			"A product with brand %q, model %q, and type %q already exists.",
			req.Brand, req.Model, req.ProductType)
	}

	productID, err := ids.NewUnique(s.productRepo.ExistsProductID)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductID:   productID,
		Brand:       req.Brand,
		Model:       req.Model,
		ProductType: req.ProductType,
		ProductName: req.ProductName,
		Status:      model.StatusActive,
	}
	product.CreatedBy = ctx.EmployeeID
	product.UpdatedBy = ctx.EmployeeID

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.log.Infow("product created", "product_id", productID, "created_by", ctx.EmployeeID)

	// Opening balances are applied after the product insert commits. Seeding
	// is best-effort: a failure leaves the product with available_stock 0
	// rather than rolling the product back.
	for _, seed := range req.InitialStock {
		if _, err := s.stocks.Apply(productID, &ApplyRequest{
			StockType: seed.StockType,
			Action:    model.StockAdd,
			Quantity:  seed.Quantity,
			Notes:     seed.Notes,
		}, ctx); err != nil {
			s.log.Warnw("initial stock seeding failed", "product_id", productID, "error", err)
			break
		}
	}

	created, err := s.productRepo.FindByProductID(productID)
	if err != nil || created == nil {
		resp := product.ToResponse()
		return &resp, nil
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *productService) Update(productID string, req *UpdateProductRequest, ctx reqctx.Context) (*model.ProductResponse, error) {
	if !ctx.Authenticated() {
		return nil, apperr.Unauthorized("Login required to update products.")
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequest("Status must be active or inactive")
	}

	fields := map[string]interface{}{}
	setIf := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setIf("brand", req.Brand)
	setIf("model", req.Model)
	setIf("product_type", req.ProductType)
	setIf("product_name", req.ProductName)
	setIf("status", req.Status)

	if len(fields) == 0 {
		return nil, apperr.BadRequest("No valid fields provided for update.")
	}

	// The uniqueness triple is only re-checked when all three parts are
	// being replaced together.
	if req.Brand != nil && req.Model != nil && req.ProductType != nil {
		taken, err := s.productRepo.TripleTaken(*req.Brand, *req.Model, *req.ProductType, productID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Conflict(
				"A product with brand %q, model %q, and type %q already exists.",
				*req.Brand, *req.Model, *req.ProductType)
		}
	}

	fields["updated_by"] = ctx.EmployeeID
	product, err := s.productRepo.UpdateFields(productID, fields)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.BadRequest("No product found with this product ID %s", productID)
	}

	s.log.Infow("product updated", "product_id", productID, "updated_by", ctx.EmployeeID)
	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) GetByProductID(productID string) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.BadRequest("No product found with this product ID %s", productID)
	}
	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) List() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}
	return responses, nil
}
