package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	appOrder "github.com/teopopescu15/Inventory-app/internal/application/order"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
	"github.com/teopopescu15/Inventory-app/internal/domain/stock"
)

// ProductUseCase CRUD de productos por tenant. Cada alta escribe la entrada
// INITIAL del ledger; cada cambio de conteo (restock/ajuste) escribe su entrada
// clasificada. El borrador de órdenes nunca pasa por aquí: el stock solo lo
// mutan este caso de uso y el motor de finalización.
type ProductUseCase struct {
	txRunner     appOrder.TxRunner
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner appOrder.TxRunner, productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un producto en una categoría del tenant y registra la entrada
// INITIAL (old=0) en el ledger, en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Title == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Count < 0 {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoryRepo.GetByIDAndCompany(in.CategoryID, companyID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		CompanyID:  companyID,
		Title:      in.Title,
		Image:      in.Image,
		Price:      in.Price,
		Count:      in.Count,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.StockHistoryRepository,
		_ repository.InvoiceSequenceRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return historyRepo.Create(&entity.StockHistoryEntry{
			ProductID:    product.ID,
			OldCount:     0,
			NewCount:     product.Count,
			ChangeAmount: product.Count,
			ChangeType:   entity.ChangeTypeInitial,
			ChangedAt:    now,
			Notes:        "Product created",
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita un producto del tenant. Si el conteo cambia respecto al actual,
// registra en el ledger la entrada clasificada por el signo del delta
// (RESTOCK/SALE/ADJUSTMENT) bajo la misma transacción, con lock de fila para
// no pisar una venta concurrente.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Count < 0 {
		return nil, domain.ErrInvalidInput
	}
	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.OrderRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.StockHistoryRepository,
		_ repository.InvoiceSequenceRepository,
	) error {
		var err error
		product, err = productRepo.GetForUpdate(id, companyID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		oldCount := product.Count
		if in.Title != "" {
			product.Title = in.Title
		}
		product.Image = in.Image
		product.Price = in.Price
		product.Count = in.Count
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		if in.Count == oldCount {
			return nil
		}
		notes := in.Notes
		if notes == "" {
			notes = "Manual count update"
		}
		return historyRepo.Create(&entity.StockHistoryEntry{
			ProductID:    product.ID,
			OldCount:     oldCount,
			NewCount:     in.Count,
			ChangeAmount: in.Count - oldCount,
			ChangeType:   stock.Classify(oldCount, in.Count),
			ChangedAt:    product.UpdatedAt,
			Notes:        notes,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del tenant.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos de la empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory lista los productos de una categoría del tenant.
func (uc *ProductUseCase) ListByCategory(companyID, categoryID string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByCategory(categoryID, companyID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Delete elimina un producto del tenant. Las órdenes FINALIZED conservan su
// snapshot; las PENDING que lo referencien fallarán en la finalización.
func (uc *ProductUseCase) Delete(companyID, id string) error {
	product, err := uc.productRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Title:      p.Title,
		Image:      p.Image,
		Price:      p.Price,
		Count:      p.Count,
		CreatedAt:  p.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
