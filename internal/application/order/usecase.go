package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// UseCase gestiona borradores de órdenes (crear/editar/eliminar mientras estén
// en PENDING) y su finalización. El borrador no toca stock: es una cotización
// sin reserva, y la sobreventa al momento del borrador se resuelve en Finalize.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// CreateDraft crea una orden PENDING con sus líneas. Cada línea captura el
// snapshot (título/imagen/precio) del producto referido; cantidad mínima 1.
// Orden, líneas y totales se persisten en una sola transacción.
func (uc *UseCase) CreateDraft(ctx context.Context, companyID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("client_name requerido: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	ord := &entity.Order{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		ClientName:       in.Name,
		ClientCompany:    in.Company,
		ClientAddress:    in.Address,
		ClientCity:       in.City,
		ClientPostalCode: in.PostalCode,
		ClientPhone:      in.Phone,
		ClientEmail:      in.Email,
		Notes:            in.Notes,
		Status:           entity.OrderStatusPending,
		CreatedAt:        now,
	}

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		_ repository.StockHistoryRepository,
		_ repository.InvoiceSequenceRepository,
	) error {
		items, err := buildItems(productRepo, companyID, ord.ID, in.Items)
		if err != nil {
			return err
		}
		ord.Items = items
		ord.CalculateTotals()
		if err := orderRepo.Create(ord); err != nil {
			return err
		}
		for _, it := range items {
			if err := orderRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// UpdateDraft reemplaza al completo los datos de cliente y las líneas de un
// borrador (no hay merge incremental) y recalcula totales.
// Falla con ErrNotFound si la orden no existe o no es del tenant, y con
// ErrOrderNotEditable si ya fue finalizada.
func (uc *UseCase) UpdateDraft(ctx context.Context, companyID, orderID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("client_name requerido: %w", domain.ErrInvalidInput)
	}
	var ord *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		_ repository.StockHistoryRepository,
		_ repository.InvoiceSequenceRepository,
	) error {
		var err error
		ord, err = orderRepo.GetForUpdate(orderID, companyID)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if !ord.Editable() {
			return domain.ErrOrderNotEditable
		}

		items, err := buildItems(productRepo, companyID, ord.ID, in.Items)
		if err != nil {
			return err
		}

		ord.ClientName = in.Name
		ord.ClientCompany = in.Company
		ord.ClientAddress = in.Address
		ord.ClientCity = in.City
		ord.ClientPostalCode = in.PostalCode
		ord.ClientPhone = in.Phone
		ord.ClientEmail = in.Email
		ord.Notes = in.Notes

		// Reemplazo total de líneas: borrar las existentes y crear las nuevas.
		if err := orderRepo.DeleteItemsByOrder(ord.ID); err != nil {
			return err
		}
		for _, it := range items {
			if err := orderRepo.CreateItem(it); err != nil {
				return err
			}
		}
		ord.Items = items
		ord.CalculateTotals()
		return orderRepo.Update(ord)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// DeleteDraft elimina un borrador y sus líneas (cascade). Mismas reglas de
// propiedad y editabilidad que UpdateDraft; una orden FINALIZED nunca se elimina.
func (uc *UseCase) DeleteDraft(ctx context.Context, companyID, orderID string) error {
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ProductRepository,
		_ repository.StockHistoryRepository,
		_ repository.InvoiceSequenceRepository,
	) error {
		ord, err := orderRepo.GetForUpdate(orderID, companyID)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if !ord.Editable() {
			return domain.ErrOrderNotEditable
		}
		if err := orderRepo.DeleteItemsByOrder(ord.ID); err != nil {
			return err
		}
		return orderRepo.Delete(ord.ID)
	})
}

// GetOrder obtiene una orden del tenant con sus líneas.
func (uc *UseCase) GetOrder(ctx context.Context, companyID, orderID string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByIDAndCompany(orderID, companyID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItemsByOrder(ord.ID)
	if err != nil {
		return nil, err
	}
	ord.Items = items
	return toOrderResponse(ord), nil
}

// ListOrders lista las órdenes del tenant, más recientes primero.
// status vacío lista todas; "PENDING"/"FINALIZED" filtra.
func (uc *UseCase) ListOrders(ctx context.Context, companyID, status string, limit, offset int) ([]dto.OrderResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if status == "" {
		orders, err = uc.orderRepo.ListByCompany(companyID, limit, offset)
	} else {
		orders, err = uc.orderRepo.ListByCompanyAndStatus(companyID, status, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items, err := uc.orderRepo.ListItemsByOrder(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// buildItems valida las líneas solicitadas y construye los OrderItem con su
// snapshot. Cantidad < 1 → ErrInvalidQuantity; producto inexistente o de otro
// tenant → ErrNotFound.
func buildItems(productRepo repository.ProductRepository, companyID, orderID string, lines []dto.OrderLineRequest) ([]*entity.OrderItem, error) {
	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrInvalidQuantity)
		}
		product, err := productRepo.GetByIDAndCompany(line.ProductID, companyID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrNotFound)
		}
		item := entity.NewOrderItemFromProduct(product, line.Quantity)
		item.ID = uuid.New().String()
		item.OrderID = orderID
		items = append(items, item)
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:               o.ID,
		CompanyID:        o.CompanyID,
		ClientName:       o.ClientName,
		ClientCompany:    o.ClientCompany,
		ClientAddress:    o.ClientAddress,
		ClientCity:       o.ClientCity,
		ClientPostalCode: o.ClientPostalCode,
		ClientPhone:      o.ClientPhone,
		ClientEmail:      o.ClientEmail,
		Notes:            o.Notes,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		FinalizedAt:      o.FinalizedAt,
		TotalItems:       o.TotalItems,
		TotalAmount:      o.TotalAmount,
		InvoiceNumber:    o.InvoiceNumber,
		Items:            make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductTitle: it.ProductTitle,
			ProductImage: it.ProductImage,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Subtotal:     it.Subtotal,
		})
	}
	return resp
}
