package order

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// Finalize transiciona una orden de PENDING a FINALIZED en una sola transacción:
//
//  1. Bloquea la fila de la orden (SELECT FOR UPDATE) acotada al tenant.
//  2. Rechaza si ya está finalizada o no tiene líneas.
//  3. Pasada de validación: bloquea las filas de TODOS los productos referidos
//     (en orden ascendente de id para evitar deadlocks) y acumula cada faltante
//     en lugar de cortar en el primero. Cualquier faltante → rollback sin
//     mutación alguna, con la lista completa en InsufficientStockError.
//  4. Pasada de descuento: resta stock por línea y escribe una entrada SALE en
//     el ledger por producto, con la referencia a la orden.
//  5. Consume el consecutivo de factura del tenant y asigna INV-xxxxx.
//  6. Marca FINALIZED con su timestamp y persiste la orden.
//
// Los locks tomados en la validación siguen vigentes durante el descuento, por
// lo que ninguna finalización concurrente puede intercalarse entre ambas pasadas.
// El caso de uso no reintenta: ante ErrTransactionFailed el caller puede
// reintentar con seguridad porque la orden sigue PENDING y el stock intacto.
func (uc *UseCase) Finalize(ctx context.Context, companyID, orderID string) (*dto.OrderResponse, error) {
	var ord *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		historyRepo repository.StockHistoryRepository,
		seqRepo repository.InvoiceSequenceRepository,
	) error {
		var err error
		ord, err = orderRepo.GetForUpdate(orderID, companyID)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if ord.Status != entity.OrderStatusPending {
			return domain.ErrOrderNotEditable
		}

		items, err := orderRepo.ListItemsByOrder(ord.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return domain.ErrEmptyOrder
		}
		ord.Items = items

		// Cantidad requerida por producto: una orden puede tener varias líneas
		// del mismo producto y el stock se valida contra la suma.
		required := make(map[string]int64, len(items))
		for _, it := range items {
			required[it.ProductID] += it.Quantity
		}
		productIDs := make([]string, 0, len(required))
		for id := range required {
			productIDs = append(productIDs, id)
		}
		sort.Strings(productIDs) // orden de bloqueo estable entre transacciones

		// Pasada de validación: sin efectos, acumula todos los faltantes.
		products := make(map[string]*entity.Product, len(productIDs))
		var shortfalls []domain.StockShortfall
		for _, id := range productIDs {
			product, err := productRepo.GetForUpdate(id, companyID)
			if err != nil {
				return err
			}
			if product == nil {
				// El producto fue eliminado después del borrador.
				return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
			}
			products[id] = product
			if product.Count < required[id] {
				shortfalls = append(shortfalls, domain.StockShortfall{
					ProductID:    product.ID,
					ProductTitle: product.Title,
					Required:     required[id],
					Available:    product.Count,
				})
			}
		}
		if len(shortfalls) > 0 {
			return &domain.InsufficientStockError{Shortfalls: shortfalls}
		}

		// Pasada de descuento: las filas siguen bloqueadas desde la validación.
		now := time.Now()
		for _, id := range productIDs {
			product := products[id]
			oldCount := product.Count
			newCount := oldCount - required[id]
			if err := productRepo.UpdateCount(product.ID, newCount); err != nil {
				return err
			}
			entry := &entity.StockHistoryEntry{
				ProductID:    product.ID,
				OldCount:     oldCount,
				NewCount:     newCount,
				ChangeAmount: newCount - oldCount,
				ChangeType:   entity.ChangeTypeSale,
				ChangedAt:    now,
				Notes:        fmt.Sprintf("Sale - Order #%s", ord.ID),
			}
			if err := historyRepo.Create(entry); err != nil {
				return err
			}
		}

		// Consecutivo de factura, serializado por tenant dentro de esta misma tx.
		n, err := seqRepo.Next(companyID)
		if err != nil {
			return err
		}
		ord.InvoiceNumber = FormatInvoiceNumber(n)
		ord.Status = entity.OrderStatusFinalized
		ord.FinalizedAt = &now
		return orderRepo.Update(ord)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}
