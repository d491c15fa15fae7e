package order_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Borradores: creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDraft_CalculaTotalesYSnapshot(t *testing.T) {
	uc, s := newTestUseCase()
	widgetID := seedProduct(s, "Widget", 10, 5)
	gadgetID := seedProduct(s, "Gadget", 25, 2)

	out, err := uc.CreateDraft(context.Background(), testCompanyID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{
			Name: "ACME Corp", City: "Springfield", Notes: "entrega urgente",
		},
		Items: []dto.OrderLineRequest{
			{ProductID: widgetID, Quantity: 2},
			{ProductID: gadgetID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Empty(t, out.InvoiceNumber)
	assert.Nil(t, out.FinalizedAt)
	assert.Equal(t, int64(3), out.TotalItems)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(45)), "2x$10 + 1x$25 = $45")

	require.Len(t, out.Items, 2)
	assert.Equal(t, "Widget", out.Items[0].ProductTitle)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.Items[0].Subtotal.Equal(decimal.NewFromInt(20)))

	// El borrador no toca stock: no hay reserva.
	assert.Equal(t, int64(5), s.getProduct(widgetID).Count)
	assert.Empty(t, s.historyFor(widgetID))
}

// El borrador admite sobreventa: la cantidad puede exceder el stock actual y
// el conflicto se resuelve recién en la finalización.
func TestCreateDraft_PermiteSobreventa(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 2)

	out, err := uc.CreateDraft(context.Background(), testCompanyID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{Name: "ACME Corp"},
		Items:      []dto.OrderLineRequest{{ProductID: productID, Quantity: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), out.TotalItems)
}

func TestCreateDraft_NombreRequerido(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.CreateDraft(context.Background(), testCompanyID, dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateDraft_CantidadInvalida(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)

	for _, qty := range []int64{0, -1} {
		_, err := uc.CreateDraft(context.Background(), testCompanyID, dto.CreateOrderRequest{
			ClientInfo: dto.ClientInfo{Name: "ACME Corp"},
			Items:      []dto.OrderLineRequest{{ProductID: productID, Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d", qty)
	}
}

func TestCreateDraft_ProductoDeOtroTenant(t *testing.T) {
	uc, s := newTestUseCase()
	foreignID := uuid.New().String()
	s.addProduct(entity.Product{
		ID: foreignID, CategoryID: testCategoryID, CompanyID: otherCompanyID,
		Title: "Ajeno", Price: decimal.NewFromInt(5), Count: 10,
	})

	_, err := uc.CreateDraft(context.Background(), testCompanyID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{Name: "ACME Corp"},
		Items:      []dto.OrderLineRequest{{ProductID: foreignID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto de otro tenant se comporta como inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Borradores: edición y eliminación
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDraft_ReemplazaLineasAlCompleto(t *testing.T) {
	uc, s := newTestUseCase()
	widgetID := seedProduct(s, "Widget", 10, 5)
	gadgetID := seedProduct(s, "Gadget", 25, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: widgetID, Quantity: 2})

	out, err := uc.UpdateDraft(context.Background(), testCompanyID, draft.ID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{Name: "Otro Cliente", Phone: "555-0100"},
		Items:      []dto.OrderLineRequest{{ProductID: gadgetID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Otro Cliente", out.ClientName)
	require.Len(t, out.Items, 1, "las líneas anteriores no sobreviven a la edición")
	assert.Equal(t, gadgetID, out.Items[0].ProductID)
	assert.Equal(t, int64(3), out.TotalItems)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(75)))
}

// El snapshot se recaptura al reeditar: un cambio de precio posterior al
// borrador original se refleja si la línea se vuelve a agregar.
func TestUpdateDraft_RecapturaSnapshot(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})

	p := s.getProduct(productID)
	p.Price = decimal.NewFromInt(99)
	s.addProduct(p)

	out, err := uc.UpdateDraft(context.Background(), testCompanyID, draft.ID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{Name: "ACME Corp"},
		Items:      []dto.OrderLineRequest{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(99)))
}

// El snapshot de una orden finalizada es inmutable frente a ediciones del catálogo.
func TestFinalizada_SnapshotInmutable(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})

	_, err := uc.Finalize(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)

	// Editar el producto después de finalizar.
	p := s.getProduct(productID)
	p.Title = "Widget Renombrado"
	p.Price = decimal.NewFromInt(999)
	s.addProduct(p)

	out, err := uc.GetOrder(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Widget", out.Items[0].ProductTitle)
	assert.True(t, out.Items[0].UnitPrice.Equal(decimal.NewFromInt(10)))
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(10)))
}

func TestUpdateDraft_FinalizadaNoEditable(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})
	_, err := uc.Finalize(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)

	_, err = uc.UpdateDraft(context.Background(), testCompanyID, draft.ID, dto.CreateOrderRequest{
		ClientInfo: dto.ClientInfo{Name: "ACME Corp"},
	})
	assert.ErrorIs(t, err, domain.ErrOrderNotEditable)
}

func TestDeleteDraft(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})

	require.NoError(t, uc.DeleteDraft(context.Background(), testCompanyID, draft.ID))

	_, err := uc.GetOrder(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDraft_FinalizadaNoSeElimina(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 5)
	draft := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})
	_, err := uc.Finalize(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)

	err = uc.DeleteDraft(context.Background(), testCompanyID, draft.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotEditable)

	out, err := uc.GetOrder(context.Background(), testCompanyID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusFinalized, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListOrders_FiltraPorEstado(t *testing.T) {
	uc, s := newTestUseCase()
	productID := seedProduct(s, "Widget", 10, 50)

	pending := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})
	finalized := draftWith(t, uc, dto.OrderLineRequest{ProductID: productID, Quantity: 1})
	_, err := uc.Finalize(context.Background(), testCompanyID, finalized.ID)
	require.NoError(t, err)

	all, err := uc.ListOrders(context.Background(), testCompanyID, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pendings, err := uc.ListOrders(context.Background(), testCompanyID, entity.OrderStatusPending, 20, 0)
	require.NoError(t, err)
	require.Len(t, pendings, 1)
	assert.Equal(t, pending.ID, pendings[0].ID)

	finals, err := uc.ListOrders(context.Background(), testCompanyID, entity.OrderStatusFinalized, 20, 0)
	require.NoError(t, err)
	require.Len(t, finals, 1)
	assert.Equal(t, finalized.ID, finals[0].ID)

	// Otro tenant no ve nada.
	foreign, err := uc.ListOrders(context.Background(), otherCompanyID, "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}
