package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teopopescu15/Inventory-app/internal/application/dto"
	"github.com/teopopescu15/Inventory-app/internal/application/usecase"
	"github.com/teopopescu15/Inventory-app/internal/domain"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

const (
	testCompanyID  = "11111111-1111-1111-1111-111111111111"
	otherCompanyID = "22222222-2222-2222-2222-222222222222"
	testCategoryID = "33333333-3333-3333-3333-333333333333"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: sin concurrencia; aquí interesa el ledger, no las transacciones.
// ──────────────────────────────────────────────────────────────────────────────

type productStore struct {
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	history    []*entity.StockHistoryEntry
}

type passthroughTxRunner struct{ s *productStore }

func (r *passthroughTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	historyRepo repository.StockHistoryRepository,
	seqRepo repository.InvoiceSequenceRepository,
) error) error {
	return fn(nil, &stubProductRepo{s: r.s}, &stubHistoryRepo{s: r.s}, nil)
}

type stubProductRepo struct{ s *productStore }

func (r *stubProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) GetByIDAndCompany(id, companyID string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetForUpdate(id, companyID string) (*entity.Product, error) {
	return r.GetByIDAndCompany(id, companyID)
}

func (r *stubProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) UpdateCount(productID string, count int64) error {
	if p, ok := r.s.products[productID]; ok {
		p.Count = count
	}
	return nil
}

func (r *stubProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListByCategory(categoryID, companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type stubHistoryRepo struct{ s *productStore }

func (r *stubHistoryRepo) Create(e *entity.StockHistoryEntry) error {
	cp := *e
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *stubHistoryRepo) ListByProduct(productID string) ([]*entity.StockHistoryEntry, error) {
	var out []*entity.StockHistoryEntry
	for i := len(r.s.history) - 1; i >= 0; i-- {
		if r.s.history[i].ProductID == productID {
			cp := *r.s.history[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubHistoryRepo) ListByCompanySince(companyID string, since time.Time) ([]*entity.StockHistoryEntry, error) {
	var out []*entity.StockHistoryEntry
	for i := len(r.s.history) - 1; i >= 0; i-- {
		e := r.s.history[i]
		p, ok := r.s.products[e.ProductID]
		if !ok || p.CompanyID != companyID || e.ChangedAt.Before(since) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type stubCategoryRepo struct{ s *productStore }

func (r *stubCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) GetByIDAndCompany(id, companyID string) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(id string) error {
	delete(r.s.categories, id)
	return nil
}

func newProductUseCase() (*usecase.ProductUseCase, *productStore) {
	s := &productStore{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
	}
	s.categories[testCategoryID] = &entity.Category{
		ID: testCategoryID, CompanyID: testCompanyID, Title: "General",
	}
	uc := usecase.NewProductUseCase(&passthroughTxRunner{s: s}, &stubProductRepo{s: s}, &stubCategoryRepo{s: s})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_RegistraEntradaInitial(t *testing.T) {
	uc, s := newProductUseCase()

	out, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID,
		Title:      "Widget",
		Price:      decimal.NewFromInt(10),
		Count:      7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Count)

	require.Len(t, s.history, 1)
	e := s.history[0]
	assert.Equal(t, entity.ChangeTypeInitial, e.ChangeType)
	assert.Equal(t, int64(0), e.OldCount)
	assert.Equal(t, int64(7), e.NewCount)
	assert.Equal(t, int64(7), e.ChangeAmount)
	assert.Equal(t, out.ID, e.ProductID)
}

func TestProductCreate_StockCeroEsValido(t *testing.T) {
	uc, s := newProductUseCase()

	out, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID,
		Title:      "Agotado",
		Price:      decimal.NewFromInt(3),
		Count:      0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Count)

	// El alta con stock cero también queda en el ledger.
	require.Len(t, s.history, 1)
	assert.Equal(t, entity.ChangeTypeInitial, s.history[0].ChangeType)
	assert.Equal(t, int64(0), s.history[0].ChangeAmount)
}

func TestProductCreate_Invalido(t *testing.T) {
	uc, _ := newProductUseCase()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin titulo", dto.CreateProductRequest{CategoryID: testCategoryID, Price: decimal.NewFromInt(1), Count: 1}},
		{"sin categoria", dto.CreateProductRequest{Title: "X", Price: decimal.NewFromInt(1), Count: 1}},
		{"precio cero", dto.CreateProductRequest{CategoryID: testCategoryID, Title: "X", Price: decimal.Zero, Count: 1}},
		{"precio negativo", dto.CreateProductRequest{CategoryID: testCategoryID, Title: "X", Price: decimal.NewFromInt(-5), Count: 1}},
		{"stock negativo", dto.CreateProductRequest{CategoryID: testCategoryID, Title: "X", Price: decimal.NewFromInt(1), Count: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, testCompanyID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductCreate_CategoriaDeOtroTenant(t *testing.T) {
	uc, s := newProductUseCase()
	s.categories["ajena"] = &entity.Category{ID: "ajena", CompanyID: otherCompanyID, Title: "Ajena"}

	_, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: "ajena",
		Title:      "Widget",
		Price:      decimal.NewFromInt(10),
		Count:      1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_AumentoRegistraRestock(t *testing.T) {
	uc, s := newProductUseCase()
	created, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID, Title: "Widget", Price: decimal.NewFromInt(10), Count: 5,
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), testCompanyID, created.ID, dto.UpdateProductRequest{
		Title: "Widget",
		Price: decimal.NewFromInt(10),
		Count: 20,
		Notes: "Llegó pedido del proveedor",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), out.Count)

	require.Len(t, s.history, 2, "INITIAL del alta + RESTOCK de la edición")
	e := s.history[1]
	assert.Equal(t, entity.ChangeTypeRestock, e.ChangeType)
	assert.Equal(t, int64(5), e.OldCount)
	assert.Equal(t, int64(20), e.NewCount)
	assert.Equal(t, int64(15), e.ChangeAmount)
	assert.Equal(t, "Llegó pedido del proveedor", e.Notes)
}

func TestProductUpdate_DisminucionRegistraSale(t *testing.T) {
	uc, s := newProductUseCase()
	created, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID, Title: "Widget", Price: decimal.NewFromInt(10), Count: 5,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), testCompanyID, created.ID, dto.UpdateProductRequest{
		Title: "Widget", Price: decimal.NewFromInt(10), Count: 2,
	})
	require.NoError(t, err)

	require.Len(t, s.history, 2)
	e := s.history[1]
	assert.Equal(t, entity.ChangeTypeSale, e.ChangeType)
	assert.Equal(t, int64(-3), e.ChangeAmount)
	assert.Equal(t, "Manual count update", e.Notes, "sin notas explícitas se usa la nota por defecto")
}

// Una edición que no toca el conteo no ensucia el ledger.
func TestProductUpdate_SinCambioDeConteoNoEscribeLedger(t *testing.T) {
	uc, s := newProductUseCase()
	created, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID, Title: "Widget", Price: decimal.NewFromInt(10), Count: 5,
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), testCompanyID, created.ID, dto.UpdateProductRequest{
		Title: "Widget Pro", Price: decimal.NewFromInt(12), Count: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", out.Title)

	assert.Len(t, s.history, 1, "solo la entrada INITIAL del alta")
}

func TestProductUpdate_OtroTenant(t *testing.T) {
	uc, _ := newProductUseCase()
	created, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID, Title: "Widget", Price: decimal.NewFromInt(10), Count: 5,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), otherCompanyID, created.ID, dto.UpdateProductRequest{
		Title: "Robado", Price: decimal.NewFromInt(1), Count: 0,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	uc, _ := newProductUseCase()
	created, err := uc.Create(context.Background(), testCompanyID, dto.CreateProductRequest{
		CategoryID: testCategoryID, Title: "Widget", Price: decimal.NewFromInt(10), Count: 5,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(testCompanyID, created.ID))

	_, err = uc.GetByID(testCompanyID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
