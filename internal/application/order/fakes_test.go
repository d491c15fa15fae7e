package order_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/teopopescu15/Inventory-app/internal/domain/entity"
	"github.com/teopopescu15/Inventory-app/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula la base de datos; fakeTxRunner emula la frontera transaccional:
// toma el mutex durante todo el callback (serializa transacciones, como lo hacen
// los SELECT FOR UPDATE en producción) y, si el callback falla, restaura el
// snapshot previo (rollback).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	orders   map[string]*entity.Order
	items    map[string][]*entity.OrderItem // por orderID
	products map[string]*entity.Product
	history  []*entity.StockHistoryEntry
	seqs     map[string]int64 // companyID → último número de factura
}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[string]*entity.Order),
		items:    make(map[string][]*entity.OrderItem),
		products: make(map[string]*entity.Product),
		seqs:     make(map[string]int64),
	}
}

func (s *memStore) addProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = &p
}

func (s *memStore) getProduct(id string) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.products[id]
}

func (s *memStore) getOrder(id string) entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.orders[id]
}

func (s *memStore) historyFor(productID string) []entity.StockHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.StockHistoryEntry
	for _, e := range s.history {
		if e.ProductID == productID {
			out = append(out, *e)
		}
	}
	return out
}

// snapshot copia el estado completo para poder hacer rollback.
func (s *memStore) snapshot() (map[string]*entity.Order, map[string][]*entity.OrderItem, map[string]*entity.Product, []*entity.StockHistoryEntry, map[string]int64) {
	orders := make(map[string]*entity.Order, len(s.orders))
	for k, v := range s.orders {
		cp := *v
		cp.Items = nil
		orders[k] = &cp
	}
	items := make(map[string][]*entity.OrderItem, len(s.items))
	for k, v := range s.items {
		cps := make([]*entity.OrderItem, len(v))
		for i, it := range v {
			cp := *it
			cps[i] = &cp
		}
		items[k] = cps
	}
	products := make(map[string]*entity.Product, len(s.products))
	for k, v := range s.products {
		cp := *v
		products[k] = &cp
	}
	history := make([]*entity.StockHistoryEntry, len(s.history))
	for i, e := range s.history {
		cp := *e
		history[i] = &cp
	}
	seqs := make(map[string]int64, len(s.seqs))
	for k, v := range s.seqs {
		seqs[k] = v
	}
	return orders, items, products, history, seqs
}

// fakeTxRunner serializa los callbacks y hace rollback si fallan.
type fakeTxRunner struct {
	s *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	historyRepo repository.StockHistoryRepository,
	seqRepo repository.InvoiceSequenceRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	orders, items, products, history, seqs := r.s.snapshot()

	err := fn(
		&fakeOrderRepo{s: r.s, inTx: true},
		&fakeProductRepo{s: r.s, inTx: true},
		&fakeHistoryRepo{s: r.s, inTx: true},
		&fakeSeqRepo{s: r.s, inTx: true},
	)
	if err != nil {
		// rollback
		r.s.orders = orders
		r.s.items = items
		r.s.products = products
		r.s.history = history
		r.s.seqs = seqs
	}
	return err
}

// ── Repos fake ────────────────────────────────────────────────────────────────
// Con inTx=true el mutex ya lo sostiene el runner; con inTx=false (acceso
// directo, como los reads fuera de transacción) cada método lo toma.

type fakeOrderRepo struct {
	s    *memStore
	inTx bool
}

func (r *fakeOrderRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	defer r.lock()()
	cp := *o
	cp.Items = nil
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByIDAndCompany(id, companyID string) (*entity.Order, error) {
	defer r.lock()()
	o, ok := r.s.orders[id]
	if !ok || o.CompanyID != companyID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetForUpdate(id, companyID string) (*entity.Order, error) {
	return r.GetByIDAndCompany(id, companyID)
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	defer r.lock()()
	cp := *o
	cp.Items = nil
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Order, error) {
	return r.list(companyID, "", limit, offset)
}

func (r *fakeOrderRepo) ListByCompanyAndStatus(companyID, status string, limit, offset int) ([]*entity.Order, error) {
	return r.list(companyID, status, limit, offset)
}

func (r *fakeOrderRepo) list(companyID, status string, limit, offset int) ([]*entity.Order, error) {
	defer r.lock()()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.CompanyID != companyID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.s.orders, id)
	return nil
}

func (r *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	defer r.lock()()
	cp := *it
	r.s.items[it.OrderID] = append(r.s.items[it.OrderID], &cp)
	return nil
}

func (r *fakeOrderRepo) ListItemsByOrder(orderID string) ([]*entity.OrderItem, error) {
	defer r.lock()()
	src := r.s.items[orderID]
	out := make([]*entity.OrderItem, len(src))
	for i, it := range src {
		cp := *it
		out[i] = &cp
	}
	return out, nil
}

func (r *fakeOrderRepo) DeleteItemsByOrder(orderID string) error {
	defer r.lock()()
	delete(r.s.items, orderID)
	return nil
}

type fakeProductRepo struct {
	s    *memStore
	inTx bool
}

func (r *fakeProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByIDAndCompany(id, companyID string) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id, companyID string) (*entity.Product, error) {
	return r.GetByIDAndCompany(id, companyID)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateCount(productID string, count int64) error {
	defer r.lock()()
	if p, ok := r.s.products[productID]; ok {
		p.Count = count
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID, companyID string) ([]*entity.Product, error) {
	defer r.lock()()
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.s.products, id)
	return nil
}

type fakeHistoryRepo struct {
	s    *memStore
	inTx bool
}

func (r *fakeHistoryRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *fakeHistoryRepo) Create(e *entity.StockHistoryEntry) error {
	defer r.lock()()
	cp := *e
	cp.ID = uuid.New().String()
	e.ID = cp.ID
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListByProduct(productID string) ([]*entity.StockHistoryEntry, error) {
	defer r.lock()()
	var out []*entity.StockHistoryEntry
	for i := len(r.s.history) - 1; i >= 0; i-- {
		if r.s.history[i].ProductID == productID {
			cp := *r.s.history[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListByCompanySince(companyID string, since time.Time) ([]*entity.StockHistoryEntry, error) {
	defer r.lock()()
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

type fakeSeqRepo struct {
	s    *memStore
	inTx bool
}

func (r *fakeSeqRepo) Next(companyID string) (int64, error) {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	r.s.seqs[companyID]++
	return r.s.seqs[companyID], nil
}
