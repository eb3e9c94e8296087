// Package memory provides a mutex-guarded in-memory implementation of the
// repository ports. It backs the standalone binary and the handler tests;
// a real deployment plugs its own persistence in behind the same
// interfaces.
package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ledgerly/backoffice-api/internal/domain/entity"
	"github.com/ledgerly/backoffice-api/internal/domain/repository"
)

// Store holds every record type behind one lock. Reads return the stored
// pointers; callers treat records as read-only snapshots.
type Store struct {
	mu         sync.RWMutex
	businesses map[string]*entity.Business
	quotations map[string]*entity.Quotation
	invoices   map[string]*entity.Invoice
	challans   map[string]*entity.DeliveryChallan
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		businesses: make(map[string]*entity.Business),
		quotations: make(map[string]*entity.Quotation),
		invoices:   make(map[string]*entity.Invoice),
		challans:   make(map[string]*entity.DeliveryChallan),
	}
}

// Businesses returns the store as a BusinessRepository.
func (s *Store) Businesses() repository.BusinessRepository { return (*businessRepo)(s) }

// Quotations returns the store as a QuotationRepository.
func (s *Store) Quotations() repository.QuotationRepository { return (*quotationRepo)(s) }

// Invoices returns the store as an InvoiceRepository.
func (s *Store) Invoices() repository.InvoiceRepository { return (*invoiceRepo)(s) }

// Challans returns the store as a ChallanRepository.
func (s *Store) Challans() repository.ChallanRepository { return (*challanRepo)(s) }

// ── BusinessRepository ────────────────────────────────────────────────────────

type businessRepo Store

func (r *businessRepo) Save(b *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	r.businesses[b.ID] = b
	return nil
}

func (r *businessRepo) GetByID(id string) (*entity.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.businesses[id], nil
}

// ── QuotationRepository ───────────────────────────────────────────────────────

type quotationRepo Store

func (r *quotationRepo) Save(q *entity.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	r.quotations[q.ID] = q
	return nil
}

func (r *quotationRepo) GetByID(id string) (*entity.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quotations[id], nil
}

func (r *quotationRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Quotation
	for _, q := range r.quotations {
		if q.BusinessID == businessID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return page(out, limit, offset), nil
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

type invoiceRepo Store

func (r *invoiceRepo) Save(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *invoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.invoices[id], nil
}

func (r *invoiceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.BusinessID == businessID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return page(out, limit, offset), nil
}

// ── ChallanRepository ─────────────────────────────────────────────────────────

type challanRepo Store

func (r *challanRepo) Save(ch *entity.DeliveryChallan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	r.challans[ch.ID] = ch
	return nil
}

func (r *challanRepo) GetByID(id string) (*entity.DeliveryChallan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.challans[id], nil
}

func (r *challanRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.DeliveryChallan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.DeliveryChallan
	for _, ch := range r.challans {
		if ch.BusinessID == businessID {
			out = append(out, ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return page(out, limit, offset), nil
}

// page applies limit/offset to a slice; limit <= 0 means no limit.
func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
