package repository

import "github.com/ledgerly/backoffice-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices.
type InvoiceRepository interface {
	Save(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error)
}
