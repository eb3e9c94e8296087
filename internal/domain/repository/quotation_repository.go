package repository

import "github.com/ledgerly/backoffice-api/internal/domain/entity"

// QuotationRepository is the persistence port for quotations. The document
// service only reads; writes exist so a store implementation can be seeded
// and exercised in tests. Implementations live in infrastructure.
type QuotationRepository interface {
	Save(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Quotation, error)
}
