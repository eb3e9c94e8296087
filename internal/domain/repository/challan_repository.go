package repository

import "github.com/ledgerly/backoffice-api/internal/domain/entity"

// ChallanRepository is the persistence port for delivery challans.
type ChallanRepository interface {
	Save(ch *entity.DeliveryChallan) error
	GetByID(id string) (*entity.DeliveryChallan, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.DeliveryChallan, error)
}
