package repository

import "github.com/ledgerly/backoffice-api/internal/domain/entity"

// BusinessRepository is the persistence port for business profiles.
type BusinessRepository interface {
	Save(b *entity.Business) error
	GetByID(id string) (*entity.Business, error)
}
