package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain/entity"
	"github.com/marcos-nsantos/zapgo-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type StationRepository interface {
	List(ctx context.Context, params StationListParams) ([]entity.ChargingStation, *pagination.Info, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChargingStation, error)
	All(ctx context.Context) ([]entity.ChargingStation, error)
}

type StationListParams struct {
	Pagination  pagination.Params
	BoundingBox *valueobject.BoundingBox
}
