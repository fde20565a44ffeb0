package postgres

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/domain/repository"
	"github.com/AmbientEg/navigation-service/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// poiRepository implements the repository.POIRepository interface.
type poiRepository struct {
	db *gorm.DB
}

// NewPOIRepository is the constructor for poiRepository.
func NewPOIRepository(db *gorm.DB) repository.POIRepository {
	return &poiRepository{db: db}
}

// FindPOIByID retrieves a point of interest by its unique ID.
func (repo *poiRepository) FindPOIByID(ctx context.Context, id uuid.UUID) (*entity.POI, error) {
	var poiM model.POIModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&poiM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPOINotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find POI by ID")
	}

	return toPOIDomain(&poiM), nil
}

// ListPOIsByFloor retrieves all points of interest on a floor ordered by name.
func (repo *poiRepository) ListPOIsByFloor(ctx context.Context, floorID uuid.UUID) ([]*entity.POI, error) {
	var poiModels []*model.POIModel
	if err := repo.db.WithContext(ctx).
		Where("floor_id = ?", floorID).
		Order("name ASC").
		Find(&poiModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list POIs by floor")
	}

	pois := make([]*entity.POI, 0, len(poiModels))
	for _, poiM := range poiModels {
		pois = append(pois, toPOIDomain(poiM))
	}

	return pois, nil
}

func toPOIDomain(poiM *model.POIModel) *entity.POI {
	return &entity.POI{
		ID:        poiM.ID,
		FloorID:   poiM.FloorID,
		Name:      poiM.Name,
		Category:  poiM.Category,
		Location:  orb.Point{poiM.Lng, poiM.Lat},
		CreatedAt: poiM.CreatedAt,
		UpdatedAt: poiM.UpdatedAt,
	}
}
