package postgres

import (
	"context"

	"github.com/AmbientEg/navigation-service/internal/domain/entity"
	domainerrors "github.com/AmbientEg/navigation-service/internal/domain/errors"
	"github.com/AmbientEg/navigation-service/internal/domain/repository"
	"github.com/AmbientEg/navigation-service/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// buildingRepository implements the repository.BuildingRepository interface.
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository is the constructor for buildingRepository.
func NewBuildingRepository(db *gorm.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

// ListBuildings retrieves all buildings ordered by name.
func (repo *buildingRepository) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&buildingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list buildings")
	}

	buildings := make([]*entity.Building, 0, len(buildingModels))
	for _, buildingM := range buildingModels {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}

// FindBuildingByID retrieves a building by its unique ID.
func (repo *buildingRepository) FindBuildingByID(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	var buildingM model.BuildingModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find building by ID")
	}

	return toBuildingDomain(&buildingM), nil
}

// ListFloorsByBuilding retrieves all floors of a building ordered by level.
func (repo *buildingRepository) ListFloorsByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Floor, error) {
	var floorModels []*model.FloorModel
	if err := repo.db.WithContext(ctx).
		Where("building_id = ?", buildingID).
		Order("level ASC").
		Find(&floorModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list floors by building")
	}

	floors := make([]*entity.Floor, 0, len(floorModels))
	for _, floorM := range floorModels {
		floors = append(floors, toFloorDomain(floorM))
	}

	return floors, nil
}

// FindFloorByID retrieves a floor by its unique ID.
func (repo *buildingRepository) FindFloorByID(ctx context.Context, id uuid.UUID) (*entity.Floor, error) {
	var floorM model.FloorModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&floorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFloorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find floor by ID")
	}

	return toFloorDomain(&floorM), nil
}

func toBuildingDomain(buildingM *model.BuildingModel) *entity.Building {
	return &entity.Building{
		ID:        buildingM.ID,
		Name:      buildingM.Name,
		Address:   buildingM.Address,
		CreatedAt: buildingM.CreatedAt,
		UpdatedAt: buildingM.UpdatedAt,
	}
}

func toFloorDomain(floorM *model.FloorModel) *entity.Floor {
	return &entity.Floor{
		ID:         floorM.ID,
		BuildingID: floorM.BuildingID,
		Name:       floorM.Name,
		Level:      floorM.Level,
		CreatedAt:  floorM.CreatedAt,
		UpdatedAt:  floorM.UpdatedAt,
	}
}
