package model

import (
	"time"

	"github.com/google/uuid"
)

// BuildingModel mirrors the 'buildings' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type BuildingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Floors []FloorModel `gorm:"foreignKey:BuildingID"`
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}

// FloorModel mirrors the 'floors' table. BuildingID references buildings.id (UUID).
type FloorModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Level      int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FloorModel) TableName() string {
	return "floors"
}
