package model

import (
	"time"

	"github.com/google/uuid"
)

// POIModel mirrors the 'pois' table. Coordinates are stored as plain WGS84
// columns; geometry lives in the waypoint graph, not here.
type POIModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FloorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(50)"`
	Lng       float64   `gorm:"type:double precision;not null"`
	Lat       float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (POIModel) TableName() string {
	return "pois"
}
