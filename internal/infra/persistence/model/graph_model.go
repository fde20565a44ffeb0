package model

import (
	"github.com/google/uuid"
)

// WaypointModel mirrors the 'waypoints' table, one routable node per row.
type WaypointModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FloorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Category string    `gorm:"type:varchar(50);not null"`
	Lng      float64   `gorm:"type:double precision;not null"`
	Lat      float64   `gorm:"type:double precision;not null"`
}

// TableName explicitly sets the table name for GORM.
func (WaypointModel) TableName() string {
	return "waypoints"
}

// SegmentModel mirrors the 'segments' table. Rows are stored once per
// undirected edge; traversal in both directions is a graph concern.
type SegmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FromWaypointID uuid.UUID `gorm:"type:uuid;not null;index"`
	ToWaypointID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CostMeters     float64   `gorm:"type:double precision;not null"`
	Category       string    `gorm:"type:varchar(50);not null"`
	Accessible     bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (SegmentModel) TableName() string {
	return "segments"
}
