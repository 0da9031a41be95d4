package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IngestionEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (IngestionEntry) TableName() string {
	return "ingestion_entries"
}
