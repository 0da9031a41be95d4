package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	FileName  string
	Content   string
	CreatedAt time.Time
}
