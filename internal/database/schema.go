package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recommendation struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserInput string         `gorm:"not null"`
	Movies    datatypes.JSON `gorm:"type:jsonb;not null"` // [{"title":"…","year":"…","reason":"…"},…]

	CreatedAt time.Time `gorm:"index"`
}
