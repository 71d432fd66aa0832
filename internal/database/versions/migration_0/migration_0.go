package migration_0

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Recommendation struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	UserInput string         `gorm:"not null"`
	Movies    datatypes.JSON `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"index"`
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Recommendation{}); err != nil {
		return fmt.Errorf("error creating recommendations table: %w", err)
	}

	return nil
}
