package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the id and unix-second timestamps shared by every table.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// MarkCreated assigns a missing id and sets both timestamps.
func (b *BaseModel) MarkCreated() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) MarkUpdated() {
	b.UpdatedAt = time.Now().Unix()
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.MarkCreated()
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.MarkUpdated()
	return nil
}
