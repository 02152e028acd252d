// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/moneymap/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type      string          `gorm:"type:varchar(12);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(100);not null;default:''"`
	Label     string          `gorm:"type:varchar(255);not null;default:''"`
	Date      string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Record{
		ID:        m.ID,
		Type:      entity.RecordType(m.Type),
		Amount:    m.Amount,
		Category:  m.Category,
		Label:     m.Label,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	var deletedAt gorm.DeletedAt
	if record.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *record.DeletedAt, Valid: true}
	}

	return &RecordModel{
		ID:        record.ID,
		Type:      string(record.Type),
		Amount:    record.Amount,
		Category:  record.Category,
		Label:     record.Label,
		Date:      record.Date,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
