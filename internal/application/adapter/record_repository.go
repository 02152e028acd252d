// Package adapter defines the interfaces between the application layer and
// its outer collaborators (persistence, cache, exporters).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneymap/backend/internal/domain/entity"
)

// RecordRepository defines the persistence operations for financial records.
type RecordRepository interface {
	// Create persists a new record.
	Create(ctx context.Context, record *entity.Record) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// FindAll retrieves every record, ordered by date descending then
	// creation time descending.
	FindAll(ctx context.Context) ([]*entity.Record, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *entity.Record) error

	// Delete removes a record by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
