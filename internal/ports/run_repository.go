package ports

import (
	"context"

	"github.com/rtreharne/fishdata/internal/domain"
)

// RunRepository stores generation run records.
type RunRepository interface {
	Create(ctx context.Context, run *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	List(ctx context.Context, limit int) ([]*domain.Run, error)
	Delete(ctx context.Context, id string) error
}
