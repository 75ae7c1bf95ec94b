package aviso

import (
	"context"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

type Repository interface {
	// Create inserts the normalized column map and returns the stored row.
	Create(ctx context.Context, campos map[string]any) (*Aviso, error)
	// List returns one page plus the filtered total (two independent queries).
	List(ctx context.Context, p listado.Params) ([]Aviso, int64, error)
	GetByID(ctx context.Context, avisoID uint64) (*Aviso, error)
	// GetByIDForUpdate locks the row; only meaningful inside a transaction.
	GetByIDForUpdate(ctx context.Context, avisoID uint64) (*Aviso, error)
	// Update writes only the columns present in campos.
	Update(ctx context.Context, avisoID uint64, campos map[string]any) (*Aviso, error)
}
