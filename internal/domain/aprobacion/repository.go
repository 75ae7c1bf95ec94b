package aprobacion

import (
	"context"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

type Repository interface {
	Create(ctx context.Context, campos map[string]any) (*SolicitudAprobada, error)
	List(ctx context.Context, p listado.Params) ([]SolicitudAprobada, int64, error)
	// GetByAvisoID backs the one-aprobación-per-aviso guard.
	GetByAvisoID(ctx context.Context, avisoID uint64) (*SolicitudAprobada, error)
	Update(ctx context.Context, id uint64, campos map[string]any) (*SolicitudAprobada, error)
}
