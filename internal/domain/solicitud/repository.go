package solicitud

import (
	"context"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

type Repository interface {
	Create(ctx context.Context, campos map[string]any) (*Solicitud, error)
	List(ctx context.Context, p listado.Params) ([]Solicitud, int64, error)
	GetByID(ctx context.Context, solicitudID uint64) (*Solicitud, error)
	Update(ctx context.Context, solicitudID uint64, campos map[string]any) (*Solicitud, error)
	// UltimoCodigo returns the most recent SM code ("" when the table is
	// empty), locking the row when called inside a transaction.
	UltimoCodigo(ctx context.Context) (string, error)
}
