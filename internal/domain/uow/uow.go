package uow

import (
	"context"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
)

type Repos struct {
	Avisos       aviso.Repository
	Aprobaciones aprobacion.Repository
	Solicitudes  solicitud.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the aviso row up-front, then pass it in
	WithinAvisoTx(ctx context.Context, avisoID uint64, fn func(r Repos, a *aviso.Aviso) error) error
}
