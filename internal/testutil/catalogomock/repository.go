package catalogomock

import (
	"context"

	domain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UbicacionesFn  func(ctx context.Context) ([]domain.Ubicacion, error)
	EquiposPadreFn func(ctx context.Context) ([]domain.EquipoPadre, error)
	EquiposHijoFn  func(ctx context.Context) ([]domain.EquipoHijo, error)
	EstadosFn      func(ctx context.Context) ([]domain.Estado, error)
	UrgenciasFn    func(ctx context.Context) ([]domain.Urgencia, error)
	UsuariosFn     func(ctx context.Context) ([]domain.UsuarioOpcion, error)
	NombreNivelFn  func(ctx context.Context, nivelID int64) (string, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Ubicaciones(ctx context.Context) ([]domain.Ubicacion, error) {
	if m.UbicacionesFn != nil {
		return m.UbicacionesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) EquiposPadre(ctx context.Context) ([]domain.EquipoPadre, error) {
	if m.EquiposPadreFn != nil {
		return m.EquiposPadreFn(ctx)
	}
	return nil, nil
}

func (m *Repo) EquiposHijo(ctx context.Context) ([]domain.EquipoHijo, error) {
	if m.EquiposHijoFn != nil {
		return m.EquiposHijoFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Estados(ctx context.Context) ([]domain.Estado, error) {
	if m.EstadosFn != nil {
		return m.EstadosFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Urgencias(ctx context.Context) ([]domain.Urgencia, error) {
	if m.UrgenciasFn != nil {
		return m.UrgenciasFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Usuarios(ctx context.Context) ([]domain.UsuarioOpcion, error) {
	if m.UsuariosFn != nil {
		return m.UsuariosFn(ctx)
	}
	return nil, nil
}

func (m *Repo) NombreNivel(ctx context.Context, nivelID int64) (string, error) {
	if m.NombreNivelFn != nil {
		return m.NombreNivelFn(ctx, nivelID)
	}
	return "", gorm.ErrRecordNotFound
}
