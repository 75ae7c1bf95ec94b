package aprobacionmock

import (
	"context"

	domain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, campos map[string]any) (*domain.SolicitudAprobada, error)
	ListFn         func(ctx context.Context, p listado.Params) ([]domain.SolicitudAprobada, int64, error)
	GetByAvisoIDFn func(ctx context.Context, avisoID uint64) (*domain.SolicitudAprobada, error)
	UpdateFn       func(ctx context.Context, id uint64, campos map[string]any) (*domain.SolicitudAprobada, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, campos map[string]any) (*domain.SolicitudAprobada, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, campos)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, p listado.Params) ([]domain.SolicitudAprobada, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, p)
	}
	return nil, 0, nil
}

func (m *Repo) GetByAvisoID(ctx context.Context, avisoID uint64) (*domain.SolicitudAprobada, error) {
	if m.GetByAvisoIDFn != nil {
		return m.GetByAvisoIDFn(ctx, avisoID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Update(ctx context.Context, id uint64, campos map[string]any) (*domain.SolicitudAprobada, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, campos)
	}
	return nil, gorm.ErrRecordNotFound
}
