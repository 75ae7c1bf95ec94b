package solicitudmock

import (
	"context"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	domain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, campos map[string]any) (*domain.Solicitud, error)
	ListFn         func(ctx context.Context, p listado.Params) ([]domain.Solicitud, int64, error)
	GetByIDFn      func(ctx context.Context, solicitudID uint64) (*domain.Solicitud, error)
	UpdateFn       func(ctx context.Context, solicitudID uint64, campos map[string]any) (*domain.Solicitud, error)
	UltimoCodigoFn func(ctx context.Context) (string, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, campos map[string]any) (*domain.Solicitud, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, campos)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, p listado.Params) ([]domain.Solicitud, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, p)
	}
	return nil, 0, nil
}

func (m *Repo) GetByID(ctx context.Context, solicitudID uint64) (*domain.Solicitud, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, solicitudID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Update(ctx context.Context, solicitudID uint64, campos map[string]any) (*domain.Solicitud, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, solicitudID, campos)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) UltimoCodigo(ctx context.Context) (string, error) {
	if m.UltimoCodigoFn != nil {
		return m.UltimoCodigoFn(ctx)
	}
	return "", nil
}
