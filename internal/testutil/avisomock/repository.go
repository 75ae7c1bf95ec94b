package avisomock

import (
	"context"

	domain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn           func(ctx context.Context, campos map[string]any) (*domain.Aviso, error)
	ListFn             func(ctx context.Context, p listado.Params) ([]domain.Aviso, int64, error)
	GetByIDFn          func(ctx context.Context, avisoID uint64) (*domain.Aviso, error)
	GetByIDForUpdateFn func(ctx context.Context, avisoID uint64) (*domain.Aviso, error)
	UpdateFn           func(ctx context.Context, avisoID uint64, campos map[string]any) (*domain.Aviso, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, campos map[string]any) (*domain.Aviso, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, campos)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, p listado.Params) ([]domain.Aviso, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, p)
	}
	return nil, 0, nil
}

func (m *Repo) GetByID(ctx context.Context, avisoID uint64) (*domain.Aviso, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, avisoID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, avisoID uint64) (*domain.Aviso, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, avisoID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Update(ctx context.Context, avisoID uint64, campos map[string]any) (*domain.Aviso, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, avisoID, campos)
	}
	return nil, gorm.ErrRecordNotFound
}
