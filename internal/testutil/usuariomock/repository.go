package usuariomock

import (
	"context"

	domain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/usuario"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByEmailFn func(ctx context.Context, email string) (*domain.Usuario, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
