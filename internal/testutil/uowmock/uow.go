package uowmock

import (
	"context"
	"errors"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinAvisoTxFn func(ctx context.Context, avisoID uint64, fn func(r uow.Repos, a *aviso.Aviso) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinAvisoTx(ctx context.Context, avisoID uint64, fn func(r uow.Repos, a *aviso.Aviso) error) error {
	if m.WithinAvisoTxFn != nil {
		return m.WithinAvisoTxFn(ctx, avisoID, fn)
	}
	return errUnimplemented
}
