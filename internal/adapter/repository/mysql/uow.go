package mysql

import (
	"context"

	"gorm.io/gorm"

	avisoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposDe(tx))
	})
}

func (u *GormUoW) WithinAvisoTx(ctx context.Context, avisoID uint64, fn func(r uow.Repos, a *avisoDomain.Aviso) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposDe(tx)
		// lock the aviso row up-front to serialize approve/reject races
		a, err := r.Avisos.GetByIDForUpdate(ctx, avisoID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}

func reposDe(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Avisos:       &AvisoRepository{db: tx},
		Aprobaciones: &AprobacionRepository{db: tx},
		Solicitudes:  &SolicitudRepository{db: tx},
	}
}
