package mysql

import (
	"context"

	"gorm.io/gorm"

	catalogoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"
)

type CatalogoRepository struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) *CatalogoRepository { return &CatalogoRepository{db: db} }

func (r *CatalogoRepository) Ubicaciones(ctx context.Context) ([]catalogoDomain.Ubicacion, error) {
	var out []catalogoDomain.Ubicacion
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) EquiposPadre(ctx context.Context) ([]catalogoDomain.EquipoPadre, error) {
	var out []catalogoDomain.EquipoPadre
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) EquiposHijo(ctx context.Context) ([]catalogoDomain.EquipoHijo, error) {
	var out []catalogoDomain.EquipoHijo
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) Estados(ctx context.Context) ([]catalogoDomain.Estado, error) {
	var out []catalogoDomain.Estado
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) Urgencias(ctx context.Context) ([]catalogoDomain.Urgencia, error) {
	var out []catalogoDomain.Urgencia
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) Usuarios(ctx context.Context) ([]catalogoDomain.UsuarioOpcion, error) {
	var out []catalogoDomain.UsuarioOpcion
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *CatalogoRepository) NombreNivel(ctx context.Context, nivelID int64) (string, error) {
	var out catalogoDomain.NivelAcceso
	res := r.db.WithContext(ctx).Where("nivel_id = ?", nivelID).First(&out)
	if res.Error != nil {
		return "", res.Error
	}
	return out.Nombre, nil
}
