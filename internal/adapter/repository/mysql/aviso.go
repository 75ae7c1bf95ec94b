package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	avisoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

type AvisoRepository struct{ db *gorm.DB }

func NewAvisoRepository(db *gorm.DB) *AvisoRepository { return &AvisoRepository{db: db} }

func (r *AvisoRepository) Create(ctx context.Context, campos map[string]any) (*avisoDomain.Aviso, error) {
	a := avisoDesdeCampos(campos)
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AvisoRepository) List(ctx context.Context, p listado.Params) ([]avisoDomain.Aviso, int64, error) {
	return listarPagina[avisoDomain.Aviso](ctx, r.db, p, "fecha_aviso DESC")
}

func (r *AvisoRepository) GetByID(ctx context.Context, avisoID uint64) (*avisoDomain.Aviso, error) {
	var out avisoDomain.Aviso
	res := r.db.WithContext(ctx).Where("aviso_id = ?", avisoID).First(&out)
	return &out, res.Error
}

func (r *AvisoRepository) GetByIDForUpdate(ctx context.Context, avisoID uint64) (*avisoDomain.Aviso, error) {
	var out avisoDomain.Aviso
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("aviso_id = ?", avisoID).
		First(&out)
	return &out, res.Error
}

// Update writes only the columns present in campos, then re-reads the row.
func (r *AvisoRepository) Update(ctx context.Context, avisoID uint64, campos map[string]any) (*avisoDomain.Aviso, error) {
	res := r.db.WithContext(ctx).
		Model(&avisoDomain.Aviso{}).
		Where("aviso_id = ?", avisoID).
		Updates(campos)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// the row may exist with identical values; distinguish from absent
		var n int64
		if err := r.db.WithContext(ctx).Model(&avisoDomain.Aviso{}).
			Where("aviso_id = ?", avisoID).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, avisoDomain.ErrNoEncontrado
		}
	}
	return r.GetByID(ctx, avisoID)
}

func avisoDesdeCampos(campos map[string]any) *avisoDomain.Aviso {
	a := &avisoDomain.Aviso{}
	for col, v := range campos {
		switch col {
		case "titulo":
			a.Titulo = cadena(v)
		case "descripcion":
			a.Descripcion = cadenaPtr(v)
		case "fecha_aviso":
			a.FechaAviso = fechaPtr(v)
		case "estadoaviso_id":
			a.EstadoAvisoID = enteroPtr(v)
		case "rechazado":
			a.Rechazado = booleano(v)
		case "fecha_rechazo":
			a.FechaRechazo = fechaPtr(v)
		case "equipo_padre_id":
			a.EquipoPadreID = enteroPtr(v)
		case "equipo_hijo_id":
			a.EquipoHijoID = enteroPtr(v)
		case "autor_id":
			a.AutorID = enteroPtr(v)
		case "ubicacion_id":
			a.UbicacionID = enteroPtr(v)
		case "urgencia_id":
			a.UrgenciaID = enteroPtr(v)
		case "motivo_rechazo":
			a.MotivoRechazo = cadenaPtr(v)
		case "detalle_rechazo":
			a.DetalleRechazo = cadenaPtr(v)
		case "ot_asociada":
			a.OTAsociada = cadenaPtr(v)
		case "estado_ot_id":
			a.EstadoOTID = enteroPtr(v)
		case "paro":
			a.Paro = booleano(v)
		case "fecha_paro":
			a.FechaParo = fechaPtr(v)
		}
	}
	return a
}
