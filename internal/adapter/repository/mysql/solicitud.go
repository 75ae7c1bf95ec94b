package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	solicitudDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
)

type SolicitudRepository struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) *SolicitudRepository {
	return &SolicitudRepository{db: db}
}

func (r *SolicitudRepository) Create(ctx context.Context, campos map[string]any) (*solicitudDomain.Solicitud, error) {
	s := solicitudDesdeCampos(campos)
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SolicitudRepository) List(ctx context.Context, p listado.Params) ([]solicitudDomain.Solicitud, int64, error) {
	return listarPagina[solicitudDomain.Solicitud](ctx, r.db, p, "fecha_aviso DESC")
}

func (r *SolicitudRepository) GetByID(ctx context.Context, solicitudID uint64) (*solicitudDomain.Solicitud, error) {
	var out solicitudDomain.Solicitud
	res := r.db.WithContext(ctx).Where("solicitud_id = ?", solicitudID).First(&out)
	return &out, res.Error
}

func (r *SolicitudRepository) Update(ctx context.Context, solicitudID uint64, campos map[string]any) (*solicitudDomain.Solicitud, error) {
	res := r.db.WithContext(ctx).
		Model(&solicitudDomain.Solicitud{}).
		Where("solicitud_id = ?", solicitudID).
		Updates(campos)
	if res.Error != nil {
		return nil, res.Error
	}
	out, err := r.GetByID(ctx, solicitudID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, solicitudDomain.ErrNoEncontrada
	}
	return out, err
}

// UltimoCodigo reads the newest SM code. Callers generate the next code
// inside a transaction; the unique index on codigo turns any remaining
// race into an insert error instead of a silent duplicate.
func (r *SolicitudRepository) UltimoCodigo(ctx context.Context) (string, error) {
	var out solicitudDomain.Solicitud
	res := r.db.WithContext(ctx).
		Order("solicitud_id DESC").
		Select("codigo").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if res.Error != nil {
		return "", res.Error
	}
	return out.Codigo, nil
}

func solicitudDesdeCampos(campos map[string]any) *solicitudDomain.Solicitud {
	s := &solicitudDomain.Solicitud{}
	for col, v := range campos {
		switch col {
		case "codigo":
			s.Codigo = cadena(v)
		case "titulo":
			s.Titulo = cadena(v)
		case "descripcion":
			s.Descripcion = cadenaPtr(v)
		case "fecha_aviso":
			s.FechaAviso = fechaPtr(v)
		case "estado_id":
			s.EstadoID = enteroPtr(v)
		case "urgencia_id":
			s.UrgenciaID = enteroPtr(v)
		case "impacto_id":
			s.ImpactoID = enteroPtr(v)
		case "severidad_id":
			s.SeveridadID = enteroPtr(v)
		case "modo_id":
			s.ModoID = enteroPtr(v)
		case "deteccion_id":
			s.DeteccionID = enteroPtr(v)
		case "tipo_intervencion_id":
			s.TipoIntervencionID = enteroPtr(v)
		case "equipo_padre_id":
			s.EquipoPadreID = enteroPtr(v)
		case "equipo_hijo_id":
			s.EquipoHijoID = enteroPtr(v)
		case "autor_id":
			s.AutorID = enteroPtr(v)
		case "paro":
			s.Paro = booleano(v)
		case "fecha_paro":
			s.FechaParo = fechaPtr(v)
		}
	}
	return s
}
