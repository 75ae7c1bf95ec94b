package mysql

import (
	"context"

	"gorm.io/gorm"

	aprobacionDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

type AprobacionRepository struct{ db *gorm.DB }

func NewAprobacionRepository(db *gorm.DB) *AprobacionRepository {
	return &AprobacionRepository{db: db}
}

func (r *AprobacionRepository) Create(ctx context.Context, campos map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
	s := solicitudAprobadaDesdeCampos(campos)
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *AprobacionRepository) List(ctx context.Context, p listado.Params) ([]aprobacionDomain.SolicitudAprobada, int64, error) {
	return listarPagina[aprobacionDomain.SolicitudAprobada](ctx, r.db, p, "fecha_aviso DESC")
}

func (r *AprobacionRepository) GetByAvisoID(ctx context.Context, avisoID uint64) (*aprobacionDomain.SolicitudAprobada, error) {
	var out aprobacionDomain.SolicitudAprobada
	res := r.db.WithContext(ctx).Where("aviso_id = ?", avisoID).First(&out)
	return &out, res.Error
}

func (r *AprobacionRepository) Update(ctx context.Context, id uint64, campos map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
	res := r.db.WithContext(ctx).
		Model(&aprobacionDomain.SolicitudAprobada{}).
		Where("id = ?", id).
		Updates(campos)
	if res.Error != nil {
		return nil, res.Error
	}
	var out aprobacionDomain.SolicitudAprobada
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, aprobacionDomain.ErrNoEncontrada
		}
		return nil, err
	}
	return &out, nil
}

func solicitudAprobadaDesdeCampos(campos map[string]any) *aprobacionDomain.SolicitudAprobada {
	s := &aprobacionDomain.SolicitudAprobada{}
	for col, v := range campos {
		switch col {
		case "titulo":
			s.Titulo = cadena(v)
		case "aviso_id":
			s.AvisoID = uint64(entero(v))
		case "fecha_aviso":
			s.FechaAviso = fechaPtr(v)
		case "urgencia_id":
			s.UrgenciaID = enteroPtr(v)
		case "autor_id":
			s.AutorID = enteroPtr(v)
		case "ubicacion_id":
			s.UbicacionID = enteroPtr(v)
		case "equipo_padre_id":
			s.EquipoPadreID = enteroPtr(v)
		case "equipo_hijo_id":
			s.EquipoHijoID = enteroPtr(v)
		case "descripcion":
			s.Descripcion = cadenaPtr(v)
		case "descripcion_modo":
			s.DescripcionModo = cadenaPtr(v)
		case "descripcion_metodo":
			s.DescripcionMetodo = cadenaPtr(v)
		case "documento_adjunto":
			s.DocumentoAdjunto = cadenaPtr(v)
		case "duracion":
			s.Duracion = cadenaPtr(v)
		case "equipo_paro":
			s.EquipoParo = booleano(v)
		case "equipo_paro_fechahora":
			s.EquipoParoFechahora = fechaPtr(v)
		case "impacto_id":
			s.ImpactoID = enteroPtr(v)
		case "severidad_id":
			s.SeveridadID = enteroPtr(v)
		case "modo_id":
			s.ModoID = enteroPtr(v)
		case "deteccion_id":
			s.DeteccionID = enteroPtr(v)
		case "tipointervencion_id":
			s.TipoIntervencionID = enteroPtr(v)
		case "especialidad_id":
			s.EspecialidadID = enteroPtr(v)
		case "contratista_id":
			s.ContratistaID = enteroPtr(v)
		case "cantidad_personas_asignadas":
			s.CantidadPersonasAsignadas = enteroPtr(v)
		case "codigo_clase":
			s.CodigoClase = cadenaPtr(v)
		case "prioridad_ejecucion":
			s.PrioridadEjecucion = cadenaPtr(v)
		case "fecha_creacion":
			s.FechaCreacion = fechaPtr(v)
		case "usuario_id":
			s.UsuarioID = enteroPtr(v)
		}
	}
	return s
}
