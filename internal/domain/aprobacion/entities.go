package aprobacion

import (
	"errors"
	"time"
)

var ErrNoEncontrada = errors.New("aprobación no encontrada")

// Table: solicitudes_aprobadas. Near-duplicate of avisos plus the
// execution-planning columns filled in during aprobación.
type SolicitudAprobada struct {
	ID                        uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Titulo                    string     `gorm:"column:titulo;size:255;not null" json:"titulo"`
	AvisoID                   uint64     `gorm:"column:aviso_id;not null;uniqueIndex:ux_solicitudes_aprobadas_aviso" json:"aviso_id"`
	FechaAviso                *time.Time `gorm:"column:fecha_aviso;type:datetime;index" json:"fecha_aviso"`
	UrgenciaID                *int64     `gorm:"column:urgencia_id" json:"urgencia_id"`
	AutorID                   *int64     `gorm:"column:autor_id;not null" json:"autor_id"`
	UbicacionID               *int64     `gorm:"column:ubicacion_id" json:"ubicacion_id"`
	EquipoPadreID             *int64     `gorm:"column:equipo_padre_id;not null" json:"equipo_padre_id"`
	EquipoHijoID              *int64     `gorm:"column:equipo_hijo_id;not null" json:"equipo_hijo_id"`
	Descripcion               *string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	DescripcionModo           *string    `gorm:"column:descripcion_modo;type:text" json:"descripcion_modo"`
	DescripcionMetodo         *string    `gorm:"column:descripcion_metodo;type:text" json:"descripcion_metodo"`
	DocumentoAdjunto          *string    `gorm:"column:documento_adjunto;size:255" json:"documento_adjunto"`
	Duracion                  *string    `gorm:"column:duracion;size:64" json:"duracion"`
	EquipoParo                bool       `gorm:"column:equipo_paro;not null;default:false" json:"equipo_paro"`
	EquipoParoFechahora       *time.Time `gorm:"column:equipo_paro_fechahora;type:datetime" json:"equipo_paro_fechahora"`
	ImpactoID                 *int64     `gorm:"column:impacto_id" json:"impacto_id"`
	SeveridadID               *int64     `gorm:"column:severidad_id" json:"severidad_id"`
	ModoID                    *int64     `gorm:"column:modo_id" json:"modo_id"`
	DeteccionID               *int64     `gorm:"column:deteccion_id" json:"deteccion_id"`
	TipoIntervencionID        *int64     `gorm:"column:tipointervencion_id" json:"tipointervencion_id"`
	EspecialidadID            *int64     `gorm:"column:especialidad_id" json:"especialidad_id"`
	ContratistaID             *int64     `gorm:"column:contratista_id" json:"contratista_id"`
	CantidadPersonasAsignadas *int64     `gorm:"column:cantidad_personas_asignadas" json:"cantidad_personas_asignadas"`
	CodigoClase               *string    `gorm:"column:codigo_clase;size:64" json:"codigo_clase"`
	PrioridadEjecucion        *string    `gorm:"column:prioridad_ejecucion;size:64" json:"prioridad_ejecucion"`
	FechaCreacion             *time.Time `gorm:"column:fecha_creacion;type:datetime" json:"fecha_creacion"`
	UsuarioID                 *int64     `gorm:"column:usuario_id" json:"usuario_id"`
}

func (SolicitudAprobada) TableName() string { return "solicitudes_aprobadas" }
