package solicitud

import (
	"errors"
	"time"
)

var ErrNoEncontrada = errors.New("solicitud no encontrada")

// Table: solicitudes (the earlier, flatter request schema; keeps its own
// human-readable SM-NNNNN code).
type Solicitud struct {
	SolicitudID        uint64     `gorm:"column:solicitud_id;primaryKey;autoIncrement" json:"solicitud_id"`
	Codigo             string     `gorm:"column:codigo;size:16;uniqueIndex:ux_solicitudes_codigo" json:"codigo"`
	Titulo             string     `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Descripcion        *string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	FechaAviso         *time.Time `gorm:"column:fecha_aviso;type:datetime;index" json:"fecha_aviso"`
	EstadoID           *int64     `gorm:"column:estado_id" json:"estado_id"`
	UrgenciaID         *int64     `gorm:"column:urgencia_id" json:"urgencia_id"`
	ImpactoID          *int64     `gorm:"column:impacto_id" json:"impacto_id"`
	SeveridadID        *int64     `gorm:"column:severidad_id" json:"severidad_id"`
	ModoID             *int64     `gorm:"column:modo_id" json:"modo_id"`
	DeteccionID        *int64     `gorm:"column:deteccion_id" json:"deteccion_id"`
	TipoIntervencionID *int64     `gorm:"column:tipo_intervencion_id" json:"tipo_intervencion_id"`
	EquipoPadreID      *int64     `gorm:"column:equipo_padre_id" json:"equipo_padre_id"`
	EquipoHijoID       *int64     `gorm:"column:equipo_hijo_id" json:"equipo_hijo_id"`
	AutorID            *int64     `gorm:"column:autor_id" json:"autor_id"`
	Paro               bool       `gorm:"column:paro;not null;default:false" json:"paro"`
	FechaParo          *time.Time `gorm:"column:fecha_paro;type:datetime" json:"fecha_paro"`
}

func (Solicitud) TableName() string { return "solicitudes" }
