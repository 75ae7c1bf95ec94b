package aviso

import (
	"errors"
	"time"
)

var (
	ErrNoEncontrado = errors.New("aviso no encontrado")
	ErrYaAprobado   = errors.New("el aviso ya fue aprobado")
)

// Table: avisos
type Aviso struct {
	AvisoID        uint64     `gorm:"column:aviso_id;primaryKey;autoIncrement" json:"aviso_id"`
	Titulo         string     `gorm:"column:titulo;size:255;not null" json:"titulo"`
	Descripcion    *string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	FechaAviso     *time.Time `gorm:"column:fecha_aviso;type:datetime;index" json:"fecha_aviso"`
	EstadoAvisoID  *int64     `gorm:"column:estadoaviso_id" json:"estadoaviso_id"`
	Rechazado      bool       `gorm:"column:rechazado;not null;default:false" json:"rechazado"`
	FechaRechazo   *time.Time `gorm:"column:fecha_rechazo;type:datetime(6)" json:"fecha_rechazo"`
	EquipoPadreID  *int64     `gorm:"column:equipo_padre_id" json:"equipo_padre_id"`
	EquipoHijoID   *int64     `gorm:"column:equipo_hijo_id" json:"equipo_hijo_id"`
	AutorID        *int64     `gorm:"column:autor_id;not null" json:"autor_id"`
	UbicacionID    *int64     `gorm:"column:ubicacion_id" json:"ubicacion_id"`
	UrgenciaID     *int64     `gorm:"column:urgencia_id" json:"urgencia_id"`
	MotivoRechazo  *string    `gorm:"column:motivo_rechazo;size:255" json:"motivo_rechazo"`
	DetalleRechazo *string    `gorm:"column:detalle_rechazo;type:text" json:"detalle_rechazo"`
	OTAsociada     *string    `gorm:"column:ot_asociada;size:64" json:"ot_asociada"`
	EstadoOTID     *int64     `gorm:"column:estado_ot_id" json:"estado_ot_id"`
	Paro           bool       `gorm:"column:paro;not null;default:false" json:"paro"`
	FechaParo      *time.Time `gorm:"column:fecha_paro;type:datetime" json:"fecha_paro"`
}

func (Aviso) TableName() string { return "avisos" }
