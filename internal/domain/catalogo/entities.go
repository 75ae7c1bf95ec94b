package catalogo

// Option is the {value,label} pair the UI dropdowns consume.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Reference tables behind GET /filtros. Each is a tiny id+name pair; the
// label column differs per table (nombre vs label) so they stay separate
// gorm models instead of one generic struct.

type Ubicacion struct {
	UbicacionID uint64 `gorm:"column:ubicacion_id;primaryKey;autoIncrement"`
	Nombre      string `gorm:"column:nombre;size:255"`
}

func (Ubicacion) TableName() string { return "ubicaciones" }

type EquipoPadre struct {
	EquipoPadreID uint64 `gorm:"column:equipo_padre_id;primaryKey;autoIncrement"`
	Nombre        string `gorm:"column:nombre;size:255"`
}

func (EquipoPadre) TableName() string { return "equipos_padre" }

type EquipoHijo struct {
	EquipoHijoID uint64 `gorm:"column:equipo_hijo_id;primaryKey;autoIncrement"`
	Nombre       string `gorm:"column:nombre;size:255"`
}

func (EquipoHijo) TableName() string { return "equipos_hijo" }

type Estado struct {
	EstadoID uint64 `gorm:"column:estado_id;primaryKey;autoIncrement"`
	Label    string `gorm:"column:label;size:255"`
}

func (Estado) TableName() string { return "estado" }

type Urgencia struct {
	UrgenciaID uint64 `gorm:"column:urgencia_id;primaryKey;autoIncrement"`
	Label      string `gorm:"column:label;size:255"`
}

func (Urgencia) TableName() string { return "urgencia" }

// UsuarioOpcion is the slice of the usuarios table the filtros endpoint
// exposes; the full login model lives in the usuario package.
type UsuarioOpcion struct {
	UsuarioID uint64 `gorm:"column:usuario_id;primaryKey"`
	Nombre    string `gorm:"column:nombre;size:255"`
}

func (UsuarioOpcion) TableName() string { return "usuarios" }

type NivelAcceso struct {
	NivelID uint64 `gorm:"column:nivel_id;primaryKey;autoIncrement"`
	Nombre  string `gorm:"column:nombre;size:255"`
}

func (NivelAcceso) TableName() string { return "niveles_acceso" }
