package usuario

import "errors"

var (
	ErrNoEncontrado          = errors.New("Usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
	ErrCredencialesFaltantes = errors.New("Email y contraseña son requeridos")
)

// Table: usuarios. Only the columns the login gate reads.
type Usuario struct {
	UsuarioID    uint64  `gorm:"column:usuario_id;primaryKey;autoIncrement" json:"usuario_id"`
	Nombre       string  `gorm:"column:nombre;size:255" json:"nombre"`
	Email        string  `gorm:"column:email;size:255;uniqueIndex:ux_usuarios_email" json:"email"`
	PasswordHash string  `gorm:"column:passwordhash;size:255" json:"-"`
	RolID        *int64  `gorm:"column:rol_id" json:"rol_id"`
	NivelID      *int64  `gorm:"column:nivel_id" json:"nivel_id"`
}

func (Usuario) TableName() string { return "usuarios" }
