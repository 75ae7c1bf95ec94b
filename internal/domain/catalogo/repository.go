package catalogo

import "context"

type Repository interface {
	Ubicaciones(ctx context.Context) ([]Ubicacion, error)
	EquiposPadre(ctx context.Context) ([]EquipoPadre, error)
	EquiposHijo(ctx context.Context) ([]EquipoHijo, error)
	Estados(ctx context.Context) ([]Estado, error)
	Urgencias(ctx context.Context) ([]Urgencia, error)
	Usuarios(ctx context.Context) ([]UsuarioOpcion, error)
	// NombreNivel resolves the access-level label for the login response.
	NombreNivel(ctx context.Context, nivelID int64) (string, error)
}
