package aprobacion

import (
	"context"
	"strconv"

	aprobacionDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
)

// DuracionPorDefecto fills duracion until planning assigns a real estimate.
const DuracionPorDefecto = "Por definir"

var esquema = normalize.Schema{
	Requeridos:        []string{"titulo", "aviso_id", "autor_id", "equipo_padre_id", "equipo_hijo_id"},
	MensajeRequeridos: "Campos requeridos faltantes: título, aviso_id, autor_id, equipo_padre_id, equipo_hijo_id",
	CamposID: []string{
		"aviso_id", "autor_id", "urgencia_id", "ubicacion_id", "equipo_padre_id",
		"equipo_hijo_id", "impacto_id", "severidad_id", "modo_id", "deteccion_id",
		"tipointervencion_id", "especialidad_id", "contratista_id",
		"cantidad_personas_asignadas", "usuario_id",
	},
	CamposFecha:  []string{"fecha_aviso", "equipo_paro_fechahora", "fecha_creacion"},
	FechaDefault: "fecha_creacion",
	CamposBool:   []string{"equipo_paro"},
	Defaults: map[string]any{
		"descripcion_modo":   "",
		"descripcion_metodo": "",
		"codigo_clase":       "",
		"duracion":           DuracionPorDefecto,
	},
	// absent attachment/priority must not null out stored values on update
	OmitirSiAusente: []string{"documento_adjunto", "prioridad_ejecucion"},
	Permitidos: []string{
		"titulo", "aviso_id", "fecha_aviso", "urgencia_id", "autor_id", "ubicacion_id",
		"equipo_padre_id", "equipo_hijo_id", "descripcion", "descripcion_modo",
		"descripcion_metodo", "documento_adjunto", "duracion", "equipo_paro",
		"equipo_paro_fechahora", "impacto_id", "severidad_id", "modo_id",
		"deteccion_id", "tipointervencion_id", "especialidad_id", "contratista_id",
		"cantidad_personas_asignadas", "codigo_clase", "prioridad_ejecucion",
		"fecha_creacion", "usuario_id",
	},
}

var camposFiltro = []string{"urgencia_id", "equipo_padre_id", "ubicacion_id"}

// Normalizar applies the resource's normalization rules to a raw payload.
// The aviso approval flow builds its copy through here so workflow-created
// rows carry the same defaults as ones posted directly.
func Normalizar(body map[string]any) (map[string]any, error) {
	return esquema.Normalize(body)
}

type Usecase struct{ repo aprobacionDomain.Repository }

func NewUsecase(r aprobacionDomain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Crear(ctx context.Context, body map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
	campos, err := esquema.Normalize(body)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, campos)
}

type ListInput struct {
	Parametros map[string]string
	Search     string
	Pagina     int
	Limite     int
}

func (u *Usecase) Listar(ctx context.Context, in ListInput) ([]aprobacionDomain.SolicitudAprobada, int64, error) {
	filtros := map[string]any{}
	for _, campo := range camposFiltro {
		v, ok := in.Parametros[campo]
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(v); err == nil {
			filtros[campo] = n
		}
	}
	return u.repo.List(ctx, listado.Params{
		Filtros: filtros,
		Search:  in.Search,
		Pagina:  in.Pagina,
		Limite:  in.Limite,
	})
}

// Actualizar keeps the create contract: the full record is re-validated,
// not just the changed fields. Clients submit whole payloads.
func (u *Usecase) Actualizar(ctx context.Context, body map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
	idRaw, ok := body["id"]
	if !ok || idRaw == nil || idRaw == "" {
		return nil, normalize.Invalidf("ID de aprobación es requerido")
	}
	id, err := normalize.Entero(idRaw)
	if err != nil || id <= 0 {
		return nil, normalize.Invalidf("ID de aprobación es requerido")
	}
	campos, err := esquema.Normalize(body)
	if err != nil {
		return nil, err
	}
	return u.repo.Update(ctx, uint64(id), campos)
}
