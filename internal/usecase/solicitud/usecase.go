package solicitud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	solicitudDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/uow"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
)

var esquema = normalize.Schema{
	Requeridos:        []string{"titulo"},
	MensajeRequeridos: "El título es requerido",
	CamposID: []string{
		"estado_id", "urgencia_id", "impacto_id", "severidad_id", "modo_id",
		"deteccion_id", "tipo_intervencion_id", "equipo_padre_id",
		"equipo_hijo_id", "autor_id",
	},
	IDNulosExplicitos: true,
	CamposFecha:       []string{"fecha_aviso", "fecha_paro"},
	CamposBool:        []string{"paro"},
	Permitidos: []string{
		"codigo", "titulo", "descripcion", "fecha_aviso", "estado_id",
		"urgencia_id", "impacto_id", "severidad_id", "modo_id", "deteccion_id",
		"tipo_intervencion_id", "equipo_padre_id", "equipo_hijo_id", "autor_id",
		"paro", "fecha_paro",
	},
}

var camposFiltro = []string{
	"estado_id", "urgencia_id", "impacto_id", "severidad_id", "modo_id",
	"deteccion_id", "tipo_intervencion_id", "paro",
}

type Usecase struct {
	repo solicitudDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r solicitudDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Crear inserts one solicitud, generating the next SM-NNNNN code when the
// client did not supply one. Code generation and insert share a
// transaction; the unique index on codigo catches whatever still races.
func (u *Usecase) Crear(ctx context.Context, body map[string]any) (*solicitudDomain.Solicitud, error) {
	campos, err := esquema.Normalize(body)
	if err != nil {
		return nil, err
	}

	var creada *solicitudDomain.Solicitud
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if codigo, _ := campos["codigo"].(string); codigo == "" {
			ultimo, err := r.Solicitudes.UltimoCodigo(ctx)
			if err != nil {
				return err
			}
			campos["codigo"] = siguienteCodigo(ultimo)
		}
		s, err := r.Solicitudes.Create(ctx, campos)
		if err != nil {
			return err
		}
		creada = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creada, nil
}

// siguienteCodigo turns "SM-00041" into "SM-00042"; anything unparseable
// (including an empty table) restarts the sequence at 1.
func siguienteCodigo(ultimo string) string {
	n := 0
	if partes := strings.SplitN(ultimo, "-", 2); len(partes) == 2 {
		if v, err := strconv.Atoi(partes[1]); err == nil {
			n = v
		}
	}
	return fmt.Sprintf("SM-%05d", n+1)
}

type ListInput struct {
	Parametros map[string]string
	Search     string
	Pagina     int
	Limite     int
}

func (u *Usecase) Listar(ctx context.Context, in ListInput) ([]solicitudDomain.Solicitud, int64, error) {
	filtros := map[string]any{}
	for _, campo := range camposFiltro {
		v, ok := in.Parametros[campo]
		if !ok || v == "" {
			continue
		}
		if campo == "paro" {
			filtros[campo] = v == "true"
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

// Actualizar re-validates the full record, same contract as Crear.
func (u *Usecase) Actualizar(ctx context.Context, body map[string]any) (*solicitudDomain.Solicitud, error) {
	idRaw, ok := body["solicitud_id"]
	if !ok || idRaw == nil || idRaw == "" {
		return nil, normalize.Invalidf("ID de solicitud es requerido")
	}
	id, err := normalize.Entero(idRaw)
	if err != nil || id <= 0 {
		return nil, normalize.Invalidf("ID de solicitud es requerido")
	}
	campos, err := esquema.Normalize(body)
	if err != nil {
		return nil, err
	}
	// the generated code never changes after creation
	delete(campos, "codigo")
	return u.repo.Update(ctx, uint64(id), campos)
}
