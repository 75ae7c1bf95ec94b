package aviso

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	avisoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/uow"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
	aprobacionUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/pkg/fechas"
)

const (
	AccionAprobar  = "aprobar"
	AccionRechazar = "rechazar"
)

var esquema = normalize.Schema{
	Requeridos:        []string{"titulo", "autor_id", "equipo_padre_id", "equipo_hijo_id"},
	MensajeRequeridos: "Campos requeridos faltantes: título, autor_id, equipo_padre_id, equipo_hijo_id",
	CamposID: []string{
		"autor_id", "estadoaviso_id", "urgencia_id", "ubicacion_id",
		"equipo_padre_id", "equipo_hijo_id", "estado_ot_id",
	},
	IDNulosExplicitos: true,
	CamposFecha:       []string{"fecha_aviso", "fecha_paro"},
	FechaDefault:      "fecha_aviso",
	CamposBool:        []string{"paro", "rechazado"},
	Permitidos: []string{
		"titulo", "descripcion", "fecha_aviso", "estadoaviso_id", "rechazado",
		"equipo_padre_id", "equipo_hijo_id", "autor_id", "ubicacion_id",
		"urgencia_id", "motivo_rechazo", "detalle_rechazo", "ot_asociada",
		"estado_ot_id", "paro", "fecha_paro",
	},
}

// camposFiltro is the query-param whitelist for GET /avisos.
var camposFiltro = []string{"estadoaviso_id", "urgencia_id", "equipo_padre_id", "ubicacion_id", "rechazado"}

type Usecase struct {
	repo avisoDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r avisoDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Crear normalizes the raw body and inserts one aviso.
func (u *Usecase) Crear(ctx context.Context, body map[string]any) (*avisoDomain.Aviso, error) {
	campos, err := esquema.Normalize(body)
	if err != nil {
		return nil, err
	}
	paro := normalize.Truthy(campos["paro"])
	campos["paro"] = paro
	// an equipment that is not stopped cannot carry a stoppage timestamp
	if !paro {
		campos["fecha_paro"] = nil
	}
	return u.repo.Create(ctx, campos)
}

type ListInput struct {
	// Parametros holds the raw query params; only whitelisted ones filter.
	Parametros map[string]string
	Search     string
	Pagina     int
	Limite     int
}

func (u *Usecase) Listar(ctx context.Context, in ListInput) ([]avisoDomain.Aviso, int64, error) {
	filtros := map[string]any{}
	for _, campo := range camposFiltro {
		v, ok := in.Parametros[campo]
		if !ok {
			continue
		}
		if campo == "rechazado" {
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

// Actualizar is the PATCH dispatcher: aprobar / rechazar plus the
// independent OT linkage fields, all applied in one update.
func (u *Usecase) Actualizar(ctx context.Context, body map[string]any) (*avisoDomain.Aviso, error) {
	idRaw, ok := body["aviso_id"]
	if !ok || idRaw == nil || idRaw == "" {
		return nil, normalize.Invalidf("ID de aviso es requerido")
	}
	id, err := normalize.Entero(idRaw)
	if err != nil || id <= 0 {
		return nil, normalize.Invalidf("ID de aviso es requerido")
	}
	avisoID := uint64(id)

	updates := map[string]any{}

	accion, _ := body["action"].(string)
	switch accion {
	case AccionAprobar:
		// approve fields are applied inside the transactional flow below
	case "":
		// OT-only update, no workflow action
	case AccionRechazar:
		motivo, _ := body["motivo_rechazo"].(string)
		detalle, _ := body["detalle_rechazo"].(string)
		if motivo == "" || detalle == "" {
			return nil, normalize.Invalidf("Motivo y detalle de rechazo son requeridos")
		}
		updates["rechazado"] = true
		updates["motivo_rechazo"] = motivo
		updates["detalle_rechazo"] = detalle
		// unlike the rest of the system this keeps full precision
		updates["fecha_rechazo"] = time.Now()
	default:
		return nil, normalize.Invalidf("Acción no válida: %s", accion)
	}

	if v, ok := body["ot_asociada"]; ok {
		if v == nil || v == "" {
			updates["ot_asociada"] = nil
		} else if s, ok := v.(string); ok {
			updates["ot_asociada"] = s
		} else {
			return nil, normalize.Invalidf("ot_asociada debe ser texto o null")
		}
	}
	if v, ok := body["estado_ot_id"]; ok {
		if v == nil || v == "" {
			updates["estado_ot_id"] = nil
		} else {
			n, err := normalize.Entero(v)
			if err != nil {
				return nil, normalize.Invalidf("estado_ot_id debe ser un número válido o null")
			}
			updates["estado_ot_id"] = n
		}
	}

	if accion == AccionAprobar {
		return u.aprobar(ctx, avisoID, updates)
	}
	if len(updates) == 0 {
		a, err := u.repo.GetByID(ctx, avisoID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, avisoDomain.ErrNoEncontrado
		}
		return a, err
	}
	return u.repo.Update(ctx, avisoID, updates)
}

// aprobar clears the rejection fields and copies the aviso into
// solicitudes_aprobadas. Both steps run in one transaction with the aviso
// row locked, so a concurrent second approval sees ErrYaAprobado instead
// of inserting a duplicate; the unique index on aviso_id backs this up.
func (u *Usecase) aprobar(ctx context.Context, avisoID uint64, updates map[string]any) (*avisoDomain.Aviso, error) {
	var resultado *avisoDomain.Aviso

	err := u.uow.WithinAvisoTx(ctx, avisoID, func(r uow.Repos, a *avisoDomain.Aviso) error {
		_, err := r.Aprobaciones.GetByAvisoID(ctx, a.AvisoID)
		switch {
		case err == nil:
			return avisoDomain.ErrYaAprobado
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		updates["rechazado"] = false
		updates["motivo_rechazo"] = nil
		updates["detalle_rechazo"] = nil
		actualizado, err := r.Avisos.Update(ctx, a.AvisoID, updates)
		if err != nil {
			return err
		}

		copia, err := aprobacionUC.Normalizar(camposCopia(a))
		if err != nil {
			return err
		}
		if _, err := r.Aprobaciones.Create(ctx, copia); err != nil {
			return err
		}
		resultado = actualizado
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, avisoDomain.ErrNoEncontrado
		}
		return nil, err
	}
	return resultado, nil
}

// camposCopia is the fixed field subset an approval duplicates from its
// source aviso into solicitudes_aprobadas.
func camposCopia(a *avisoDomain.Aviso) map[string]any {
	return map[string]any{
		"titulo":                a.Titulo,
		"descripcion":           derefCadena(a.Descripcion),
		"aviso_id":              int64(a.AvisoID),
		"fecha_aviso":           derefFecha(a.FechaAviso),
		"autor_id":              derefEntero(a.AutorID),
		"equipo_padre_id":       derefEntero(a.EquipoPadreID),
		"equipo_hijo_id":        derefEntero(a.EquipoHijoID),
		"urgencia_id":           derefEntero(a.UrgenciaID),
		"ubicacion_id":          derefEntero(a.UbicacionID),
		"equipo_paro":           a.Paro,
		"equipo_paro_fechahora": derefFecha(a.FechaParo),
		"fecha_creacion":        fechas.AhoraLocal(),
	}
}

func derefCadena(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefEntero(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func derefFecha(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}
