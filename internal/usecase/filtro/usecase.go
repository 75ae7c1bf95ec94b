package filtro

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	catalogoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
)

const (
	SinNombre = "Sin nombre"
	SinValor  = "Sin valor"
)

// Usecase resolves the reference tables behind GET /filtros into
// {value,label} options. Results are cached in redis when a client is
// wired in; cache failures fall through to the database.
type Usecase struct {
	repo  catalogoDomain.Repository
	cache *redis.Client
	ttl   time.Duration
}

func NewUsecase(r catalogoDomain.Repository, cache *redis.Client, ttl time.Duration) *Usecase {
	return &Usecase{repo: r, cache: cache, ttl: ttl}
}

func (u *Usecase) Opciones(ctx context.Context, tipo string) ([]catalogoDomain.Option, error) {
	if ops, ok := u.desdeCache(ctx, tipo); ok {
		return ops, nil
	}

	var (
		ops []catalogoDomain.Option
		err error
	)
	switch tipo {
	case "ubicaciones":
		ops, err = u.ubicaciones(ctx)
	case "equipos":
		ops, err = u.equipos(ctx)
	case "estados", "estados_ot":
		ops, err = u.estados(ctx)
	case "urgencias":
		ops, err = u.urgencias(ctx)
	case "usuarios":
		ops, err = u.usuarios(ctx)
	default:
		return nil, normalize.Invalidf("Tipo de filtro no válido: %s", tipo)
	}
	if err != nil {
		return nil, err
	}

	u.aCache(ctx, tipo, ops)
	return ops, nil
}

func (u *Usecase) ubicaciones(ctx context.Context) ([]catalogoDomain.Option, error) {
	filas, err := u.repo.Ubicaciones(ctx)
	if err != nil {
		return nil, err
	}
	ops := make([]catalogoDomain.Option, 0, len(filas))
	for _, f := range filas {
		if f.UbicacionID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: strconv.FormatUint(f.UbicacionID, 10),
			Label: oEtiqueta(f.Nombre, SinNombre),
		})
	}
	return ops, nil
}

// equipos flattens the parent and child equipment tables into one list,
// tagging each value so the UI can tell them apart after the union.
func (u *Usecase) equipos(ctx context.Context) ([]catalogoDomain.Option, error) {
	padres, err := u.repo.EquiposPadre(ctx)
	if err != nil {
		return nil, err
	}
	hijos, err := u.repo.EquiposHijo(ctx)
	if err != nil {
		return nil, err
	}
	ops := make([]catalogoDomain.Option, 0, len(padres)+len(hijos))
	for _, f := range padres {
		if f.EquipoPadreID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: "padre-" + strconv.FormatUint(f.EquipoPadreID, 10),
			Label: oEtiqueta(f.Nombre, SinNombre),
		})
	}
	for _, f := range hijos {
		if f.EquipoHijoID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: "hijo-" + strconv.FormatUint(f.EquipoHijoID, 10),
			Label: oEtiqueta(f.Nombre, SinNombre),
		})
	}
	return ops, nil
}

func (u *Usecase) estados(ctx context.Context) ([]catalogoDomain.Option, error) {
	filas, err := u.repo.Estados(ctx)
	if err != nil {
		return nil, err
	}
	ops := make([]catalogoDomain.Option, 0, len(filas))
	for _, f := range filas {
		if f.EstadoID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: strconv.FormatUint(f.EstadoID, 10),
			Label: oEtiqueta(f.Label, SinValor),
		})
	}
	return ops, nil
}

func (u *Usecase) urgencias(ctx context.Context) ([]catalogoDomain.Option, error) {
	filas, err := u.repo.Urgencias(ctx)
	if err != nil {
		return nil, err
	}
	ops := make([]catalogoDomain.Option, 0, len(filas))
	for _, f := range filas {
		if f.UrgenciaID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: strconv.FormatUint(f.UrgenciaID, 10),
			Label: oEtiqueta(f.Label, SinValor),
		})
	}
	return ops, nil
}

func (u *Usecase) usuarios(ctx context.Context) ([]catalogoDomain.Option, error) {
	filas, err := u.repo.Usuarios(ctx)
	if err != nil {
		return nil, err
	}
	ops := make([]catalogoDomain.Option, 0, len(filas))
	for _, f := range filas {
		if f.UsuarioID == 0 {
			continue
		}
		ops = append(ops, catalogoDomain.Option{
			Value: strconv.FormatUint(f.UsuarioID, 10),
			Label: oEtiqueta(f.Nombre, SinNombre),
		})
	}
	return ops, nil
}

func oEtiqueta(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ---- cache ----

func claveCache(tipo string) string { return "filtros:" + tipo }

func (u *Usecase) desdeCache(ctx context.Context, tipo string) ([]catalogoDomain.Option, bool) {
	if u.cache == nil {
		return nil, false
	}
	raw, err := u.cache.Get(ctx, claveCache(tipo)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("filtros: cache get %s: %v", tipo, err)
		}
		return nil, false
	}
	var ops []catalogoDomain.Option
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, false
	}
	return ops, true
}

func (u *Usecase) aCache(ctx context.Context, tipo string, ops []catalogoDomain.Option) {
	if u.cache == nil || u.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(ops)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, claveCache(tipo), raw, u.ttl).Err(); err != nil {
		log.Printf("filtros: cache set %s: %v", tipo, err)
	}
}
