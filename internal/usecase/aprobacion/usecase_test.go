package aprobacion

import (
	"context"
	"errors"
	"testing"
	"time"

	aprobacionDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/testutil/aprobacionmock"
)

func cuerpoValido() map[string]any {
	return map[string]any{
		"titulo":          "Fuga de aceite",
		"aviso_id":        float64(5),
		"autor_id":        "3",
		"equipo_padre_id": float64(7),
		"equipo_hijo_id":  float64(12),
	}
}

func TestCrearRequeridos(t *testing.T) {
	uc := NewUsecase(&aprobacionmock.Repo{})

	body := cuerpoValido()
	delete(body, "aviso_id")
	_, err := uc.Crear(context.Background(), body)
	var ve *normalize.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := "Campos requeridos faltantes: título, aviso_id, autor_id, equipo_padre_id, equipo_hijo_id"
	if ve.Message != want {
		t.Errorf("mensaje = %q", ve.Message)
	}
}

func TestCrearDefaults(t *testing.T) {
	var recibidos map[string]any
	repo := &aprobacionmock.Repo{
		CreateFn: func(ctx context.Context, campos map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
			recibidos = campos
			return &aprobacionDomain.SolicitudAprobada{ID: 1}, nil
		},
	}
	uc := NewUsecase(repo)

	if _, err := uc.Crear(context.Background(), cuerpoValido()); err != nil {
		t.Fatalf("Crear: %v", err)
	}
	if recibidos["duracion"] != DuracionPorDefecto {
		t.Errorf("duracion = %v", recibidos["duracion"])
	}
	if recibidos["descripcion_modo"] != "" || recibidos["codigo_clase"] != "" {
		t.Errorf("defaults = %v / %v", recibidos["descripcion_modo"], recibidos["codigo_clase"])
	}
	if _, ok := recibidos["fecha_creacion"].(time.Time); !ok {
		t.Errorf("fecha_creacion = %T, want time.Time", recibidos["fecha_creacion"])
	}
	// attachment and priority stay out of the map when absent
	if _, ok := recibidos["documento_adjunto"]; ok {
		t.Error("documento_adjunto ausente no debería viajar")
	}
	if _, ok := recibidos["prioridad_ejecucion"]; ok {
		t.Error("prioridad_ejecucion ausente no debería viajar")
	}
}

func TestListarFiltros(t *testing.T) {
	var recibido listado.Params
	repo := &aprobacionmock.Repo{
		ListFn: func(ctx context.Context, p listado.Params) ([]aprobacionDomain.SolicitudAprobada, int64, error) {
			recibido = p
			return nil, 0, nil
		},
	}
	uc := NewUsecase(repo)

	_, _, err := uc.Listar(context.Background(), ListInput{
		Parametros: map[string]string{
			"urgencia_id": "4",
			"aviso_id":    "5", // no es filtro permitido
		},
		Search: "aceite",
		Pagina: 3,
		Limite: 20,
	})
	if err != nil {
		t.Fatalf("Listar: %v", err)
	}
	if recibido.Filtros["urgencia_id"] != 4 {
		t.Errorf("urgencia_id = %v", recibido.Filtros["urgencia_id"])
	}
	if _, ok := recibido.Filtros["aviso_id"]; ok {
		t.Error("aviso_id no debería filtrar")
	}
	if recibido.Search != "aceite" || recibido.Pagina != 3 || recibido.Limite != 20 {
		t.Errorf("params = %+v", recibido)
	}
}

func TestActualizar(t *testing.T) {
	uc := NewUsecase(&aprobacionmock.Repo{})

	_, err := uc.Actualizar(context.Background(), cuerpoValido())
	var ve *normalize.ValidationError
	if !errors.As(err, &ve) || ve.Message != "ID de aprobación es requerido" {
		t.Fatalf("err = %v", err)
	}

	var recibidos map[string]any
	repo := &aprobacionmock.Repo{
		UpdateFn: func(ctx context.Context, id uint64, campos map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
			if id != 9 {
				t.Errorf("id = %d", id)
			}
			recibidos = campos
			return &aprobacionDomain.SolicitudAprobada{ID: id}, nil
		},
	}
	uc = NewUsecase(repo)

	body := cuerpoValido()
	body["id"] = "9"
	body["documento_adjunto"] = "acta.pdf"
	if _, err := uc.Actualizar(context.Background(), body); err != nil {
		t.Fatalf("Actualizar: %v", err)
	}
	if recibidos["documento_adjunto"] != "acta.pdf" {
		t.Errorf("documento_adjunto = %v", recibidos["documento_adjunto"])
	}
	// updates re-validate the whole record
	body = cuerpoValido()
	body["id"] = "9"
	delete(body, "titulo")
	_, err = uc.Actualizar(context.Background(), body)
	if !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestActualizarVaciaFKConCadenaVacia(t *testing.T) {
	var recibidos map[string]any
	repo := &aprobacionmock.Repo{
		UpdateFn: func(ctx context.Context, id uint64, campos map[string]any) (*aprobacionDomain.SolicitudAprobada, error) {
			recibidos = campos
			return &aprobacionDomain.SolicitudAprobada{ID: id}, nil
		},
	}
	uc := NewUsecase(repo)

	body := cuerpoValido()
	body["id"] = "9"
	body["urgencia_id"] = ""
	body["impacto_id"] = nil
	if _, err := uc.Actualizar(context.Background(), body); err != nil {
		t.Fatalf("Actualizar: %v", err)
	}
	// "" never reaches the integer column, it must arrive as null
	if v, presente := recibidos["urgencia_id"]; !presente || v != nil {
		t.Errorf("urgencia_id = (%v, %v), want null", v, presente)
	}
	if v, presente := recibidos["impacto_id"]; !presente || v != nil {
		t.Errorf("impacto_id = (%v, %v), want null", v, presente)
	}
}
