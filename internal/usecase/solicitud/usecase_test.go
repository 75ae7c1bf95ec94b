package solicitud

import (
	"context"
	"errors"
	"testing"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	solicitudDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/uow"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/testutil/solicitudmock"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/testutil/uowmock"
)

// uowDirecto runs the callback without a real transaction.
func uowDirecto(solicitudes *solicitudmock.Repo) *uowmock.UoW {
	return &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Solicitudes: solicitudes})
		},
	}
}

func TestSiguienteCodigo(t *testing.T) {
	tests := []struct {
		ultimo string
		want   string
	}{
		{"", "SM-00001"},
		{"SM-00001", "SM-00002"},
		{"SM-00041", "SM-00042"},
		{"SM-99999", "SM-100000"},
		{"basura", "SM-00001"},
	}
	for _, tt := range tests {
		if got := siguienteCodigo(tt.ultimo); got != tt.want {
			t.Errorf("siguienteCodigo(%q) = %q, want %q", tt.ultimo, got, tt.want)
		}
	}
}

func TestCrearGeneraCodigo(t *testing.T) {
	var recibidos map[string]any
	repo := &solicitudmock.Repo{
		UltimoCodigoFn: func(ctx context.Context) (string, error) { return "SM-00007", nil },
		CreateFn: func(ctx context.Context, campos map[string]any) (*solicitudDomain.Solicitud, error) {
			recibidos = campos
			return &solicitudDomain.Solicitud{SolicitudID: 8, Codigo: campos["codigo"].(string)}, nil
		},
	}
	uc := NewUsecase(repo, uowDirecto(repo))

	s, err := uc.Crear(context.Background(), map[string]any{"titulo": "Cambio de rodamiento"})
	if err != nil {
		t.Fatalf("Crear: %v", err)
	}
	if s.Codigo != "SM-00008" {
		t.Errorf("codigo = %q, want SM-00008", s.Codigo)
	}
	if recibidos["codigo"] != "SM-00008" {
		t.Errorf("campos codigo = %v", recibidos["codigo"])
	}
	// absent FKs travel as explicit nulls
	if v, ok := recibidos["urgencia_id"]; !ok || v != nil {
		t.Errorf("urgencia_id = %v (presente %v)", v, ok)
	}
}

func TestCrearRespetaCodigoDelCliente(t *testing.T) {
	llamadas := 0
	repo := &solicitudmock.Repo{
		UltimoCodigoFn: func(ctx context.Context) (string, error) {
			llamadas++
			return "", nil
		},
		CreateFn: func(ctx context.Context, campos map[string]any) (*solicitudDomain.Solicitud, error) {
			return &solicitudDomain.Solicitud{SolicitudID: 1, Codigo: campos["codigo"].(string)}, nil
		},
	}
	uc := NewUsecase(repo, uowDirecto(repo))

	s, err := uc.Crear(context.Background(), map[string]any{
		"titulo": "Cambio de rodamiento",
		"codigo": "SM-00500",
	})
	if err != nil {
		t.Fatalf("Crear: %v", err)
	}
	if s.Codigo != "SM-00500" {
		t.Errorf("codigo = %q", s.Codigo)
	}
	if llamadas != 0 {
		t.Errorf("UltimoCodigo llamado %d veces", llamadas)
	}
}

func TestCrearTituloRequerido(t *testing.T) {
	uc := NewUsecase(&solicitudmock.Repo{}, uowDirecto(&solicitudmock.Repo{}))

	_, err := uc.Crear(context.Background(), map[string]any{"descripcion": "sin título"})
	var ve *normalize.ValidationError
	if !errors.As(err, &ve) || ve.Message != "El título es requerido" {
		t.Errorf("err = %v", err)
	}
}

func TestListarFiltros(t *testing.T) {
	var recibido listado.Params
	repo := &solicitudmock.Repo{
		ListFn: func(ctx context.Context, p listado.Params) ([]solicitudDomain.Solicitud, int64, error) {
			recibido = p
			return nil, 0, nil
		},
	}
	uc := NewUsecase(repo, uowDirecto(repo))

	_, _, err := uc.Listar(context.Background(), ListInput{
		Parametros: map[string]string{
			"estado_id":   "2",
			"paro":        "true",
			"urgencia_id": "",
			"autor_id":    "4", // no es filtro permitido
		},
		Pagina: 1,
		Limite: 10,
	})
	if err != nil {
		t.Fatalf("Listar: %v", err)
	}
	if recibido.Filtros["estado_id"] != 2 || recibido.Filtros["paro"] != true {
		t.Errorf("filtros = %v", recibido.Filtros)
	}
	if _, ok := recibido.Filtros["urgencia_id"]; ok {
		t.Error("urgencia_id vacío debería ignorarse")
	}
	if _, ok := recibido.Filtros["autor_id"]; ok {
		t.Error("autor_id no debería filtrar")
	}
}

func TestActualizar(t *testing.T) {
	uc := NewUsecase(&solicitudmock.Repo{}, uowDirecto(&solicitudmock.Repo{}))

	_, err := uc.Actualizar(context.Background(), map[string]any{"titulo": "x"})
	var ve *normalize.ValidationError
	if !errors.As(err, &ve) || ve.Message != "ID de solicitud es requerido" {
		t.Fatalf("err = %v", err)
	}

	var recibidos map[string]any
	repo := &solicitudmock.Repo{
		UpdateFn: func(ctx context.Context, id uint64, campos map[string]any) (*solicitudDomain.Solicitud, error) {
			if id != 4 {
				t.Errorf("id = %d", id)
			}
			recibidos = campos
			return &solicitudDomain.Solicitud{SolicitudID: id}, nil
		},
	}
	uc = NewUsecase(repo, uowDirecto(repo))

	_, err = uc.Actualizar(context.Background(), map[string]any{
		"solicitud_id": "4",
		"titulo":       "Cambio de rodamiento",
		"codigo":       "SM-00099",
	})
	if err != nil {
		t.Fatalf("Actualizar: %v", err)
	}
	if _, ok := recibidos["codigo"]; ok {
		t.Error("codigo no debe actualizarse nunca")
	}
	if recibidos["titulo"] != "Cambio de rodamiento" {
		t.Errorf("titulo = %v", recibidos["titulo"])
	}
}
