package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"

	aprobacionDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	avisoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
	solicitudDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
)

// responderError maps usecase failures onto the API's status contract:
// validation and workflow errors are 400 with the message as-is, database
// errors also surface verbatim with 400, anything unrecognized is 500.
func responderError(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)

	var vErr *normalize.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message})
	}
	var dbErr *gomysql.MySQLError
	switch {
	case errors.Is(err, avisoDomain.ErrYaAprobado),
		errors.Is(err, avisoDomain.ErrNoEncontrado),
		errors.Is(err, aprobacionDomain.ErrNoEncontrada),
		errors.Is(err, solicitudDomain.ErrNoEncontrada):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &dbErr):
		// constraint violations and friends keep the legacy 400 contract
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

// parametrosConsulta flattens echo's query params to first-value form.
func parametrosConsulta(c echo.Context) map[string]string {
	out := map[string]string{}
	for k, vs := range c.QueryParams() {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// paginacion reads page/limit with the API defaults.
func paginacion(c echo.Context) (int, int) {
	pagina := listado.PaginaDefault
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		pagina = v
	}
	limite := listado.LimiteDefault
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limite = v
	}
	return pagina, limite
}

// respuestaListado is the {data,total,page,limit} page envelope.
func respuestaListado[T any](filas []T, total int64, pagina, limite int) map[string]any {
	if filas == nil {
		filas = []T{}
	}
	return map[string]any{
		"data":  filas,
		"total": total,
		"page":  pagina,
		"limit": limite,
	}
}
