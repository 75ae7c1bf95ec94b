package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/aviso"
)

type AvisoHandler struct{ uc *aviso.Usecase }

func NewAvisoHandler(uc *aviso.Usecase) *AvisoHandler { return &AvisoHandler{uc: uc} }

func (h *AvisoHandler) Crear(c echo.Context) error {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo inválido"})
	}
	a, err := h.uc.Crear(c.Request().Context(), body)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": []any{a}})
}

func (h *AvisoHandler) Listar(c echo.Context) error {
	pagina, limite := paginacion(c)
	filas, total, err := h.uc.Listar(c.Request().Context(), aviso.ListInput{
		Parametros: parametrosConsulta(c),
		Search:     c.QueryParam("search"),
		Pagina:     pagina,
		Limite:     limite,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, respuestaListado(filas, total, pagina, limite))
}

// Actualizar binds the body as a raw map: the aprobar/rechazar dispatch and
// the ""-vs-null OT fields need to distinguish absent keys from nulls.
func (h *AvisoHandler) Actualizar(c echo.Context) error {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo inválido"})
	}
	a, err := h.uc.Actualizar(c.Request().Context(), body)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": []any{a}})
}
