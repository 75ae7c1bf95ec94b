package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/aprobacion"
)

type AprobacionHandler struct{ uc *aprobacion.Usecase }

func NewAprobacionHandler(uc *aprobacion.Usecase) *AprobacionHandler {
	return &AprobacionHandler{uc: uc}
}

func (h *AprobacionHandler) Crear(c echo.Context) error {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo inválido"})
	}
	s, err := h.uc.Crear(c.Request().Context(), body)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"data": []any{s}})
}

func (h *AprobacionHandler) Listar(c echo.Context) error {
	pagina, limite := paginacion(c)
	filas, total, err := h.uc.Listar(c.Request().Context(), aprobacion.ListInput{
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

func (h *AprobacionHandler) Actualizar(c echo.Context) error {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo inválido"})
	}
	s, err := h.uc.Actualizar(c.Request().Context(), body)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": []any{s}})
}
