package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/solicitud"
)

type SolicitudHandler struct{ uc *solicitud.Usecase }

func NewSolicitudHandler(uc *solicitud.Usecase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

func (h *SolicitudHandler) Crear(c echo.Context) error {
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

func (h *SolicitudHandler) Listar(c echo.Context) error {
	pagina, limite := paginacion(c)
	filas, total, err := h.uc.Listar(c.Request().Context(), solicitud.ListInput{
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

func (h *SolicitudHandler) Actualizar(c echo.Context) error {
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
