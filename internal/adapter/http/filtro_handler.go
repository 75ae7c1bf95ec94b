package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	catalogoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/normalize"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/filtro"
)

type FiltroHandler struct{ uc *filtro.Usecase }

func NewFiltroHandler(uc *filtro.Usecase) *FiltroHandler { return &FiltroHandler{uc: uc} }

func (h *FiltroHandler) Listar(c echo.Context) error {
	tipo := c.QueryParam("type")
	if tipo == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: `El parámetro "type" es requerido`})
	}
	ops, err := h.uc.Opciones(c.Request().Context(), tipo)
	if err != nil {
		var vErr *normalize.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message})
		}
		log.Printf("GET /filtros type=%s: %v", tipo, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	if ops == nil {
		ops = []catalogoDomain.Option{}
	}
	return c.JSON(http.StatusOK, ops)
}
