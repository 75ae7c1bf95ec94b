package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	usuarioDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/usuario"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/auth"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   usuarioDomain.ErrCredencialesFaltantes.Error(),
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usuarioDomain.ErrCredencialesFaltantes):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, usuarioDomain.ErrNoEncontrado),
			errors.Is(err, usuarioDomain.ErrCredencialesInvalidas):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		default:
			log.Printf("POST /login: %v", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
