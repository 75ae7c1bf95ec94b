package auth

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	catalogoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"
	usuarioDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/usuario"
)

type Usecase struct {
	usuarios usuarioDomain.Repository
	catalogo catalogoDomain.Repository
}

func NewUsecase(usuarios usuarioDomain.Repository, catalogo catalogoDomain.Repository) *Usecase {
	return &Usecase{usuarios: usuarios, catalogo: catalogo}
}

type SesionDTO struct {
	ID      uint64  `json:"id"`
	Nombre  string  `json:"nombre"`
	Email   string  `json:"email"`
	RolID   *int64  `json:"rol_id"`
	NivelID *int64  `json:"nivel_id"`
	Nivel   *string `json:"nivel"`
}

// Login verifies the credentials and returns the session payload. No token
// or cookie is issued here; persisting the identity is the caller's job.
func (u *Usecase) Login(ctx context.Context, email, password string) (*SesionDTO, error) {
	if email == "" || password == "" {
		return nil, usuarioDomain.ErrCredencialesFaltantes
	}

	user, err := u.usuarios.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usuarioDomain.ErrNoEncontrado
		}
		return nil, err
	}

	// an empty stored hash never matches, deliberately
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, usuarioDomain.ErrCredencialesInvalidas
	}

	dto := &SesionDTO{
		ID:      user.UsuarioID,
		Nombre:  user.Nombre,
		Email:   user.Email,
		RolID:   user.RolID,
		NivelID: user.NivelID,
	}
	if user.NivelID != nil {
		nombre, err := u.catalogo.NombreNivel(ctx, *user.NivelID)
		switch {
		case err == nil:
			dto.Nivel = &nombre
		case errors.Is(err, gorm.ErrRecordNotFound):
			// missing level is not a failure, nivel stays null
		default:
			log.Printf("login: nivel %d: %v", *user.NivelID, err)
		}
	}
	return dto, nil
}
