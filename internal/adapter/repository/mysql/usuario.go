package mysql

import (
	"context"

	"gorm.io/gorm"

	usuarioDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/usuario"
)

type UsuarioRepository struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository { return &UsuarioRepository{db: db} }

func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*usuarioDomain.Usuario, error) {
	var out usuarioDomain.Usuario
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}
