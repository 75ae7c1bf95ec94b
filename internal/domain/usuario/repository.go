package usuario

import "context"

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Usuario, error)
}
