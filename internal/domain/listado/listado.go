// Package listado holds the shared list-query parameters every resource
// repository accepts: equality filters, free-text search and offset paging.
package listado

const (
	PaginaDefault = 1
	LimiteDefault = 10
)

type Params struct {
	// Filtros maps column name -> exact value. Repositories only ever see
	// whitelisted columns; usecases build this map from query params.
	Filtros map[string]any
	// Search matches titulo/descripcion, case-insensitive substring.
	Search string
	Pagina int
	Limite int
}

// Normalizada applies the 1-based page and default limit rules.
func (p Params) Normalizada() Params {
	if p.Pagina < 1 {
		p.Pagina = PaginaDefault
	}
	if p.Limite < 1 {
		p.Limite = LimiteDefault
	}
	return p
}

func (p Params) Offset() int { return (p.Pagina - 1) * p.Limite }
