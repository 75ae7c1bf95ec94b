package mysql

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/listado"
)

// listarPagina runs the shared list shape: equality filters + optional
// case-insensitive search over titulo/descripcion, a count query with the
// same predicate, and an offset-paged data query ordered by orden. The two
// queries are independent round trips, so total can drift from the page
// under concurrent writes; the original API behaved the same way.
func listarPagina[T any](ctx context.Context, db *gorm.DB, p listado.Params, orden string) ([]T, int64, error) {
	p = p.Normalizada()

	var modelo T
	base := func() *gorm.DB {
		q := db.WithContext(ctx).Model(&modelo)
		for col, v := range p.Filtros {
			q = q.Where(col+" = ?", v)
		}
		if p.Search != "" {
			s := "%" + strings.ToLower(p.Search) + "%"
			q = q.Where("LOWER(titulo) LIKE ? OR LOWER(descripcion) LIKE ?", s, s)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var filas []T
	err := base().Order(orden).Offset(p.Offset()).Limit(p.Limite).Find(&filas).Error
	if err != nil {
		return nil, 0, err
	}
	return filas, total, nil
}

// ---- column-map coercion helpers ----
//
// The normalize package hands repositories map[string]any with nil, string,
// bool, int64 and time.Time values; these adapt them onto entity fields.

func cadena(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func cadenaPtr(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func enteroPtr(v any) *int64 {
	switch n := v.(type) {
	case int64:
		return &n
	case int:
		x := int64(n)
		return &x
	case float64:
		x := int64(n)
		return &x
	}
	return nil
}

func entero(v any) int64 {
	if p := enteroPtr(v); p != nil {
		return *p
	}
	return 0
}

func booleano(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

func fechaPtr(v any) *time.Time {
	if t, ok := v.(time.Time); ok {
		return &t
	}
	return nil
}
