// Package normalize turns raw JSON request bodies (map[string]any) into
// clean column maps ready for the repositories. Each resource declares one
// Schema; the rules themselves (required check, id coercion, date parsing,
// defaulting, allow-listing) are shared.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rubenjumbo06/proyecto-mantenimiento/pkg/fechas"
)

// ValidationError carries the client-facing message for a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Schema declares a resource's normalization rules.
type Schema struct {
	// Requeridos are checked jointly: if any is missing/falsy the error
	// message cites MensajeRequeridos (the full list, not the first
	// offender), matching the API contract clients already parse.
	Requeridos        []string
	MensajeRequeridos string

	// CamposID are foreign-key columns: numbers and numeric strings are
	// coerced to int64, ""/null/absent become null, anything else fails.
	CamposID []string
	// IDNulosExplicitos writes null for absent id columns instead of
	// omitting them (the avisos insert always materializes its FKs).
	IDNulosExplicitos bool

	// CamposFecha are parsed with pkg/fechas; "" becomes null. The field
	// named by FechaDefault gets "now" (local, whole seconds) when absent.
	CamposFecha  []string
	FechaDefault string

	// CamposBool are coerced truthy-style (the UI sends "", null, bools
	// and the odd string interchangeably).
	CamposBool []string

	// Defaults fill absent optional fields. OmitirSiAusente columns are
	// never written unless the client sent them, so a partial update
	// cannot null out an existing value.
	Defaults        map[string]any
	OmitirSiAusente []string

	// Permitidos is the column allow-list; everything else is dropped.
	Permitidos []string
}

// Normalize validates and coerces body into a column map. The input map is
// not modified.
func (s Schema) Normalize(body map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(body))
	for k, v := range body {
		out[k] = v
	}

	for _, f := range s.Requeridos {
		if esFalsy(out[f]) {
			return nil, &ValidationError{Message: s.MensajeRequeridos}
		}
	}

	for _, f := range s.CamposBool {
		v, ok := out[f]
		if !ok {
			continue
		}
		out[f] = Truthy(v)
	}

	for _, f := range s.CamposID {
		v, ok := out[f]
		if !ok {
			// absent FKs only materialize when the schema asks for it
			if s.IDNulosExplicitos {
				out[f] = nil
			}
			continue
		}
		if v == nil || v == "" {
			out[f] = nil
			continue
		}
		n, err := Entero(v)
		if err != nil {
			return nil, Invalidf("Campo %s debe ser un número válido", f)
		}
		out[f] = n
	}

	for _, f := range s.CamposFecha {
		v, ok := out[f]
		if (!ok || v == nil || v == "") && f == s.FechaDefault {
			out[f] = fechas.AhoraLocal()
			continue
		}
		if !ok {
			continue
		}
		switch t := v.(type) {
		case nil:
			out[f] = nil
		case time.Time:
			out[f] = t
		case string:
			if t == "" {
				out[f] = nil
				continue
			}
			parsed, err := fechas.Parse(t)
			if err != nil {
				return nil, Invalidf("Campo %s debe ser una fecha válida", f)
			}
			out[f] = parsed
		default:
			return nil, Invalidf("Campo %s debe ser una fecha válida", f)
		}
	}

	for f, d := range s.Defaults {
		if v, ok := out[f]; !ok || v == nil {
			out[f] = d
		}
	}

	filtrado := make(map[string]any, len(s.Permitidos))
	for _, f := range s.Permitidos {
		if v, ok := out[f]; ok {
			if contiene(s.OmitirSiAusente, f) && v == nil {
				continue
			}
			filtrado[f] = v
		}
	}
	return filtrado, nil
}

// Entero accepts JSON numbers and numeric strings.
func Entero(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, err
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("tipo no numérico %T", v)
	}
}

// esFalsy mirrors the loose check the original API applied to required
// fields: missing, null, empty string, false and zero all count.
func esFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case int64:
		return t == 0
	default:
		return false
	}
}

// Truthy mirrors JavaScript's !! coercion for the loosely typed booleans
// the UI sends.
func Truthy(v any) bool { return !esFalsy(v) }

func contiene(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
