package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func camposAprobacion(avisoID int64) map[string]any {
	return map[string]any{
		"titulo":          "Fuga de aceite",
		"aviso_id":        avisoID,
		"autor_id":        int64(1),
		"equipo_padre_id": int64(5),
		"equipo_hijo_id":  int64(12),
		"fecha_aviso":     time.Now(),
		"duracion":        "Por definir",
		"fecha_creacion":  time.Now(),
	}
}

func TestAprobacionCreateAndGetByAvisoID(t *testing.T) {
	db := openTestDB(t)
	repo := NewAprobacionRepository(db)
	ctx := context.Background()

	s, err := repo.Create(ctx, camposAprobacion(77))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByAvisoID(ctx, 77)
	if err != nil {
		t.Fatalf("GetByAvisoID: %v", err)
	}
	if got.AvisoID != 77 || got.Titulo != "Fuga de aceite" {
		t.Errorf("unexpected row: %+v", got)
	}

	_, err = repo.GetByAvisoID(ctx, 78)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestAprobacionUnicaPorAviso(t *testing.T) {
	db := openTestDB(t)
	repo := NewAprobacionRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, camposAprobacion(77)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// the unique index on aviso_id is the backstop for concurrent approvals
	if _, err := repo.Create(ctx, camposAprobacion(77)); err == nil {
		t.Error("second aprobación for the same aviso should fail")
	}
}

func TestAprobacionUpdateNoPisaAusentes(t *testing.T) {
	db := openTestDB(t)
	repo := NewAprobacionRepository(db)
	ctx := context.Background()

	campos := camposAprobacion(80)
	campos["documento_adjunto"] = "plano.pdf"
	s, err := repo.Create(ctx, campos)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Update(ctx, s.ID, map[string]any{"duracion": "4h"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Duracion == nil || *got.Duracion != "4h" {
		t.Errorf("duracion = %v, want 4h", got.Duracion)
	}
	if got.DocumentoAdjunto == nil || *got.DocumentoAdjunto != "plano.pdf" {
		t.Errorf("documento_adjunto lost on partial update: %v", got.DocumentoAdjunto)
	}
}
