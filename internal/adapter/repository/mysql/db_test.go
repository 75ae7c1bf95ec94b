package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	aprobacionDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aprobacion"
	avisoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/aviso"
	catalogoDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/catalogo"
	solicitudDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/solicitud"
	usuarioDomain "github.com/rubenjumbo06/proyecto-mantenimiento/internal/domain/usuario"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The
// entities carry no MySQL-only column types, so the domain models migrate
// as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&avisoDomain.Aviso{},
		&aprobacionDomain.SolicitudAprobada{},
		&solicitudDomain.Solicitud{},
		&usuarioDomain.Usuario{},
		&catalogoDomain.Ubicacion{},
		&catalogoDomain.EquipoPadre{},
		&catalogoDomain.EquipoHijo{},
		&catalogoDomain.Estado{},
		&catalogoDomain.Urgencia{},
		&catalogoDomain.NivelAcceso{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
