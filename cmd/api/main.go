package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	httpadp "github.com/rubenjumbo06/proyecto-mantenimiento/internal/adapter/http"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/adapter/repository/mysql"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/config"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/infrastructure/cache"
	"github.com/rubenjumbo06/proyecto-mantenimiento/internal/infrastructure/db"
	aprobacionUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/aprobacion"
	authUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/auth"
	avisoUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/aviso"
	filtroUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/filtro"
	solicitudUC "github.com/rubenjumbo06/proyecto-mantenimiento/internal/usecase/solicitud"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	avisos := mysql.NewAvisoRepository(gdb)
	aprobaciones := mysql.NewAprobacionRepository(gdb)
	solicitudes := mysql.NewSolicitudRepository(gdb)
	usuarios := mysql.NewUsuarioRepository(gdb)
	catalogo := mysql.NewCatalogoRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	var filtrosCache *redis.Client
	if cfg.RedisAddr != "" {
		r, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		filtrosCache = r
	}

	avisoH := httpadp.NewAvisoHandler(avisoUC.NewUsecase(avisos, uow))
	aprobacionH := httpadp.NewAprobacionHandler(aprobacionUC.NewUsecase(aprobaciones))
	solicitudH := httpadp.NewSolicitudHandler(solicitudUC.NewUsecase(solicitudes, uow))
	filtroH := httpadp.NewFiltroHandler(filtroUC.NewUsecase(
		catalogo, filtrosCache, time.Duration(cfg.FiltrosTTLSecs)*time.Second))
	authH := httpadp.NewAuthHandler(authUC.NewUsecase(usuarios, catalogo))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	// routes
	e.GET("/health", h.Health)

	e.POST("/avisos", avisoH.Crear)
	e.GET("/avisos", avisoH.Listar)
	e.PATCH("/avisos", avisoH.Actualizar)

	e.POST("/aprobaciones", aprobacionH.Crear)
	e.GET("/aprobaciones", aprobacionH.Listar)
	e.PATCH("/aprobaciones", aprobacionH.Actualizar)

	e.POST("/solicitudes", solicitudH.Crear)
	e.GET("/solicitudes", solicitudH.Listar)
	e.PATCH("/solicitudes", solicitudH.Actualizar)

	e.GET("/filtros", filtroH.Listar)
	e.POST("/login", authH.Login)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
