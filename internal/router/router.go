package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mausoftSistemas/sistema-crt/internal/config"
	"github.com/mausoftSistemas/sistema-crt/internal/handler"
	"github.com/mausoftSistemas/sistema-crt/internal/infra"
	"github.com/mausoftSistemas/sistema-crt/internal/middleware"
	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
	"github.com/mausoftSistemas/sistema-crt/internal/service"
	"github.com/mausoftSistemas/sistema-crt/internal/token"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, archivos *infra.FileStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	var cache service.StatsCache
	if rdb != nil {
		cache = infra.NewCache(rdb)
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	establecimientoRepo := repository.NewEstablecimientoRepository(db)
	personaRepo := repository.NewPersonaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	tipoRepo := repository.NewTipoDocumentoRepository(db)
	documentoRepo := repository.NewDocumentoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, tokens)
	empresaSvc := service.NewEmpresaService(empresaRepo)
	establecimientoSvc := service.NewEstablecimientoService(establecimientoRepo, empresaRepo)
	personaSvc := service.NewPersonaService(personaRepo, establecimientoRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	tipoSvc := service.NewTipoDocumentoService(tipoRepo)
	documentoSvc := service.NewDocumentoService(documentoRepo, categoriaRepo, tipoRepo, empresaRepo, establecimientoRepo, archivos, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc)
	establecimientosH := handler.NewEstablecimientosHandler(establecimientoSvc)
	personasH := handler.NewPersonasHandler(personaSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	tiposH := handler.NewTiposDocumentoHandler(tipoSvc)
	documentosH := handler.NewDocumentosHandler(documentoSvc, archivos, cfg.MaxFileSize)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health)

	authMW := middleware.Auth(tokens, usuarioRepo)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.GET("/me", authMW, authH.Me)
	}

	// Everything below requires a resolved user.
	protected := api.Group("", authMW)
	{
		adminRoles := middleware.RequireRole(model.RolAdmin, model.RolTecnicoAdmin)

		empresas := protected.Group("/empresas")
		{
			empresas.GET("", empresasH.Listar)
			empresas.GET("/:id", empresasH.Obtener)
			empresas.POST("", adminRoles, empresasH.Crear)
			empresas.PUT("/:id", adminRoles, empresasH.Actualizar)
			empresas.DELETE("/:id", adminRoles, empresasH.Eliminar)
		}

		establecimientos := protected.Group("/establecimientos")
		{
			establecimientos.GET("/empresa/:empresaId", establecimientosH.ListarPorEmpresa)
			establecimientos.POST("", adminRoles, establecimientosH.Crear)
			establecimientos.PUT("/:id", adminRoles, establecimientosH.Actualizar)
			establecimientos.DELETE("/:id", adminRoles, establecimientosH.Eliminar)
		}

		personas := protected.Group("/personas")
		{
			personas.GET("/establecimiento/:establecimientoId", personasH.ListarPorEstablecimiento)
			personas.POST("", adminRoles, personasH.Crear)
			personas.PUT("/:id", adminRoles, personasH.Actualizar)
			personas.DELETE("/:id", adminRoles, personasH.Eliminar)
		}

		categorias := protected.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.POST("", adminRoles, categoriasH.Crear)
			categorias.PUT("/:id", adminRoles, categoriasH.Actualizar)
			categorias.DELETE("/:id", adminRoles, categoriasH.Eliminar)
		}

		tipos := protected.Group("/tipos-documento")
		{
			tipos.GET("", tiposH.Listar)
			tipos.POST("", adminRoles, tiposH.Crear)
			tipos.PUT("/:id", adminRoles, tiposH.Actualizar)
			tipos.DELETE("/:id", adminRoles, tiposH.Eliminar)
		}

		documentos := protected.Group("/documentos")
		{
			documentos.GET("", documentosH.Listar)
			documentos.POST("", middleware.RequireRole(model.RolAdmin, model.RolTecnico, model.RolTecnicoAdmin), documentosH.Crear)
			documentos.GET("/:id/download", documentosH.Descargar)
			documentos.DELETE("/:id", adminRoles, documentosH.Eliminar)
			documentos.GET("/stats/dashboard", documentosH.Stats)
			documentos.GET("/reportes/vencimientos", documentosH.ReporteVencimientos)
		}

		users := protected.Group("/users", middleware.RequireRole(model.RolAdmin))
		{
			users.GET("", usuariosH.Listar)
			users.PUT("/:id/role", usuariosH.ActualizarRol)
		}
	}

	return r
}
