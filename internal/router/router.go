package router

import (
	"time"

	"catalogo/internal/config"
	"catalogo/internal/handler"
	"catalogo/internal/middleware"
	"catalogo/internal/repository"
	"catalogo/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute)) // 200 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	atributoRepo := repository.NewAtributoRepository(db)
	valorRepo := repository.NewAtributoValorRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	subcategoriaRepo := repository.NewSubcategoriaRepository(db)
	catAtribRepo := repository.NewCategoriaAtributoRepository(db)
	productoRepo := repository.NewProductoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	atributoSvc := service.NewAtributoService(atributoRepo)
	valorSvc := service.NewAtributoValorService(valorRepo, atributoRepo)
	marcaSvc := service.NewMarcaService(marcaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	subcategoriaSvc := service.NewSubcategoriaService(subcategoriaRepo, categoriaRepo)
	catAtribSvc := service.NewCategoriaAtributoService(catAtribRepo, categoriaRepo, atributoRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, marcaRepo, rdb)
	exportSvc := service.NewProductoExportService(productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	atributosH := handler.NewAtributosHandler(atributoSvc, cfg)
	valoresH := handler.NewAtributoValoresHandler(valorSvc, cfg)
	marcasH := handler.NewMarcasHandler(marcaSvc, cfg)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc, catAtribSvc, cfg)
	subcategoriasH := handler.NewSubcategoriasHandler(subcategoriaSvc, cfg)
	catAtribH := handler.NewCategoriaAtributosHandler(catAtribSvc, cfg)
	productosH := handler.NewProductosHandler(productoSvc, exportSvc, cfg)
	publicoH := handler.NewCatalogoPublicoHandler(productoRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Storefront lookup — no auth required
	r.GET("/v1/public/productos/:slug", publicoH.ObtenerPorSlug)
	// View counter is fed by the storefront, also unauthenticated
	r.POST("/v1/public/productos/:id/vistas", productosH.RegistrarVista)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	lectura := middleware.RequireRole(middleware.RolLector, middleware.RolEditor, middleware.RolAdministrador)
	escritura := middleware.RequireRole(middleware.RolEditor, middleware.RolAdministrador)

	v1 := r.Group("/v1", jwtMW)
	{
		// Atributos
		v1.GET("/atributos", lectura, atributosH.Listar)
		v1.GET("/atributos/:id", lectura, atributosH.ObtenerPorID)
		atributos := v1.Group("/atributos", escritura)
		{
			atributos.POST("", atributosH.Crear)
			atributos.PUT("/:id", atributosH.Actualizar)
			atributos.PATCH("/:id", atributosH.Actualizar)
			atributos.DELETE("/:id", atributosH.Eliminar)
			atributos.POST("/:id/restaurar", atributosH.Restaurar)
		}

		// Valores de atributo
		v1.GET("/atributo-valores", lectura, valoresH.Listar)
		v1.GET("/atributo-valores/:id", lectura, valoresH.ObtenerPorID)
		valores := v1.Group("/atributo-valores", escritura)
		{
			valores.POST("", valoresH.Crear)
			valores.PUT("/:id", valoresH.Actualizar)
			valores.PATCH("/:id", valoresH.Actualizar)
			valores.DELETE("/:id", valoresH.Eliminar)
			valores.POST("/:id/restaurar", valoresH.Restaurar)
		}

		// Marcas
		v1.GET("/marcas", lectura, marcasH.Listar)
		v1.GET("/marcas/:id", lectura, marcasH.ObtenerPorID)
		marcas := v1.Group("/marcas", escritura)
		{
			marcas.POST("", marcasH.Crear)
			marcas.PUT("/:id", marcasH.Actualizar)
			marcas.PATCH("/:id", marcasH.Actualizar)
			marcas.DELETE("/:id", marcasH.Eliminar)
			marcas.POST("/:id/restaurar", marcasH.Restaurar)
		}

		// Categorías
		v1.GET("/categorias", lectura, categoriasH.Listar)
		v1.GET("/categorias/:id", lectura, categoriasH.ObtenerPorID)
		v1.GET("/categorias/:id/atributos", lectura, categoriasH.ListarAtributos)
		categorias := v1.Group("/categorias", escritura)
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.PATCH("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Eliminar)
			categorias.POST("/:id/restaurar", categoriasH.Restaurar)
		}

		// Subcategorías
		v1.GET("/subcategorias", lectura, subcategoriasH.Listar)
		v1.GET("/subcategorias/:id", lectura, subcategoriasH.ObtenerPorID)
		subcategorias := v1.Group("/subcategorias", escritura)
		{
			subcategorias.POST("", subcategoriasH.Crear)
			subcategorias.PUT("/:id", subcategoriasH.Actualizar)
			subcategorias.PATCH("/:id", subcategoriasH.Actualizar)
			subcategorias.DELETE("/:id", subcategoriasH.Eliminar)
			subcategorias.POST("/:id/restaurar", subcategoriasH.Restaurar)
		}

		// Asociaciones categoría-atributo
		v1.GET("/categoria-atributos", lectura, catAtribH.Listar)
		v1.GET("/categoria-atributos/:id", lectura, catAtribH.ObtenerPorID)
		catAtribs := v1.Group("/categoria-atributos", escritura)
		{
			catAtribs.POST("", catAtribH.Crear)
			catAtribs.PUT("/:id", catAtribH.Actualizar)
			catAtribs.PATCH("/:id", catAtribH.Actualizar)
			catAtribs.DELETE("/:id", catAtribH.Eliminar)
		}

		// Productos
		v1.GET("/productos", lectura, productosH.Listar)
		v1.GET("/productos/export", lectura, productosH.Exportar)
		v1.GET("/productos/:id", lectura, productosH.ObtenerPorID)
		productos := v1.Group("/productos", escritura)
		{
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.PATCH("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
			productos.POST("/:id/restaurar", productosH.Restaurar)
			productos.PATCH("/:id/stock", productosH.AjustarStock)
			productos.POST("/:id/publicar", productosH.Publicar)
		}

		// Usuarios — administración exclusiva
		usuarios := v1.Group("/usuarios", middleware.RequireRole(middleware.RolAdministrador))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.POST("/:id/reactivar", usuariosH.Reactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
