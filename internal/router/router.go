package router

import (
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/config"
	"github.com/salva920/AlmacenRepuestos/internal/handler"
	"github.com/salva920/AlmacenRepuestos/internal/infra"
	"github.com/salva920/AlmacenRepuestos/internal/middleware"
	"github.com/salva920/AlmacenRepuestos/internal/repository"
	"github.com/salva920/AlmacenRepuestos/internal/service"

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
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	gastoRepo := repository.NewGastoRepository(db)
	tasaRepo := repository.NewTasaCambioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg, rdb)
	clienteSvc := service.NewClienteService(clienteRepo, ventaRepo)
	productoSvc := service.NewProductoService(productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, clienteRepo)
	cajaSvc := service.NewCajaService(cajaRepo)
	gastoSvc := service.NewGastoService(gastoRepo)
	tasaSvc := service.NewTasaCambioService(tasaRepo, rdb)
	reporteSvc := service.NewReporteService(ventaRepo, productoRepo, cajaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, mailer, cfg)
	cajaH := handler.NewCajaHandler(cajaSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	tasaH := handler.NewTasaCambioHandler(tasaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.POST("/init", authH.Init)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(authSvc)
	api := r.Group("", jwtMW)
	{
		customers := api.Group("/customers")
		{
			customers.POST("", clientesH.Crear)
			customers.GET("", clientesH.Listar)
			customers.GET("/:id", clientesH.ObtenerPorID)
			customers.PUT("/:id", clientesH.Actualizar)
			customers.DELETE("/:id", clientesH.Eliminar)
			customers.GET("/:id/sales", clientesH.Ventas)
		}

		products := api.Group("/products")
		{
			products.POST("", productosH.Crear)
			products.GET("", productosH.Listar)
			products.GET("/:id", productosH.ObtenerPorID)
			products.PUT("/:id", productosH.Actualizar)
			products.DELETE("/:id", productosH.Eliminar)
			products.POST("/:id/ingreso", productosH.IngresarStock)
		}

		sales := api.Group("/sales")
		{
			sales.POST("", ventasH.Crear)
			sales.GET("", ventasH.Listar)
			sales.GET("/:id", ventasH.ObtenerPorID)
			sales.PUT("/:id", ventasH.Actualizar)
			sales.DELETE("/:id", ventasH.Eliminar)
			sales.GET("/:id/factura", ventasH.Factura)
			sales.POST("/:id/enviar-factura", ventasH.EnviarFactura)
		}

		caja := api.Group("/caja")
		{
			caja.POST("", cajaH.Crear)
			caja.GET("", cajaH.Listar)
			caja.DELETE("/:id", cajaH.Eliminar)
		}

		gastos := api.Group("/gastos")
		{
			gastos.POST("", gastosH.Crear)
			gastos.GET("", gastosH.Listar)
			gastos.DELETE("/:id", gastosH.Eliminar)
		}

		api.GET("/tasa-cambio", tasaH.Ultima)
		api.POST("/tasa-cambio", tasaH.Crear)

		reportes := api.Group("/reportes")
		{
			reportes.GET("/ventas-diarias", reportesH.VentasDiarias)
			reportes.GET("/stock-bajo", reportesH.StockBajo)
			reportes.GET("/top-productos", reportesH.TopProductos)
			reportes.GET("/resumen-caja", reportesH.ResumenCaja)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
