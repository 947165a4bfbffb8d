package router

import (
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/config"
	"github.com/EmSanchezM/posweb-backend/internal/handler"
	"github.com/EmSanchezM/posweb-backend/internal/middleware"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"
	"github.com/EmSanchezM/posweb-backend/internal/service"
	"github.com/EmSanchezM/posweb-backend/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RequestsPerMinPerIP, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	personaRepo := repository.NewPersonaRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	direccionRepo := repository.NewDireccionRepository(db)
	envioRepo := repository.NewEnvioRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := service.NewTokenStore(rdb)
	authSvc := service.NewAuthService(usuarioRepo, personaRepo, empleadoRepo, tokens, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, personaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo, personaRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, personaRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, proveedorRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	areaSvc := service.NewAreaService(areaRepo, empleadoRepo)
	direccionSvc := service.NewDireccionService(direccionRepo, clienteRepo)
	envioSvc := service.NewEnvioService(envioRepo, direccionRepo, clienteRepo)
	ordenSvc := service.NewOrdenService(ordenRepo, personaRepo, clienteRepo, empleadoRepo, productoRepo, direccionRepo, envioRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, ordenRepo, empleadoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	areasH := handler.NewAreasHandler(areaSvc)
	direccionesH := handler.NewDireccionesHandler(direccionSvc)
	enviosH := handler.NewEnviosHandler(envioSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth: login/register/refresh are public, the rest rides the access token.
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(cfg.LoginAttemptsPerMin), authH.Login)
		auth.POST("/register", authH.Register)
		auth.GET("/refresh", authH.Refresh)
		auth.GET("/logout", authH.Logout)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	admin := middleware.RequireRole(model.RolAdmin)
	anyRole := middleware.RequireRole(model.RolAdmin, model.RolUser)

	authed := r.Group("/api/auth", jwtMW)
	{
		authed.GET("/user", anyRole, authH.User)
		authed.PUT("/profile", anyRole, authH.Profile)
	}

	api := r.Group("/api", jwtMW)
	{
		usuarios := api.Group("/users", admin)
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.Obtener)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}

		clientes := api.Group("/customers", anyRole)
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", admin, clientesH.Desactivar)
		}

		proveedores := api.Group("/suppliers", anyRole)
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.Obtener)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", admin, proveedoresH.Desactivar)
		}

		empleados := api.Group("/employees", anyRole)
		{
			empleados.POST("", admin, empleadosH.Crear)
			empleados.GET("", empleadosH.Listar)
			empleados.GET("/:id", empleadosH.Obtener)
			empleados.PUT("/:id", admin, empleadosH.Actualizar)
			empleados.DELETE("/:id", admin, empleadosH.Desactivar)
		}

		productos := api.Group("/products", anyRole)
		{
			productos.POST("", admin, productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.PUT("/:id", admin, productosH.Actualizar)
			productos.DELETE("/:id", admin, productosH.Desactivar)
		}

		categorias := api.Group("/categories", anyRole)
		{
			categorias.POST("", admin, categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.Obtener)
			categorias.PUT("/:id", admin, categoriasH.Actualizar)
			categorias.DELETE("/:id", admin, categoriasH.Desactivar)
		}

		areas := api.Group("/areas", anyRole)
		{
			areas.POST("", admin, areasH.Crear)
			areas.GET("", areasH.Listar)
			areas.GET("/:id", areasH.Obtener)
			areas.PUT("/:id", admin, areasH.Actualizar)
			areas.DELETE("/:id", admin, areasH.Desactivar)
		}

		direcciones := api.Group("/addresses", anyRole)
		{
			direcciones.POST("", direccionesH.Crear)
			direcciones.GET("/customer/:id", direccionesH.ListarPorCliente)
			direcciones.GET("/:id", direccionesH.Obtener)
			direcciones.PUT("/:id", direccionesH.Actualizar)
			direcciones.DELETE("/:id", direccionesH.Desactivar)
		}

		envios := api.Group("/shippings", anyRole)
		{
			envios.POST("", enviosH.Crear)
			envios.GET("", enviosH.Listar)
			envios.GET("/:id", enviosH.Obtener)
			envios.PUT("/:id", enviosH.Actualizar)
			envios.DELETE("/:id", enviosH.Desactivar)
		}

		ordenes := api.Group("/order", anyRole)
		{
			ordenes.POST("", ordenesH.Crear)
			ordenes.GET("", ordenesH.Listar)
			ordenes.GET("/:id", ordenesH.Obtener)
			ordenes.PUT("/:id", ordenesH.Actualizar)
			ordenes.DELETE("/:id", ordenesH.Desactivar)
		}

		detalles := api.Group("/orderdetail", anyRole)
		{
			detalles.POST("", ordenesH.CrearDetalle)
			detalles.GET("", ordenesH.ListarDetalles)
			detalles.GET("/order/:id", ordenesH.ListarDetallesPorOrden)
			detalles.GET("/:id", ordenesH.ObtenerDetalle)
			detalles.PUT("/:id", ordenesH.ActualizarDetalle)
			detalles.DELETE("/:id", ordenesH.DesactivarDetalle)
		}

		facturas := api.Group("/invoices", anyRole)
		{
			facturas.POST("", facturasH.Crear)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/:id", facturasH.Obtener)
			facturas.PUT("/:id", facturasH.Actualizar)
			facturas.DELETE("/:id", admin, facturasH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
