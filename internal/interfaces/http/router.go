package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gardops/gardops-api/internal/application/asignacion"
	"github.com/gardops/gardops-api/internal/application/auth"
	"github.com/gardops/gardops-api/internal/application/usecase"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC     *usecase.ClienteUseCase
	InstalacionUC *usecase.InstalacionUseCase
	GuardiaUC     *usecase.GuardiaUseCase
	Asignacion    *asignacion.Servicio
	HistorialRepo repository.HistorialRepository
	DocumentoUC   *usecase.DocumentoUseCase
	PlantillaUC   *usecase.PlantillaUseCase
	PagoExtraUC   *usecase.PagoExtraUseCase
	DashboardUC   *usecase.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes: el update lleva el id en el cuerpo y el delete por query.
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/", clienteHandler.Update)
	clientes.Delete("/", clienteHandler.Delete)
	clientes.Get("/:id", clienteHandler.GetByID)

	// Instalaciones: /comunas va antes de /:id para que no lo capture el path param.
	instalaciones := protected.Group("/instalaciones")
	instalacionHandler := NewInstalacionHandler(deps.InstalacionUC)
	instalaciones.Get("/", instalacionHandler.List)
	instalaciones.Post("/", instalacionHandler.Create)
	instalaciones.Get("/comunas", instalacionHandler.Comunas)
	instalaciones.Get("/:id", instalacionHandler.GetByID)
	instalaciones.Put("/:id", instalacionHandler.Update)
	instalaciones.Delete("/:id", instalacionHandler.Desactivar)

	// Guardias
	guardias := protected.Group("/guardias")
	guardiaHandler := NewGuardiaHandler(deps.GuardiaUC)
	guardias.Get("/", guardiaHandler.List)
	guardias.Post("/", guardiaHandler.Create)
	guardias.Get("/buscar", guardiaHandler.Buscar)
	guardias.Get("/:id", guardiaHandler.GetByID)
	guardias.Put("/:id", guardiaHandler.Update)

	// Puestos por cubrir
	ppc := protected.Group("/ppc")
	ppcHandler := NewPPCHandler(deps.Asignacion, deps.HistorialRepo)
	ppc.Get("/", ppcHandler.List)
	ppc.Get("/resumen", ppcHandler.Resumen)
	ppc.Post("/asignar-simple", ppcHandler.AsignarSimple)
	ppc.Post("/:id/desasignar", ppcHandler.Desasignar)
	ppc.Get("/:id/historial", ppcHandler.Historial)

	// Documentos y catálogo de tipos
	documentoHandler := NewDocumentoHandler(deps.DocumentoUC)
	documentos := protected.Group("/documentos")
	documentos.Get("/", documentoHandler.List)
	documentos.Post("/", documentoHandler.Subir)
	documentos.Get("/:id/descargar", documentoHandler.Descargar)
	documentos.Delete("/:id", documentoHandler.Delete)
	protected.Get("/tipos-documento", documentoHandler.Tipos)

	// Plantillas: /variables va antes de /:id.
	plantillas := protected.Group("/plantillas")
	plantillaHandler := NewPlantillaHandler(deps.PlantillaUC)
	plantillas.Get("/", plantillaHandler.List)
	plantillas.Post("/", plantillaHandler.Create)
	plantillas.Get("/variables", plantillaHandler.Catalogo)
	plantillas.Get("/:id", plantillaHandler.GetByID)
	plantillas.Put("/:id", plantillaHandler.Update)
	plantillas.Delete("/:id", plantillaHandler.Delete)
	plantillas.Post("/:id/render", plantillaHandler.Render)
	plantillas.Post("/:id/render-pdf", plantillaHandler.RenderPDF)

	// Pagos extra: solo RRHH y admin tocan la planilla.
	pagos := protected.Group("/pagos-extra", RequireRole(entity.RoleAdmin, entity.RoleRRHH))
	pagoExtraHandler := NewPagoExtraHandler(deps.PagoExtraUC)
	pagos.Get("/", pagoExtraHandler.List)
	pagos.Post("/", pagoExtraHandler.Create)
	pagos.Put("/:id", pagoExtraHandler.Update)
	pagos.Delete("/:id", pagoExtraHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.KPIs)
}
