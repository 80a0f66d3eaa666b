package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/application/asignacion"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/repository"
	apphttp "github.com/gardops/gardops-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el flujo de asignación vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

type puestoRepoStub struct {
	puestos map[string]*entity.PuestoOperativo
}

func (r *puestoRepoStub) GetByID(id string) (*entity.PuestoOperativo, error) {
	return r.puestos[id], nil
}

func (r *puestoRepoStub) ListPendientes(_ context.Context, _ repository.FiltroPPC) ([]*entity.PuestoOperativo, error) {
	var out []*entity.PuestoOperativo
	for _, p := range r.puestos {
		if p.Estado == entity.PuestoPendiente {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *puestoRepoStub) Asignar(puestoID, guardiaID string, fechaInicio time.Time) error {
	p, ok := r.puestos[puestoID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Estado != entity.PuestoPendiente {
		return domain.ErrPuestoCubierto
	}
	p.Estado = entity.PuestoCubierto
	p.GuardiaID = &guardiaID
	p.FechaInicio = &fechaInicio
	return nil
}

func (r *puestoRepoStub) Desasignar(puestoID string) error {
	p, ok := r.puestos[puestoID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estado = entity.PuestoPendiente
	p.GuardiaID = nil
	p.FechaInicio = nil
	return nil
}

type guardiaRepoStub struct {
	guardias map[string]*entity.Guardia
}

func (r *guardiaRepoStub) Create(*entity.Guardia) error { return nil }

func (r *guardiaRepoStub) GetByID(id string) (*entity.Guardia, error) { return r.guardias[id], nil }

func (r *guardiaRepoStub) GetByRUT(string) (*entity.Guardia, error) { return nil, nil }

func (r *guardiaRepoStub) List(limit, offset int) ([]*entity.Guardia, error) { return nil, nil }

func (r *guardiaRepoStub) Search(context.Context, string, int) ([]*entity.Guardia, error) {
	return nil, nil
}

func (r *guardiaRepoStub) Update(*entity.Guardia) error { return nil }

type historialStub struct {
	filas []*entity.HistorialAsignacion
}

func (h *historialStub) Create(fila *entity.HistorialAsignacion) error {
	h.filas = append(h.filas, fila)
	return nil
}

func (h *historialStub) ListByPuesto(string) ([]*entity.HistorialAsignacion, error) {
	return h.filas, nil
}

type txRunnerStub struct {
	puestos   repository.PuestoRepository
	historial repository.HistorialRepository
}

func (t *txRunnerStub) Run(_ context.Context, fn func(repository.RepositoriosTx) error) error {
	return fn(repository.RepositoriosTx{Puestos: t.puestos, Historial: t.historial})
}

// appConPPC arma una app Fiber con las rutas de PPC sobre fakes: un puesto
// pendiente, un guardia activo y un guardia inactivo.
func appConPPC() (*fiber.App, *puestoRepoStub, *historialStub) {
	puestos := &puestoRepoStub{puestos: map[string]*entity.PuestoOperativo{
		"puesto-1": {
			ID:                "puesto-1",
			InstalacionID:     "inst-1",
			InstalacionNombre: "Mall Plaza Norte",
			Rol:               "Guardia Acceso Principal",
			Horario:           "4x4x12 08:00-20:00",
			Jornada:           entity.JornadaDiurna,
			Estado:            entity.PuestoPendiente,
		},
	}}
	guardias := &guardiaRepoStub{guardias: map[string]*entity.Guardia{
		"guardia-1": {
			ID:              "guardia-1",
			RUT:             "12345678-5",
			Nombre:          "Juan",
			ApellidoPaterno: "Pérez",
			Estado:          entity.GuardiaActivo,
		},
		"guardia-2": {ID: "guardia-2", RUT: "11111111-1", Nombre: "Pedro", Estado: entity.GuardiaInactivo},
	}}
	historial := &historialStub{}
	svc := asignacion.NewServicio(puestos, guardias, &txRunnerStub{puestos: puestos, historial: historial})

	h := apphttp.NewPPCHandler(svc, historial)
	app := fiber.New()
	app.Get("/api/ppc", h.List)
	app.Post("/api/ppc/asignar-simple", h.AsignarSimple)
	app.Post("/api/ppc/:id/desasignar", h.Desasignar)
	app.Get("/api/ppc/:id/historial", h.Historial)
	return app, puestos, historial
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz completo por HTTP: confirmación con los datos del candidato y
// del contexto, más el resumen recalculado (ya sin el puesto cubierto).
func TestPPCHandler_AsignarSimple_CaminoFeliz(t *testing.T) {
	app, puestos, historial := appConPPC()

	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	resp := postJSON(t, app, "/api/ppc/asignar-simple", map[string]any{
		"guardia_id":          "guardia-1",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        manana,
		"observaciones":       "cobertura de vacante",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Confirmacion struct {
				GuardiaNombre     string `json:"guardia_nombre"`
				GuardiaRUT        string `json:"guardia_rut"`
				InstalacionNombre string `json:"instalacion_nombre"`
				FechaInicio       string `json:"fecha_inicio"`
			} `json:"confirmacion"`
			Resumen struct {
				TotalPendientes int `json:"total_pendientes"`
			} `json:"resumen"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Juan Pérez", body.Data.Confirmacion.GuardiaNombre)
	assert.Equal(t, "12345678-5", body.Data.Confirmacion.GuardiaRUT)
	assert.Equal(t, "Mall Plaza Norte", body.Data.Confirmacion.InstalacionNombre)
	assert.Equal(t, manana, body.Data.Confirmacion.FechaInicio)
	assert.Equal(t, 0, body.Data.Resumen.TotalPendientes,
		"el resumen debe recalcularse sobre la lista ya refrescada")

	assert.Equal(t, entity.PuestoCubierto, puestos.puestos["puesto-1"].Estado)
	require.Len(t, historial.filas, 1)
	assert.Equal(t, "asignacion_ppc", historial.filas[0].Motivo)
}

// Segunda asignación sobre el mismo puesto → 400 (ya cubierto).
func TestPPCHandler_AsignarSimple_PuestoCubierto_Retorna400(t *testing.T) {
	app, _, _ := appConPPC()

	manana := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	peticion := map[string]any{
		"guardia_id":          "guardia-1",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        manana,
	}
	resp := postJSON(t, app, "/api/ppc/asignar-simple", peticion)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/ppc/asignar-simple", peticion)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Guardia inactivo → 400 antes de tocar el puesto.
func TestPPCHandler_AsignarSimple_GuardiaInactivo_Retorna400(t *testing.T) {
	app, puestos, _ := appConPPC()

	resp := postJSON(t, app, "/api/ppc/asignar-simple", map[string]any{
		"guardia_id":          "guardia-2",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, entity.PuestoPendiente, puestos.puestos["puesto-1"].Estado)
}

// Fecha en el pasado → 400 con detalle por campo.
func TestPPCHandler_AsignarSimple_FechaPasada_Retorna400(t *testing.T) {
	app, _, _ := appConPPC()

	resp := postJSON(t, app, "/api/ppc/asignar-simple", map[string]any{
		"guardia_id":          "guardia-1",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        "2020-01-01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Desasignar vuelve el puesto a pendiente y deja rastro en el historial.
func TestPPCHandler_Desasignar(t *testing.T) {
	app, puestos, historial := appConPPC()

	resp := postJSON(t, app, "/api/ppc/asignar-simple", map[string]any{
		"guardia_id":          "guardia-1",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/ppc/puesto-1/desasignar", map[string]any{
		"observaciones": "renuncia del guardia",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.PuestoPendiente, puestos.puestos["puesto-1"].Estado)
	require.Len(t, historial.filas, 2)
	assert.Equal(t, "desasignacion_manual", historial.filas[1].Motivo)
}

// El historial se expone por HTTP con el movimiento registrado.
func TestPPCHandler_Historial(t *testing.T) {
	app, _, _ := appConPPC()

	resp := postJSON(t, app, "/api/ppc/asignar-simple", map[string]any{
		"guardia_id":          "guardia-1",
		"puesto_operativo_id": "puesto-1",
		"fecha_inicio":        time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/ppc/puesto-1/historial", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			Motivo    string `json:"motivo"`
			GuardiaID string `json:"guardia_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "asignacion_ppc", body.Data[0].Motivo)
	assert.Equal(t, "guardia-1", body.Data[0].GuardiaID)
}
