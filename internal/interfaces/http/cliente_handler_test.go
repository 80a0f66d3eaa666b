package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/application/usecase"
	"github.com/gardops/gardops-api/internal/domain/entity"
	apphttp "github.com/gardops/gardops-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type clienteRepoStub struct {
	clientes map[string]*entity.Cliente
}

func (s *clienteRepoStub) Create(c *entity.Cliente) error { s.clientes[c.ID] = c; return nil }

func (s *clienteRepoStub) GetByID(id string) (*entity.Cliente, error) {
	return s.clientes[id], nil
}
func (s *clienteRepoStub) GetByRUT(rut string) (*entity.Cliente, error) {
	for _, c := range s.clientes {
		if c.RUT == rut {
			return c, nil
		}
	}
	return nil, nil
}
func (s *clienteRepoStub) List(limit, offset int) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		out = append(out, c)
	}
	return out, nil
}
func (s *clienteRepoStub) Update(c *entity.Cliente) error { s.clientes[c.ID] = c; return nil }

func (s *clienteRepoStub) Delete(id string) error { delete(s.clientes, id); return nil }

type instalacionRepoStub struct {
	porCliente map[string][]*entity.Instalacion
}

func (s *instalacionRepoStub) Create(i *entity.Instalacion) error { return nil }

func (s *instalacionRepoStub) GetByID(id string) (*entity.Instalacion, error) { return nil, nil }

func (s *instalacionRepoStub) ListByCliente(clienteID string) ([]*entity.Instalacion, error) {
	return s.porCliente[clienteID], nil
}

func (s *instalacionRepoStub) List(limit, offset int) ([]*entity.Instalacion, error) {
	return nil, nil
}

func (s *instalacionRepoStub) Update(i *entity.Instalacion) error { return nil }

func (s *instalacionRepoStub) ListComunas(ctx context.Context) ([]string, error) {
	return nil, nil
}

// appConClientes arma una app Fiber con las rutas de clientes (sin auth, que
// se prueba por separado en el middleware).
func appConClientes(clientes *clienteRepoStub, instalaciones *instalacionRepoStub) *fiber.App {
	uc := usecase.NewClienteUseCase(clientes, instalaciones)
	h := apphttp.NewClienteHandler(uc)
	app := fiber.New()
	app.Get("/api/clientes", h.List)
	app.Post("/api/clientes", h.Create)
	app.Put("/api/clientes", h.Update)
	app.Delete("/api/clientes", h.Delete)
	app.Get("/api/clientes/:id", h.GetByID)
	return app
}

func clienteActivo() *entity.Cliente {
	return &entity.Cliente{
		ID:     "cli-1",
		Nombre: "Empresa ABC",
		RUT:    "76123456-7",
		Estado: entity.ClienteActivo,
	}
}

func putJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// La desactivación con instalaciones activas responde 400 con AMBAS
// particiones y las claves exactas del contrato.
func TestClienteHandler_DesactivacionBloqueada(t *testing.T) {
	clientes := &clienteRepoStub{clientes: map[string]*entity.Cliente{"cli-1": clienteActivo()}}
	instalaciones := &instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			{ID: "inst-1", Nombre: "Mall Plaza Norte", Estado: entity.InstalacionActiva},
			{ID: "inst-2", Nombre: "Bodega Quilicura", Estado: entity.InstalacionInactiva},
		},
	}}
	app := appConClientes(clientes, instalaciones)

	estado := entity.ClienteInactivo
	resp := putJSON(t, app, "/api/clientes", map[string]any{"id": "cli-1", "estado": estado})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "instalacionesActivas")
	assert.Contains(t, body, "instalacionesInactivas")
	assert.Contains(t, body, "clienteId")

	var activas []map[string]string
	require.NoError(t, json.Unmarshal(body["instalacionesActivas"], &activas))
	require.Len(t, activas, 1)
	assert.Equal(t, "inst-1", activas[0]["id"])

	var inactivas []map[string]string
	require.NoError(t, json.Unmarshal(body["instalacionesInactivas"], &inactivas))
	require.Len(t, inactivas, 1)
	assert.Equal(t, "inst-2", inactivas[0]["id"])

	// El cliente no debe haber cambiado de estado.
	assert.Equal(t, entity.ClienteActivo, clientes.clientes["cli-1"].Estado)
}

// Sin instalaciones activas la desactivación procede y responde el envoltorio
// {success:true, data}.
func TestClienteHandler_DesactivacionPermitida(t *testing.T) {
	clientes := &clienteRepoStub{clientes: map[string]*entity.Cliente{"cli-1": clienteActivo()}}
	instalaciones := &instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			{ID: "inst-2", Nombre: "Bodega Quilicura", Estado: entity.InstalacionInactiva},
		},
	}}
	app := appConClientes(clientes, instalaciones)

	resp := putJSON(t, app, "/api/clientes", map[string]any{"id": "cli-1", "estado": entity.ClienteInactivo})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Estado string `json:"estado"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, entity.ClienteInactivo, body.Data.Estado)
}

// El update exige el id en el cuerpo, no en la ruta.
func TestClienteHandler_UpdateSinID_Retorna400(t *testing.T) {
	app := appConClientes(
		&clienteRepoStub{clientes: map[string]*entity.Cliente{}},
		&instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{}},
	)

	resp := putJSON(t, app, "/api/clientes", map[string]any{"nombre": "Nuevo Nombre"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClienteHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	app := appConClientes(
		&clienteRepoStub{clientes: map[string]*entity.Cliente{}},
		&instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{}},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

// El delete lleva el id por query param.
func TestClienteHandler_DeleteSinID_Retorna400(t *testing.T) {
	app := appConClientes(
		&clienteRepoStub{clientes: map[string]*entity.Cliente{}},
		&instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{}},
	)

	req := httptest.NewRequest(http.MethodDelete, "/api/clientes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClienteHandler_Delete_Retorna200(t *testing.T) {
	clientes := &clienteRepoStub{clientes: map[string]*entity.Cliente{"cli-1": clienteActivo()}}
	app := appConClientes(clientes, &instalacionRepoStub{porCliente: map[string][]*entity.Instalacion{}})

	req := httptest.NewRequest(http.MethodDelete, "/api/clientes?id=cli-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, clientes.clientes, "cli-1")
}
