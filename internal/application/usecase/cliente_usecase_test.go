package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/application/usecase"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
)

// ── fakes en memoria ──────────────────────────────────────────────────────────

type clienteRepoFake struct {
	clientes map[string]*entity.Cliente
}

func (r *clienteRepoFake) Create(c *entity.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *clienteRepoFake) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}

func (r *clienteRepoFake) GetByRUT(rut string) (*entity.Cliente, error) {
	for _, c := range r.clientes {
		if c.RUT == rut {
			return c, nil
		}
	}
	return nil, nil
}

func (r *clienteRepoFake) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }

func (r *clienteRepoFake) Update(c *entity.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *clienteRepoFake) Delete(id string) error {
	delete(r.clientes, id)
	return nil
}

// instalacionRepoFake solo implementa ListByCliente de forma útil; lo demás
// no participa en estos tests. Con err no nil toda consulta falla.
type instalacionRepoFake struct {
	porCliente map[string][]*entity.Instalacion
	err        error
}

func (r *instalacionRepoFake) Create(*entity.Instalacion) error { return nil }

func (r *instalacionRepoFake) GetByID(string) (*entity.Instalacion, error) { return nil, nil }

func (r *instalacionRepoFake) ListByCliente(clienteID string) ([]*entity.Instalacion, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.porCliente[clienteID], nil
}

func (r *instalacionRepoFake) List(int, int) ([]*entity.Instalacion, error) { return nil, nil }

func (r *instalacionRepoFake) Update(*entity.Instalacion) error { return nil }

func (r *instalacionRepoFake) ListComunas(ctx context.Context) ([]string, error) { return nil, nil }

// ── armado ────────────────────────────────────────────────────────────────────

func nuevoClienteUC(instalaciones *instalacionRepoFake) (*usecase.ClienteUseCase, *clienteRepoFake) {
	clientes := &clienteRepoFake{clientes: map[string]*entity.Cliente{
		"cli-1": {
			ID:        "cli-1",
			Nombre:    "Empresa ABC",
			RUT:       "76123456-7",
			Estado:    entity.ClienteActivo,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}}
	return usecase.NewClienteUseCase(clientes, instalaciones), clientes
}

func instalacionDe(clienteID, nombre, estado string) *entity.Instalacion {
	return &entity.Instalacion{
		ID:        "inst-" + nombre,
		ClienteID: clienteID,
		Nombre:    nombre,
		Estado:    estado,
	}
}

// ── CanDeactivate ─────────────────────────────────────────────────────────────

// TestCanDeactivate_ParticionaPorEstado verifica que el guard entrega AMBAS
// particiones, no solo el booleano: el caller necesita explicar qué bloquea.
func TestCanDeactivate_ParticionaPorEstado(t *testing.T) {
	instalaciones := &instalacionRepoFake{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			instalacionDe("cli-1", "Mall Norte", entity.InstalacionActiva),
			instalacionDe("cli-1", "Bodega Sur", entity.InstalacionInactiva),
			instalacionDe("cli-1", "Oficina Centro", entity.InstalacionActiva),
		},
	}}
	uc, _ := nuevoClienteUC(instalaciones)

	res, err := uc.CanDeactivate("cli-1")
	require.NoError(t, err)

	assert.False(t, res.Permitido)
	require.Len(t, res.Activas, 2)
	require.Len(t, res.Inactivas, 1)
	assert.Equal(t, "Bodega Sur", res.Inactivas[0].Nombre)
}

func TestCanDeactivate_PermitidoSinActivas(t *testing.T) {
	instalaciones := &instalacionRepoFake{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			instalacionDe("cli-1", "Bodega Sur", entity.InstalacionInactiva),
		},
	}}
	uc, _ := nuevoClienteUC(instalaciones)

	res, err := uc.CanDeactivate("cli-1")
	require.NoError(t, err)

	assert.True(t, res.Permitido)
	assert.Empty(t, res.Activas)
	assert.Len(t, res.Inactivas, 1)
}

func TestCanDeactivate_SinInstalacionesPermitido(t *testing.T) {
	uc, _ := nuevoClienteUC(&instalacionRepoFake{porCliente: map[string][]*entity.Instalacion{}})

	res, err := uc.CanDeactivate("cli-1")
	require.NoError(t, err)
	assert.True(t, res.Permitido)
}

// TestCanDeactivate_FallaCerrado verifica que un error al consultar las
// instalaciones se propaga: la desactivación nunca procede "por si acaso".
func TestCanDeactivate_FallaCerrado(t *testing.T) {
	instalaciones := &instalacionRepoFake{err: errors.New("connection refused")}
	uc, _ := nuevoClienteUC(instalaciones)

	res, err := uc.CanDeactivate("cli-1")
	assert.Error(t, err)
	assert.Nil(t, res)
}

// ── Update con desactivación ──────────────────────────────────────────────────

func TestUpdate_DesactivacionBloqueadaConParticiones(t *testing.T) {
	instalaciones := &instalacionRepoFake{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			instalacionDe("cli-1", "Mall Norte", entity.InstalacionActiva),
			instalacionDe("cli-1", "Bodega Sur", entity.InstalacionInactiva),
		},
	}}
	uc, clientes := nuevoClienteUC(instalaciones)

	inactivo := entity.ClienteInactivo
	_, err := uc.Update(dto.UpdateClienteRequest{ID: "cli-1", Estado: &inactivo})

	var bloqueo *usecase.ErrDesactivacionBloqueada
	require.True(t, errors.As(err, &bloqueo))
	assert.Equal(t, "cli-1", bloqueo.ClienteID)
	assert.Len(t, bloqueo.Activas, 1)
	assert.Len(t, bloqueo.Inactivas, 1)
	assert.Equal(t, entity.ClienteActivo, clientes.clientes["cli-1"].Estado,
		"el cliente no debe cambiar de estado cuando el guard bloquea")
}

func TestUpdate_DesactivacionPermitida(t *testing.T) {
	instalaciones := &instalacionRepoFake{porCliente: map[string][]*entity.Instalacion{
		"cli-1": {
			instalacionDe("cli-1", "Bodega Sur", entity.InstalacionInactiva),
		},
	}}
	uc, clientes := nuevoClienteUC(instalaciones)

	inactivo := entity.ClienteInactivo
	resp, err := uc.Update(dto.UpdateClienteRequest{ID: "cli-1", Estado: &inactivo})
	require.NoError(t, err)

	assert.Equal(t, entity.ClienteInactivo, resp.Estado)
	assert.Equal(t, entity.ClienteInactivo, clientes.clientes["cli-1"].Estado)
}

// TestUpdate_ErrorDeConsultaBloqueaDesactivacion cubre el fail-closed de punta
// a punta: si no se puede saber qué instalaciones hay, no se desactiva.
func TestUpdate_ErrorDeConsultaBloqueaDesactivacion(t *testing.T) {
	instalaciones := &instalacionRepoFake{err: errors.New("timeout")}
	uc, clientes := nuevoClienteUC(instalaciones)

	inactivo := entity.ClienteInactivo
	_, err := uc.Update(dto.UpdateClienteRequest{ID: "cli-1", Estado: &inactivo})

	assert.Error(t, err)
	assert.Equal(t, entity.ClienteActivo, clientes.clientes["cli-1"].Estado)
}

func TestUpdate_SinCambioDeEstadoNoConsultaInstalaciones(t *testing.T) {
	// el repo de instalaciones falla siempre: si el update lo consultara, el
	// test fallaría
	instalaciones := &instalacionRepoFake{err: errors.New("no debe llamarse")}
	uc, _ := nuevoClienteUC(instalaciones)

	nombre := "Empresa ABC Renovada"
	resp, err := uc.Update(dto.UpdateClienteRequest{ID: "cli-1", Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, nombre, resp.Nombre)
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreate_RechazaCamposInvalidos(t *testing.T) {
	uc, _ := nuevoClienteUC(&instalacionRepoFake{})

	_, err := uc.Create(dto.CreateClienteRequest{
		Nombre: "A", // muy corto
		RUT:    "sin-guion",
		Email:  "no-es-email",
	})

	var campos *domain.ErrCamposInvalidos
	require.True(t, errors.As(err, &campos))
	assert.Contains(t, campos.Campos, "nombre")
	assert.Contains(t, campos.Campos, "rut")
	assert.Contains(t, campos.Campos, "email")
}

func TestCreate_RechazaRUTDuplicado(t *testing.T) {
	uc, _ := nuevoClienteUC(&instalacionRepoFake{})

	_, err := uc.Create(dto.CreateClienteRequest{
		Nombre: "Otra Empresa",
		RUT:    "76123456-7", // ya existe en el fake
	})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDelete_NotFound(t *testing.T) {
	uc, _ := nuevoClienteUC(&instalacionRepoFake{})
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
