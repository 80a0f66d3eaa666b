package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gardops/gardops-api/internal/application/dto"
	"github.com/gardops/gardops-api/internal/domain"
	"github.com/gardops/gardops-api/internal/domain/entity"
	"github.com/gardops/gardops-api/internal/domain/plantilla"
	"github.com/gardops/gardops-api/internal/domain/repository"
	"github.com/gardops/gardops-api/pkg/rut"
)

// PlantillaUseCase casos de uso para plantillas de documentos. Las variables
// de una plantilla se re-derivan del cuerpo en cada escritura.
type PlantillaUseCase struct {
	repo            repository.PlantillaRepository
	guardiaRepo     repository.GuardiaRepository
	clienteRepo     repository.ClienteRepository
	instalacionRepo repository.InstalacionRepository
	pdf             GeneradorPDF
}

// NewPlantillaUseCase construye el caso de uso.
func NewPlantillaUseCase(
	repo repository.PlantillaRepository,
	guardiaRepo repository.GuardiaRepository,
	clienteRepo repository.ClienteRepository,
	instalacionRepo repository.InstalacionRepository,
	pdf GeneradorPDF,
) *PlantillaUseCase {
	return &PlantillaUseCase{
		repo:            repo,
		guardiaRepo:     guardiaRepo,
		clienteRepo:     clienteRepo,
		instalacionRepo: instalacionRepo,
		pdf:             pdf,
	}
}

// Create valida y crea una plantilla, derivando sus variables del cuerpo.
func (uc *PlantillaUseCase) Create(in dto.CreatePlantillaRequest) (*dto.PlantillaResponse, error) {
	if in.Nombre == "" {
		return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"nombre": "el nombre es requerido"}}
	}
	now := time.Now()
	p := &entity.Plantilla{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Cuerpo:    in.Cuerpo,
		Variables: plantilla.ExtraerVariables(in.Cuerpo),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPlantillaResponse(p), nil
}

// GetByID obtiene una plantilla por su ID.
func (uc *PlantillaUseCase) GetByID(id string) (*dto.PlantillaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPlantillaResponse(p), nil
}

// List lista plantillas.
func (uc *PlantillaUseCase) List(limit, offset int) ([]dto.PlantillaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlantillaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlantillaResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial. Si cambia el cuerpo, las variables
// se re-derivan en la misma escritura.
func (uc *PlantillaUseCase) Update(id string, in dto.UpdatePlantillaRequest) (*dto.PlantillaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, &domain.ErrCamposInvalidos{Campos: map[string]string{"nombre": "el nombre es requerido"}}
		}
		p.Nombre = *in.Nombre
	}
	if in.Cuerpo != nil {
		p.Cuerpo = *in.Cuerpo
		p.Variables = plantilla.ExtraerVariables(p.Cuerpo)
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPlantillaResponse(p), nil
}

// Delete elimina una plantilla.
func (uc *PlantillaUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Catalogo devuelve el catálogo fijo de variables soportadas.
func (uc *PlantillaUseCase) Catalogo() []dto.VariableCatalogoResponse {
	items := make([]dto.VariableCatalogoResponse, 0, len(entity.CatalogoVariables))
	for _, v := range entity.CatalogoVariables {
		items = append(items, dto.VariableCatalogoResponse{
			Clave:       v.Clave,
			Descripcion: v.Descripcion,
			Categoria:   v.Categoria,
			Ejemplo:     v.Ejemplo,
		})
	}
	return items
}

// Render sustituye las variables de la plantilla con los datos del guardia,
// cliente e instalación indicados. Los tokens sin valor quedan literales en
// la salida y se reportan en SinResolver.
func (uc *PlantillaUseCase) Render(id string, in dto.RenderPlantillaRequest) (*dto.RenderPlantillaResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	valores, err := uc.armarDiccionario(in)
	if err != nil {
		return nil, err
	}
	cuerpo := plantilla.Sustituir(p.Cuerpo, valores)
	var sinResolver []string
	for _, token := range p.Variables {
		if _, ok := valores[token]; !ok {
			sinResolver = append(sinResolver, token)
		}
	}
	return &dto.RenderPlantillaResponse{Nombre: p.Nombre, Cuerpo: cuerpo, SinResolver: sinResolver}, nil
}

// RenderPDF renderiza la plantilla y devuelve el documento como PDF.
func (uc *PlantillaUseCase) RenderPDF(id string, in dto.RenderPlantillaRequest) (string, []byte, error) {
	rendered, err := uc.Render(id, in)
	if err != nil {
		return "", nil, err
	}
	contenido, err := uc.pdf.GenerarDesdeTexto(rendered.Nombre, rendered.Cuerpo)
	if err != nil {
		return "", nil, err
	}
	return rendered.Nombre, contenido, nil
}

// armarDiccionario arma el diccionario plano de sustitución desde las
// entidades referenciadas. Las referencias vacías simplemente no aportan
// claves; las referencias a IDs inexistentes son un error del caller.
func (uc *PlantillaUseCase) armarDiccionario(in dto.RenderPlantillaRequest) (map[string]string, error) {
	valores := map[string]string{
		"fecha_actual": time.Now().Format("02/01/2006"),
	}
	if in.GuardiaID != "" {
		g, err := uc.guardiaRepo.GetByID(in.GuardiaID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, domain.ErrNotFound
		}
		valores["guardia_nombre"] = g.NombreCompleto()
		valores["guardia_rut"] = rut.Formatear(g.RUT)
		valores["guardia_email"] = g.Email
	}
	if in.ClienteID != "" {
		c, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
		valores["cliente_nombre"] = c.Nombre
		valores["cliente_rut"] = rut.Formatear(c.RUT)
		valores["cliente_razon_social"] = c.RazonSocial
	}
	if in.InstalacionID != "" {
		i, err := uc.instalacionRepo.GetByID(in.InstalacionID)
		if err != nil {
			return nil, err
		}
		if i == nil {
			return nil, domain.ErrNotFound
		}
		valores["instalacion_nombre"] = i.Nombre
		valores["instalacion_direccion"] = i.Direccion
		valores["instalacion_comuna"] = i.Comuna
	}
	for k, v := range in.Extras {
		valores[k] = v
	}
	return valores, nil
}

func toPlantillaResponse(p *entity.Plantilla) *dto.PlantillaResponse {
	vars := p.Variables
	if vars == nil {
		vars = []string{}
	}
	return &dto.PlantillaResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Cuerpo:    p.Cuerpo,
		Variables: vars,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
