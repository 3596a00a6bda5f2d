// Package catalog contiene los casos de uso del catálogo de servicios:
// categorías, servicios, características, precios con fecha efectiva y campañas.
package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	domaincatalog "github.com/jhoicas/Gestion-api/internal/domain/catalog"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// CatalogUseCase casos de uso del catálogo.
type CatalogUseCase struct {
	categoryRepo    repository.ServiceCategoryRepository
	serviceRepo     repository.ServiceRepository
	priceRepo       repository.PriceRepository
	campaignRepo    repository.CampaignRepository
	defaultCurrency string
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.ServiceCategoryRepository,
	serviceRepo repository.ServiceRepository,
	priceRepo repository.PriceRepository,
	campaignRepo repository.CampaignRepository,
	defaultCurrency string,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo:    categoryRepo,
		serviceRepo:     serviceRepo,
		priceRepo:       priceRepo,
		campaignRepo:    campaignRepo,
		defaultCurrency: defaultCurrency,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory crea una categoría de servicio.
func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.ServiceCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}, nil
}

// ListCategories lista categorías.
func (uc *CatalogUseCase) ListCategories(page dto.PageRequest) ([]*dto.CategoryResponse, error) {
	page.Normalize()
	list, err := uc.categoryRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

// DeleteCategory elimina una categoría.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// ── Servicios ─────────────────────────────────────────────────────────────────

// CreateService crea un servicio del catálogo.
func (uc *CatalogUseCase) CreateService(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return uc.toServiceResponse(service, false)
}

// GetService obtiene un servicio con características y precio vigente.
func (uc *CatalogUseCase) GetService(id string) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toServiceResponse(service, true)
}

// ListServices lista servicios, opcionalmente por categoría.
func (uc *CatalogUseCase) ListServices(categoryID string, page dto.PageRequest) ([]*dto.ServiceResponse, error) {
	page.Normalize()
	list, err := uc.serviceRepo.List(categoryID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		resp, err := uc.toServiceResponse(s, false)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// UpdateService actualiza un servicio.
func (uc *CatalogUseCase) UpdateService(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		service.CategoryID = in.CategoryID
	}
	if in.Name != "" {
		service.Name = in.Name
	}
	if in.Description != "" {
		service.Description = in.Description
	}
	if in.Active != nil {
		service.Active = *in.Active
	}
	service.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return uc.toServiceResponse(service, true)
}

// DeleteService elimina un servicio.
func (uc *CatalogUseCase) DeleteService(id string) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(id)
}

// AddFeature agrega una característica a un servicio.
func (uc *CatalogUseCase) AddFeature(serviceID string, in dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	feature := &entity.ServiceFeature{
		ID:        uuid.New().String(),
		ServiceID: serviceID,
		Name:      in.Name,
		Detail:    in.Detail,
	}
	if err := uc.serviceRepo.CreateFeature(feature); err != nil {
		return nil, err
	}
	return &dto.FeatureResponse{ID: feature.ID, Name: feature.Name, Detail: feature.Detail}, nil
}

// ── Precios ───────────────────────────────────────────────────────────────────

// RemoveFeature elimina una característica de un servicio.
func (uc *CatalogUseCase) RemoveFeature(serviceID, featureID string) error {
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.DeleteFeature(featureID)
}

// AddPrice registra un precio con fecha efectiva para un servicio.
// Se permiten varios precios por servicio/moneda con fechas distintas.
func (uc *CatalogUseCase) AddPrice(serviceID string, in dto.CreatePriceRequest) (*dto.PriceResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	effective := time.Now()
	if in.EffectiveDate != "" {
		parsed, err := time.Parse(dateLayout, in.EffectiveDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		effective = parsed
	}
	currency := in.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}
	price := &entity.Price{
		ID:            uuid.New().String(),
		ServiceID:     serviceID,
		Amount:        in.Amount,
		Currency:      currency,
		EffectiveDate: effective,
		CreatedAt:     time.Now(),
	}
	if err := uc.priceRepo.Create(price); err != nil {
		return nil, err
	}
	return toPriceResponse(price), nil
}

// GetCurrentPrice resuelve el precio vigente de un servicio para una moneda.
// Devuelve ErrNoPrice cuando el servicio no tiene ningún precio registrado.
func (uc *CatalogUseCase) GetCurrentPrice(serviceID, currency string) (*dto.PriceResponse, error) {
	if currency == "" {
		currency = uc.defaultCurrency
	}
	candidates, err := uc.priceRepo.ListByService(serviceID)
	if err != nil {
		return nil, err
	}
	current := domaincatalog.ResolveCurrentPrice(candidates, currency, time.Now())
	if current == nil {
		return nil, domain.ErrNoPrice
	}
	return toPriceResponse(current), nil
}

// ListPrices lista el histórico de precios de un servicio.
func (uc *CatalogUseCase) ListPrices(serviceID string) ([]*dto.PriceResponse, error) {
	list, err := uc.priceRepo.ListByService(serviceID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PriceResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPriceResponse(p))
	}
	return out, nil
}

// ── Campañas ──────────────────────────────────────────────────────────────────

// CreateCampaign crea una campaña y vincula servicios.
func (uc *CatalogUseCase) CreateCampaign(in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Name == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountRate.IsNegative() || in.DiscountRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	campaign := &entity.Campaign{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		DiscountRate: in.DiscountRate,
		StartDate:    start,
		EndDate:      end,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	for _, serviceID := range in.ServiceIDs {
		service, err := uc.serviceRepo.GetByID(serviceID)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, domain.ErrNotFound
		}
		link := &entity.CampaignService{
			ID:         uuid.New().String(),
			CampaignID: campaign.ID,
			ServiceID:  serviceID,
		}
		if err := uc.campaignRepo.AddService(link); err != nil {
			return nil, err
		}
	}
	return uc.toCampaignResponse(campaign)
}

// GetCampaign obtiene una campaña con sus servicios.
func (uc *CatalogUseCase) GetCampaign(id string) (*dto.CampaignResponse, error) {
	campaign, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toCampaignResponse(campaign)
}

// ListCampaigns lista campañas.
func (uc *CatalogUseCase) ListCampaigns(page dto.PageRequest) ([]*dto.CampaignResponse, error) {
	page.Normalize()
	list, err := uc.campaignRepo.List(page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		resp, err := uc.toCampaignResponse(c)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// AddCampaignService vincula un servicio a una campaña existente.
func (uc *CatalogUseCase) AddCampaignService(campaignID, serviceID string) (*dto.CampaignResponse, error) {
	campaign, err := uc.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	service, err := uc.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	links, err := uc.campaignRepo.ListServices(campaignID)
	if err != nil {
		return nil, err
	}
	for _, link := range links {
		if link.ServiceID == serviceID {
			return nil, domain.ErrDuplicate
		}
	}
	err = uc.campaignRepo.AddService(&entity.CampaignService{
		ID:         uuid.New().String(),
		CampaignID: campaignID,
		ServiceID:  serviceID,
	})
	if err != nil {
		return nil, err
	}
	return uc.toCampaignResponse(campaign)
}

// RemoveCampaignService desvincula un servicio de una campaña.
func (uc *CatalogUseCase) RemoveCampaignService(campaignID, serviceID string) error {
	campaign, err := uc.campaignRepo.GetByID(campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	return uc.campaignRepo.RemoveService(campaignID, serviceID)
}

// DeleteCampaign elimina una campaña.
func (uc *CatalogUseCase) DeleteCampaign(id string) error {
	campaign, err := uc.campaignRepo.GetByID(id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	return uc.campaignRepo.Delete(id)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (uc *CatalogUseCase) toServiceResponse(s *entity.Service, withDetail bool) (*dto.ServiceResponse, error) {
	resp := &dto.ServiceResponse{
		ID:          s.ID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
	}
	if !withDetail {
		return resp, nil
	}
	features, err := uc.serviceRepo.ListFeatures(s.ID)
	if err != nil {
		return nil, err
	}
	for _, f := range features {
		resp.Features = append(resp.Features, dto.FeatureResponse{ID: f.ID, Name: f.Name, Detail: f.Detail})
	}
	prices, err := uc.priceRepo.ListByService(s.ID)
	if err != nil {
		return nil, err
	}
	if current := domaincatalog.ResolveCurrentPrice(prices, uc.defaultCurrency, time.Now()); current != nil {
		resp.CurrentPrice = toPriceResponse(current)
	}
	return resp, nil
}

func (uc *CatalogUseCase) toCampaignResponse(c *entity.Campaign) (*dto.CampaignResponse, error) {
	links, err := uc.campaignRepo.ListServices(c.ID)
	if err != nil {
		return nil, err
	}
	serviceIDs := make([]string, 0, len(links))
	for _, l := range links {
		serviceIDs = append(serviceIDs, l.ServiceID)
	}
	return &dto.CampaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		DiscountRate: c.DiscountRate,
		StartDate:    c.StartDate.Format(dateLayout),
		EndDate:      c.EndDate.Format(dateLayout),
		Active:       c.Active,
		ServiceIDs:   serviceIDs,
		CreatedAt:    c.CreatedAt,
	}, nil
}

func toPriceResponse(p *entity.Price) *dto.PriceResponse {
	return &dto.PriceResponse{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		EffectiveDate: p.EffectiveDate.Format(dateLayout),
	}
}
