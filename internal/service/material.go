package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaterialService struct {
	materials repository.MaterialRepositoryIface
	sites     repository.SiteRepositoryIface
	validate  *validator.Validate
}

func NewMaterialService(materials repository.MaterialRepositoryIface, sites repository.SiteRepositoryIface) *MaterialService {
	return &MaterialService{materials: materials, sites: sites, validate: newValidator()}
}

type MaterialInput struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" validate:"max=20"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	PurchaseDate time.Time       `json:"purchase_date" validate:"required"`
}

func (s *MaterialService) check(input MaterialInput) error {
	if err := validateInput(s.validate, input); err != nil {
		return err
	}
	if input.Quantity.IsNegative() || input.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: quantity and unit price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// Create records a purchase on siteID. The site must belong to orgID.
func (s *MaterialService) Create(ctx context.Context, orgID, siteID uuid.UUID, input MaterialInput) (*model.Material, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}
	if _, err := s.sites.FindByID(ctx, orgID, siteID); err != nil {
		return nil, err
	}

	m := &model.Material{
		OrganizationID: orgID,
		SiteID:         siteID,
		Name:           input.Name,
		Quantity:       input.Quantity,
		Unit:           input.Unit,
		UnitPrice:      input.UnitPrice,
		Supplier:       input.Supplier,
		PurchaseDate:   input.PurchaseDate,
	}
	if err := s.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) List(ctx context.Context, orgID, siteID uuid.UUID) ([]model.Material, error) {
	if _, err := s.sites.FindByID(ctx, orgID, siteID); err != nil {
		return nil, err
	}
	return s.materials.ListBySite(ctx, orgID, siteID)
}

func (s *MaterialService) Update(ctx context.Context, orgID, id uuid.UUID, input MaterialInput) (*model.Material, error) {
	if err := s.check(input); err != nil {
		return nil, err
	}

	m, err := s.materials.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	m.Name = input.Name
	m.Quantity = input.Quantity
	m.Unit = input.Unit
	m.UnitPrice = input.UnitPrice
	m.Supplier = input.Supplier
	m.PurchaseDate = input.PurchaseDate

	if err := s.materials.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.materials.Delete(ctx, orgID, id)
}
