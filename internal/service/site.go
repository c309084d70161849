package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SiteService struct {
	sites    repository.SiteRepositoryIface
	ledger   repository.LedgerReaderIface
	validate *validator.Validate
}

func NewSiteService(sites repository.SiteRepositoryIface, ledger repository.LedgerReaderIface) *SiteService {
	return &SiteService{sites: sites, ledger: ledger, validate: newValidator()}
}

type SiteInput struct {
	Name       string           `json:"name" validate:"required,max=200"`
	Address    string           `json:"address"`
	ClientName string           `json:"client_name"`
	Status     model.SiteStatus `json:"status"`
	Budget     decimal.Decimal  `json:"budget"`
	Notes      string           `json:"notes"`
}

func (in SiteInput) check() error {
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown site status %q", domain.ErrInvalidInput, in.Status)
	}
	if in.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func (s *SiteService) Create(ctx context.Context, orgID uuid.UUID, input SiteInput) (*model.Site, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if err := input.check(); err != nil {
		return nil, err
	}

	site := &model.Site{
		OrganizationID: orgID,
		Name:           input.Name,
		Address:        input.Address,
		ClientName:     input.ClientName,
		Status:         input.Status,
		Budget:         input.Budget,
		Notes:          input.Notes,
	}
	if err := s.sites.Create(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) Get(ctx context.Context, orgID, id uuid.UUID) (*model.Site, error) {
	return s.sites.FindByID(ctx, orgID, id)
}

// List returns the sites of a board tab. An empty group lists every site.
func (s *SiteService) List(ctx context.Context, orgID uuid.UUID, group model.SiteGroup) ([]model.Site, error) {
	if group == "" {
		return s.sites.List(ctx, orgID)
	}
	statuses := group.Statuses()
	if statuses == nil {
		return nil, fmt.Errorf("%w: unknown group %q", domain.ErrInvalidInput, group)
	}
	return s.sites.List(ctx, orgID, statuses...)
}

func (s *SiteService) Update(ctx context.Context, orgID, id uuid.UUID, input SiteInput) (*model.Site, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if err := input.check(); err != nil {
		return nil, err
	}

	site, err := s.sites.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	site.Name = input.Name
	site.Address = input.Address
	site.ClientName = input.ClientName
	site.Budget = input.Budget
	site.Notes = input.Notes
	if input.Status != "" {
		site.Status = input.Status
	}

	if err := s.sites.Update(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteService) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status model.SiteStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown site status %q", domain.ErrInvalidInput, status)
	}
	return s.sites.UpdateStatus(ctx, orgID, id, status)
}

// Delete removes the site and everything attached to it.
func (s *SiteService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.sites.Delete(ctx, orgID, id)
}

// Rollup reports the financials of one site.
func (s *SiteService) Rollup(ctx context.Context, orgID, id uuid.UUID) (*ledger.SiteRollup, error) {
	site, err := s.sites.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	data, err := s.ledger.Load(ctx, orgID, repository.LedgerFilter{SiteID: site.ID})
	if err != nil {
		return nil, err
	}

	rollup := ledger.SummarizeSite(ledger.Site{
		ID:     site.ID,
		Name:   site.Name,
		Status: string(site.Status),
		Budget: site.Budget,
	}, data.Entries, data.Materials, data.Labor)
	return &rollup, nil
}
