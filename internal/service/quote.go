package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type QuoteService struct {
	quotes   repository.QuoteRepositoryIface
	sites    repository.SiteRepositoryIface
	validate *validator.Validate
	now      func() time.Time
	intn     quote.Intn
}

func NewQuoteService(quotes repository.QuoteRepositoryIface, sites repository.SiteRepositoryIface) *QuoteService {
	return &QuoteService{quotes: quotes, sites: sites, validate: newValidator(), now: time.Now}
}

// QuoteInput is a composed quote. Line totals and the quote total sent by a
// client are ignored and recomputed from quantity and unit price.
type QuoteInput struct {
	SiteID        *uuid.UUID   `json:"site_id"`
	Number        string       `json:"number" validate:"max=50"`
	ClientName    string       `json:"client_name" validate:"max=200"`
	ClientAddress string       `json:"client_address"`
	Status        quote.Status `json:"status"`
	IssueDate     *time.Time   `json:"issue_date"`
	ValidUntil    *time.Time   `json:"valid_until"`
	Notes         string       `json:"notes"`
	Items         []quote.Item `json:"items" validate:"required,min=1"`
}

// Create stores the quote header and items in one transaction. A linked site
// fills an empty client name and address.
func (s *QuoteService) Create(ctx context.Context, orgID uuid.UUID, input QuoteInput) (*model.Quote, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	now := s.now()
	header := quote.Header{
		Number:        input.Number,
		ClientName:    input.ClientName,
		ClientAddress: input.ClientAddress,
		Status:        input.Status,
		ValidUntil:    input.ValidUntil,
		Notes:         input.Notes,
	}
	if header.Number == "" {
		header.Number = quote.NewNumber(now, s.intn)
	}
	if input.IssueDate != nil {
		header.IssueDate = *input.IssueDate
	} else {
		header.IssueDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	draft := quote.FromItems(header, input.Items)
	if input.SiteID != nil {
		site, err := s.sites.FindByID(ctx, orgID, *input.SiteID)
		if err != nil {
			return nil, err
		}
		name, address := draft.ClientName, draft.ClientAddress
		draft.ApplySite(quote.Site{ID: site.ID, ClientName: site.ClientName, Address: site.Address})
		if name != "" {
			draft.ClientName = name
		}
		if address != "" {
			draft.ClientAddress = address
		}
	}
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	q := &model.Quote{
		OrganizationID: orgID,
		SiteID:         draft.SiteID,
		Number:         draft.Number,
		ClientName:     draft.ClientName,
		ClientAddress:  draft.ClientAddress,
		Status:         draft.Status,
		IssueDate:      draft.IssueDate,
		ValidUntil:     draft.ValidUntil,
		TotalAmount:    draft.Total(),
		Notes:          draft.Notes,
	}
	for _, item := range draft.Items() {
		q.Items = append(q.Items, model.QuoteItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.Total(),
		})
	}

	if err := s.quotes.CreateWithItems(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuoteService) Get(ctx context.Context, orgID, id uuid.UUID) (*model.Quote, error) {
	return s.quotes.FindByID(ctx, orgID, id)
}

func (s *QuoteService) List(ctx context.Context, orgID uuid.UUID) ([]model.Quote, error) {
	return s.quotes.List(ctx, orgID)
}

func (s *QuoteService) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, status quote.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown quote status %q", domain.ErrInvalidInput, status)
	}
	return s.quotes.UpdateStatus(ctx, orgID, id, status)
}

func (s *QuoteService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.quotes.Delete(ctx, orgID, id)
}
