package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/dangerclosesec/sitebook/internal/serializer"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	transactions repository.TransactionRepositoryIface
	sites        repository.SiteRepositoryIface
	validate     *validator.Validate
}

func NewTransactionService(transactions repository.TransactionRepositoryIface, sites repository.SiteRepositoryIface) *TransactionService {
	return &TransactionService{transactions: transactions, sites: sites, validate: newValidator()}
}

// TransactionInput creates or replaces a transaction. A nil IsPaid means
// expenses are recorded as paid and invoices as outstanding.
type TransactionInput struct {
	SiteID      *uuid.UUID       `json:"site_id"`
	Type        ledger.EntryType `json:"type" validate:"required,oneof=invoice expense"`
	Category    string           `json:"category" validate:"required,max=100"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        time.Time        `json:"date" validate:"required"`
	Description string           `json:"description"`
	IsPaid      *bool            `json:"is_paid"`
}

func (in TransactionInput) paid() bool {
	if in.IsPaid != nil {
		return *in.IsPaid
	}
	return in.Type == ledger.EntryExpense
}

func (s *TransactionService) check(ctx context.Context, orgID uuid.UUID, input TransactionInput) error {
	if err := validateInput(s.validate, input); err != nil {
		return err
	}
	if input.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}
	if input.SiteID != nil {
		if _, err := s.sites.FindByID(ctx, orgID, *input.SiteID); err != nil {
			return err
		}
	}
	return nil
}

func (s *TransactionService) Create(ctx context.Context, orgID uuid.UUID, input TransactionInput) (*model.Transaction, error) {
	if err := s.check(ctx, orgID, input); err != nil {
		return nil, err
	}

	t := &model.Transaction{
		OrganizationID: orgID,
		SiteID:         input.SiteID,
		Type:           input.Type,
		Category:       input.Category,
		Amount:         input.Amount,
		Date:           input.Date,
		Description:    input.Description,
		IsPaid:         input.paid(),
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransactionService) Get(ctx context.Context, orgID, id uuid.UUID) (*model.Transaction, error) {
	return s.transactions.FindByID(ctx, orgID, id)
}

// TransactionQuery filters the finance list. Search matches category,
// description and site name regardless of case and diacritics.
type TransactionQuery struct {
	repository.TransactionFilter
	Search string
}

func (s *TransactionService) List(ctx context.Context, orgID uuid.UUID, query TransactionQuery) ([]model.Transaction, error) {
	rows, err := s.transactions.List(ctx, orgID, query.TransactionFilter)
	if err != nil {
		return nil, err
	}
	if query.Search == "" {
		return rows, nil
	}

	entries := make([]ledger.Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].Entry()
	}
	keep := make(map[uuid.UUID]bool)
	for _, e := range ledger.Search(entries, query.Search) {
		keep[e.ID] = true
	}

	out := make([]model.Transaction, 0, len(keep))
	for _, t := range rows {
		if keep[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TransactionService) Update(ctx context.Context, orgID, id uuid.UUID, input TransactionInput) (*model.Transaction, error) {
	if err := s.check(ctx, orgID, input); err != nil {
		return nil, err
	}

	t, err := s.transactions.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	t.SiteID = input.SiteID
	t.Type = input.Type
	t.Category = input.Category
	t.Amount = input.Amount
	t.Date = input.Date
	t.Description = input.Description
	if input.IsPaid != nil {
		t.IsPaid = *input.IsPaid
	}

	if err := s.transactions.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// SetPaid stores paid as the transaction's paid flag and returns the row.
// Repeating the call with the same value leaves the row unchanged.
func (s *TransactionService) SetPaid(ctx context.Context, orgID, id uuid.UUID, paid bool) (*model.Transaction, error) {
	t, err := s.transactions.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.transactions.SetPaid(ctx, orgID, id, paid); err != nil {
		return nil, err
	}
	t.IsPaid = paid
	return t, nil
}

func (s *TransactionService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.transactions.Delete(ctx, orgID, id)
}

// Overview reports the finance screen of one calendar year.
func (s *TransactionService) Overview(ctx context.Context, orgID uuid.UUID, year int) (*ledger.FinanceOverview, error) {
	rows, err := s.transactions.List(ctx, orgID, repository.TransactionFilter{Year: year})
	if err != nil {
		return nil, err
	}

	entries := make([]ledger.Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].Entry()
	}
	overview := ledger.Overview(entries, year)
	return &overview, nil
}

// Export writes the year's transactions as CSV to w.
func (s *TransactionService) Export(ctx context.Context, orgID uuid.UUID, year int, w io.Writer) error {
	rows, err := s.transactions.List(ctx, orgID, repository.TransactionFilter{Year: year})
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	if err := serializer.Encode(rows, serializer.FormatCSV, w); err != nil {
		return fmt.Errorf("exporting transactions: %w", err)
	}
	return nil
}
