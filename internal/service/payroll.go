package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/domain"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollService derives what a member earned from attendance and what was
// paid out from payroll expenses.
type PayrollService struct {
	tx           repository.Transactor
	profiles     repository.ProfileRepositoryIface
	logs         repository.AttendanceRepositoryIface
	transactions repository.TransactionRepositoryIface
	validate     *validator.Validate
}

func NewPayrollService(
	tx repository.Transactor,
	profiles repository.ProfileRepositoryIface,
	logs repository.AttendanceRepositoryIface,
	transactions repository.TransactionRepositoryIface,
) *PayrollService {
	return &PayrollService{
		tx:           tx,
		profiles:     profiles,
		logs:         logs,
		transactions: transactions,
		validate:     newValidator(),
	}
}

type PayrollSummary struct {
	Profile   *model.Profile         `json:"profile"`
	Payroll   ledger.Payroll         `json:"payroll"`
	Breakdown []ledger.SiteBreakdown `json:"breakdown"`
	Payouts   []model.Transaction    `json:"payouts"`
}

func (s *PayrollService) Summary(ctx context.Context, orgID, employeeID uuid.UUID) (*PayrollSummary, error) {
	profile, err := s.profiles.FindByID(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByEmployee(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.transactions.ListPayouts(ctx, orgID, employeeID)
	if err != nil {
		return nil, err
	}

	labor := make([]ledger.Labor, len(logs))
	for i := range logs {
		labor[i] = logs[i].Labor()
	}
	entries := make([]ledger.Entry, len(payouts))
	for i := range payouts {
		entries[i] = payouts[i].Entry()
	}

	return &PayrollSummary{
		Profile:   profile,
		Payroll:   ledger.PayrollBalance(employeeID, labor, entries),
		Breakdown: ledger.Breakdown(labor),
		Payouts:   payouts,
	}, nil
}

type PayoutInput struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date" validate:"required"`
	Note   string          `json:"note" validate:"max=500"`
}

// Disburse records a wage payout as a paid payroll expense. It is refused
// while nothing is owed.
func (s *PayrollService) Disburse(ctx context.Context, orgID, employeeID uuid.UUID, input PayoutInput) (*model.Transaction, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	var payout *model.Transaction
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		summary, err := s.Summary(ctx, orgID, employeeID)
		if err != nil {
			return err
		}
		if !summary.Payroll.Owed() {
			return domain.ErrNothingOwed
		}

		employee := employeeID
		payout = &model.Transaction{
			OrganizationID: orgID,
			EmployeeID:     &employee,
			Type:           ledger.EntryExpense,
			Category:       ledger.PayrollCategory,
			Amount:         input.Amount,
			Date:           input.Date,
			Description:    ledger.PayoutDescription(summary.Profile.FullName, employeeID, input.Note),
			IsPaid:         true,
		}
		return s.transactions.Create(ctx, payout)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "wage payout recorded", "organizationID", orgID, "profileID", employeeID, "amount", input.Amount.String())
	return payout, nil
}
