// Package ledger reduces one organization's transactions, materials and
// attendance logs into financial rollups.
//
// Every function here works on rows that were already scoped to a single
// organization. Missing amounts are zero values, so no total can become NaN.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryInvoice EntryType = "invoice"
	EntryExpense EntryType = "expense"
)

const (
	// PayrollCategory marks expense entries that are wage payouts.
	PayrollCategory = "Mzda"
	// UncategorizedLabel names expense entries with a blank category.
	UncategorizedLabel = "Ostatné"
	// UnknownEmployee names labor rows whose employee has no display name.
	UnknownEmployee = "Neznámy"
	// UnknownSite names labor rows whose site is missing or deleted.
	UnknownSite = "Neznáma stavba"
)

var hundred = decimal.NewFromInt(100)

// Entry is a financial transaction: a client invoice or a company expense.
type Entry struct {
	ID          uuid.UUID
	SiteID      *uuid.UUID
	EmployeeID  *uuid.UUID
	SiteName    string
	Type        EntryType
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Paid        bool
}

// Material is a purchased cost line attached to a site.
type Material struct {
	SiteID     uuid.UUID
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Total returns the stored total, falling back to quantity times unit price
// when the row carries no total.
func (m Material) Total() decimal.Decimal {
	if !m.TotalPrice.IsZero() {
		return m.TotalPrice
	}
	return m.Quantity.Mul(m.UnitPrice)
}

// Labor is one attendance log with the rate captured when it was written.
type Labor struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	SiteID       *uuid.UUID
	SiteName     string
	Date         time.Time
	Hours        decimal.Decimal
	RateSnapshot decimal.Decimal
}

// Cost is hours times the snapshot rate.
func (l Labor) Cost() decimal.Decimal {
	return l.Hours.Mul(l.RateSnapshot)
}

// Rollup is the cost and revenue summary of a set of rows.
type Rollup struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Collected     decimal.Decimal `json:"collected"`
	Unpaid        decimal.Decimal `json:"unpaid"`
	ExpenseCost   decimal.Decimal `json:"expense_cost"`
	MaterialSpend decimal.Decimal `json:"material_spend"`
	MaterialCost  decimal.Decimal `json:"material_cost"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	LaborHours    decimal.Decimal `json:"labor_hours"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Profit        decimal.Decimal `json:"profit"`
	Margin        decimal.Decimal `json:"margin"`
}

// Summarize computes the rollup of the given rows.
//
// Revenue counts every invoice regardless of its paid flag. Material cost is
// expense entries plus material totals, labor cost is hours times the rate
// snapshot, and margin is profit over revenue in percent, or zero without
// revenue.
func Summarize(entries []Entry, materials []Material, labor []Labor) Rollup {
	var r Rollup

	for _, e := range entries {
		switch e.Type {
		case EntryInvoice:
			r.Revenue = r.Revenue.Add(e.Amount)
			if e.Paid {
				r.Collected = r.Collected.Add(e.Amount)
			} else {
				r.Unpaid = r.Unpaid.Add(e.Amount)
			}
		case EntryExpense:
			r.ExpenseCost = r.ExpenseCost.Add(e.Amount)
		}
	}

	for _, m := range materials {
		r.MaterialSpend = r.MaterialSpend.Add(m.Total())
	}

	for _, l := range labor {
		r.LaborCost = r.LaborCost.Add(l.Cost())
		r.LaborHours = r.LaborHours.Add(l.Hours)
	}

	r.MaterialCost = r.ExpenseCost.Add(r.MaterialSpend)
	r.TotalCost = r.MaterialCost.Add(r.LaborCost)
	r.Profit = r.Revenue.Sub(r.TotalCost)
	r.Margin = Margin(r.Revenue, r.TotalCost)

	return r
}

// Revenue sums invoice amounts.
func Revenue(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type == EntryInvoice {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Margin returns (revenue - cost) / revenue * 100, or zero when revenue is
// not positive.
func Margin(revenue, cost decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return revenue.Sub(cost).Div(revenue).Mul(hundred).Round(2)
}

// UnpaidInvoices returns the total and count of invoices not yet paid.
func UnpaidInvoices(entries []Entry) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		if e.Type == EntryInvoice && !e.Paid {
			total = total.Add(e.Amount)
			count++
		}
	}
	return total, count
}

// Percent returns part / whole * 100 rounded to two places, or zero when
// whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(2)
}

// AverageRate returns cost / hours, or zero when no hours were logged.
func AverageRate(cost, hours decimal.Decimal) decimal.Decimal {
	if hours.IsZero() {
		return decimal.Zero
	}
	return cost.Div(hours).Round(2)
}
