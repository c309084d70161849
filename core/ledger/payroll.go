package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollMarker is the token embedded in a payout description that links it
// to an employee.
func PayrollMarker(employeeID uuid.UUID) string {
	return "#EMP:" + employeeID.String()
}

// PayoutDescription renders the description of a payroll expense entry.
func PayoutDescription(employeeName string, employeeID uuid.UUID, note string) string {
	desc := fmt.Sprintf("Výplata mzdy: %s %s.", strings.TrimSpace(employeeName), PayrollMarker(employeeID))
	if note = strings.TrimSpace(note); note != "" {
		desc += " " + note
	}
	return desc
}

// IsPayoutFor reports whether e is a payroll expense for employeeID. The
// structured EmployeeID wins when set; otherwise the description marker is
// matched case-insensitively.
func IsPayoutFor(e Entry, employeeID uuid.UUID) bool {
	if e.Type != EntryExpense || e.Category != PayrollCategory {
		return false
	}
	if e.EmployeeID != nil && *e.EmployeeID == employeeID {
		return true
	}
	return strings.Contains(strings.ToLower(e.Description), strings.ToLower(PayrollMarker(employeeID)))
}

// Payroll is the implicit wage ledger of one employee.
type Payroll struct {
	EmployeeID uuid.UUID       `json:"employee_id"`
	Hours      decimal.Decimal `json:"hours"`
	Earned     decimal.Decimal `json:"earned"`
	Paid       decimal.Decimal `json:"paid"`
	Balance    decimal.Decimal `json:"balance"`
	Suggested  decimal.Decimal `json:"suggested_payout"`
}

// Owed reports whether a payout can be initiated.
func (p Payroll) Owed() bool {
	return p.Balance.IsPositive()
}

// PayrollBalance computes earned (from rate snapshots), paid (from tagged
// payroll expenses) and the resulting balance for employeeID.
func PayrollBalance(employeeID uuid.UUID, labor []Labor, entries []Entry) Payroll {
	p := Payroll{EmployeeID: employeeID}

	for _, l := range labor {
		if l.EmployeeID != employeeID {
			continue
		}
		p.Hours = p.Hours.Add(l.Hours)
		p.Earned = p.Earned.Add(l.Cost())
	}

	for _, e := range entries {
		if IsPayoutFor(e, employeeID) {
			p.Paid = p.Paid.Add(e.Amount)
		}
	}

	p.Balance = p.Earned.Sub(p.Paid)
	p.Suggested = decimal.Max(p.Balance, decimal.Zero)
	return p
}

// MonthBreakdown is labor within one calendar month.
type MonthBreakdown struct {
	Month string          `json:"month"`
	Hours decimal.Decimal `json:"hours"`
	Cost  decimal.Decimal `json:"cost"`
}

// SiteBreakdown is labor on one site, split by month.
type SiteBreakdown struct {
	SiteName string           `json:"site_name"`
	Hours    decimal.Decimal  `json:"hours"`
	Cost     decimal.Decimal  `json:"cost"`
	Months   []MonthBreakdown `json:"months"`
}

// Breakdown groups labor by site name and then by month (YYYY-MM). Sites are
// ordered by name and months chronologically.
func Breakdown(labor []Labor) []SiteBreakdown {
	type acc struct {
		site   SiteBreakdown
		months map[string]*MonthBreakdown
	}
	bySite := make(map[string]*acc)

	for _, l := range labor {
		name := strings.TrimSpace(l.SiteName)
		if name == "" {
			name = UnknownSite
		}

		a, ok := bySite[name]
		if !ok {
			a = &acc{site: SiteBreakdown{SiteName: name}, months: make(map[string]*MonthBreakdown)}
			bySite[name] = a
		}

		key := l.Date.Format("2006-01")
		m, ok := a.months[key]
		if !ok {
			m = &MonthBreakdown{Month: key}
			a.months[key] = m
		}

		cost := l.Cost()
		m.Hours = m.Hours.Add(l.Hours)
		m.Cost = m.Cost.Add(cost)
		a.site.Hours = a.site.Hours.Add(l.Hours)
		a.site.Cost = a.site.Cost.Add(cost)
	}

	out := make([]SiteBreakdown, 0, len(bySite))
	for _, a := range bySite {
		for _, m := range a.months {
			a.site.Months = append(a.site.Months, *m)
		}
		sort.Slice(a.site.Months, func(i, j int) bool { return a.site.Months[i].Month < a.site.Months[j].Month })
		out = append(out, a.site)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SiteName < out[j].SiteName })
	return out
}
