package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Site is the project metadata a site rollup is reported against.
type Site struct {
	ID     uuid.UUID
	Name   string
	Status string
	Budget decimal.Decimal
}

// SiteRollup is the rollup of the rows attached to one site.
type SiteRollup struct {
	SiteID     uuid.UUID       `json:"site_id"`
	Name       string          `json:"name"`
	Status     string          `json:"status"`
	Budget     decimal.Decimal `json:"budget"`
	BudgetBurn decimal.Decimal `json:"budget_burn"`
	Rollup
}

// ForSite keeps only the rows referencing siteID.
func ForSite(siteID uuid.UUID, entries []Entry, materials []Material, labor []Labor) ([]Entry, []Material, []Labor) {
	var (
		es []Entry
		ms []Material
		ls []Labor
	)
	for _, e := range entries {
		if e.SiteID != nil && *e.SiteID == siteID {
			es = append(es, e)
		}
	}
	for _, m := range materials {
		if m.SiteID == siteID {
			ms = append(ms, m)
		}
	}
	for _, l := range labor {
		if l.SiteID != nil && *l.SiteID == siteID {
			ls = append(ls, l)
		}
	}
	return es, ms, ls
}

// SummarizeSite computes the rollup of one site, including budget burn.
func SummarizeSite(site Site, entries []Entry, materials []Material, labor []Labor) SiteRollup {
	r := Summarize(ForSite(site.ID, entries, materials, labor))
	return SiteRollup{
		SiteID:     site.ID,
		Name:       site.Name,
		Status:     site.Status,
		Budget:     site.Budget,
		BudgetBurn: Percent(r.TotalCost, site.Budget),
		Rollup:     r,
	}
}

// BySite computes one rollup per site, sorted by descending profit. Ties keep
// the order of sites.
func BySite(sites []Site, entries []Entry, materials []Material, labor []Labor) []SiteRollup {
	out := make([]SiteRollup, 0, len(sites))
	for _, s := range sites {
		out = append(out, SummarizeSite(s, entries, materials, labor))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit.GreaterThan(out[j].Profit)
	})
	return out
}

// EmployeeRollup totals the labor of one employee display name.
type EmployeeRollup struct {
	Name        string          `json:"name"`
	Hours       decimal.Decimal `json:"hours"`
	Cost        decimal.Decimal `json:"cost"`
	AverageRate decimal.Decimal `json:"average_rate"`
	Logs        int             `json:"logs"`
}

// ByEmployee groups labor by employee display name, sorted by descending
// hours, then name.
func ByEmployee(labor []Labor) []EmployeeRollup {
	index := make(map[string]int)
	var out []EmployeeRollup

	for _, l := range labor {
		name := strings.TrimSpace(l.EmployeeName)
		if name == "" {
			name = UnknownEmployee
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, EmployeeRollup{Name: name})
		}

		out[i].Hours = out[i].Hours.Add(l.Hours)
		out[i].Cost = out[i].Cost.Add(l.Cost())
		out[i].Logs++
	}

	for i := range out {
		out[i].AverageRate = AverageRate(out[i].Cost, out[i].Hours)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Hours.Cmp(out[j].Hours); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Analytics is the organization-wide report.
type Analytics struct {
	Rollup
	MaterialRatio decimal.Decimal  `json:"material_ratio"`
	LaborRatio    decimal.Decimal  `json:"labor_ratio"`
	Sites         []SiteRollup     `json:"sites"`
	Employees     []EmployeeRollup `json:"employees"`
}

// Analyze builds the organization-wide report with the site leaderboard and
// employee rollup.
func Analyze(sites []Site, entries []Entry, materials []Material, labor []Labor) Analytics {
	r := Summarize(entries, materials, labor)
	return Analytics{
		Rollup:        r,
		MaterialRatio: Percent(r.MaterialCost, r.TotalCost),
		LaborRatio:    Percent(r.LaborCost, r.TotalCost),
		Sites:         BySite(sites, entries, materials, labor),
		Employees:     ByEmployee(labor),
	}
}
