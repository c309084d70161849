package ledger

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// TopCategoryLimit caps the expense categories reported by Overview.
const TopCategoryLimit = 5

// CategoryShare is an expense category and its share of all expenses.
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// MonthFlow is the income and expense of one month.
type MonthFlow struct {
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinanceOverview summarizes one calendar year of entries.
type FinanceOverview struct {
	Year          int             `json:"year"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Profit        decimal.Decimal `json:"profit"`
	Unpaid        decimal.Decimal `json:"unpaid"`
	UnpaidCount   int             `json:"unpaid_count"`
	TopCategories []CategoryShare `json:"top_categories"`
	Cashflow      []MonthFlow     `json:"cashflow"`
}

// InYear keeps the entries dated within year.
func InYear(entries []Entry, year int) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out
}

// Overview computes the finance screen for year from entries of any date.
func Overview(entries []Entry, year int) FinanceOverview {
	entries = InYear(entries, year)

	o := FinanceOverview{Year: year, Cashflow: make([]MonthFlow, 12)}
	for i := range o.Cashflow {
		o.Cashflow[i].Month = time.Month(i + 1)
	}

	categories := make(map[string]decimal.Decimal)
	for _, e := range entries {
		month := &o.Cashflow[e.Date.Month()-1]
		switch e.Type {
		case EntryInvoice:
			o.Income = o.Income.Add(e.Amount)
			month.Income = month.Income.Add(e.Amount)
		case EntryExpense:
			o.Expense = o.Expense.Add(e.Amount)
			month.Expense = month.Expense.Add(e.Amount)

			category := strings.TrimSpace(e.Category)
			if category == "" {
				category = UncategorizedLabel
			}
			categories[category] = categories[category].Add(e.Amount)
		}
	}

	o.Profit = o.Income.Sub(o.Expense)
	o.Unpaid, o.UnpaidCount = UnpaidInvoices(entries)
	o.TopCategories = topCategories(categories, o.Expense, TopCategoryLimit)
	return o
}

func topCategories(categories map[string]decimal.Decimal, total decimal.Decimal, limit int) []CategoryShare {
	out := make([]CategoryShare, 0, len(categories))
	for name, amount := range categories {
		out = append(out, CategoryShare{Category: name, Amount: amount, Percent: Percent(amount, total)})
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Search keeps entries whose category, description or site name contains
// term, ignoring case and diacritics ("zahorie" finds "Záhorie"). An empty
// term keeps everything.
func Search(entries []Entry, term string) []Entry {
	term = Fold(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	var out []Entry
	for _, e := range entries {
		if strings.Contains(Fold(e.Category), term) ||
			strings.Contains(Fold(e.Description), term) ||
			strings.Contains(Fold(e.SiteName), term) {
			out = append(out, e)
		}
	}
	return out
}

// Fold lowercases s and strips combining marks.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
