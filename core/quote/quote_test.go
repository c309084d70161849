package quote_test

import (
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 17, 15, 4, 5, 0, time.UTC)

func fixed(n int) quote.Intn {
	return func(int) int { return n }
}

func TestNewNumber(t *testing.T) {
	assert.Equal(t, "CP-2026-42", quote.NewNumber(now, fixed(42)))
	assert.Equal(t, "CP-2026-0", quote.NewNumber(now, fixed(0)))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^CP-2026-\d{1,3}$`, quote.NewNumber(now, nil))
	}
}

func TestNewDraft(t *testing.T) {
	d := quote.NewDraft(now, fixed(7))

	assert.Equal(t, "CP-2026-7", d.Number)
	assert.Equal(t, quote.StatusDraft, d.Status)
	assert.Equal(t, time.Date(2026, 4, 17, 0, 0, 0, 0, time.UTC), d.IssueDate)
	require.Len(t, d.Items(), 1)
	assert.True(t, d.Items()[0].Quantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, quote.DefaultUnit, d.Items()[0].Unit)
	assert.True(t, d.Total().IsZero())
}

func TestDraftTotalFollowsEdits(t *testing.T) {
	d := quote.NewDraft(now, fixed(1))
	require.NoError(t, d.UpdateItem(0, quote.Item{Description: "Murovanie", Quantity: decimal.NewFromInt(12), UnitPrice: decimal.RequireFromString("25.50")}))
	d.AddItem(quote.Item{Description: "Doprava", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(80), Unit: "paušál"})

	assert.True(t, decimal.NewFromInt(386).Equal(d.Total()), d.Total().String())

	require.NoError(t, d.RemoveItem(1))
	assert.True(t, decimal.NewFromInt(306).Equal(d.Total()))

	assert.ErrorIs(t, d.RemoveItem(5), quote.ErrItemIndex)
	assert.ErrorIs(t, d.UpdateItem(-1, quote.NewItem()), quote.ErrItemIndex)
}

func TestApplySiteIsOneShot(t *testing.T) {
	site := quote.Site{ID: uuid.New(), ClientName: "Ing. Horváth", Address: "Hlavná 1, Nitra"}
	d := quote.NewDraft(now, fixed(1))

	d.ApplySite(site)
	site.ClientName = "Someone else"

	require.NotNil(t, d.SiteID)
	assert.Equal(t, site.ID, *d.SiteID)
	assert.Equal(t, "Ing. Horváth", d.ClientName)
	assert.Equal(t, "Hlavná 1, Nitra", d.ClientAddress)
}

func TestValidate(t *testing.T) {
	d := quote.NewDraft(now, fixed(1))
	assert.ErrorIs(t, d.Validate(), quote.ErrItemIncomplete)

	require.NoError(t, d.UpdateItem(0, quote.Item{Description: "Omietka", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(3)}))
	assert.ErrorIs(t, d.Validate(), quote.ErrNegativeAmount)

	require.NoError(t, d.UpdateItem(0, quote.Item{Description: "Omietka", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3)}))
	assert.NoError(t, d.Validate())

	require.NoError(t, d.RemoveItem(0))
	assert.ErrorIs(t, d.Validate(), quote.ErrNoItems)

	d = quote.FromItems(quote.Header{Status: "archived"}, []quote.Item{{Description: "x"}})
	assert.Error(t, d.Validate())
}

func TestProperty_TotalEqualsSumOfLines(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("draft total is the sum of line totals", prop.ForAll(
		func(quantities []int, cents []int) bool {
			n := len(quantities)
			if len(cents) < n {
				n = len(cents)
			}

			var items []quote.Item
			want := decimal.Zero
			for i := 0; i < n; i++ {
				item := quote.Item{
					Description: "line",
					Quantity:    decimal.NewFromInt(int64(quantities[i])),
					UnitPrice:   decimal.New(int64(cents[i]), -2),
				}
				items = append(items, item)
				want = want.Add(item.Quantity.Mul(item.UnitPrice))
			}

			d := quote.FromItems(quote.Header{}, items)
			sum := decimal.Zero
			for _, item := range d.Items() {
				sum = sum.Add(item.Total())
			}
			return d.Total().Equal(want) && d.Total().Equal(sum)
		},
		gen.SliceOf(gen.IntRange(0, 500)),
		gen.SliceOf(gen.IntRange(0, 1000000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
