// Package quote composes draft quotes from line items.
package quote

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

const (
	DefaultUnit  = "ks"
	NumberPrefix = "CP"
	// numberSpace bounds the random suffix of a quote number. Numbers are not
	// checked for uniqueness.
	numberSpace = 1000
)

var (
	ErrNoItems        = errors.New("quote needs at least one item")
	ErrItemIndex      = errors.New("item index out of range")
	ErrItemIncomplete = errors.New("item needs a description")
	ErrNegativeAmount = errors.New("quantity and unit price must not be negative")
)

// Intn returns a random integer in [0, n).
type Intn func(n int) int

// NewNumber renders a quote number CP-<year>-<0..999>.
func NewNumber(now time.Time, intn Intn) string {
	if intn == nil {
		intn = rand.Intn
	}
	return fmt.Sprintf("%s-%d-%d", NumberPrefix, now.Year(), intn(numberSpace))
}

// Item is one line of a quote.
type Item struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// NewItem returns a blank line with quantity 1.
func NewItem() Item {
	return Item{Quantity: decimal.NewFromInt(1), Unit: DefaultUnit}
}

// Total is quantity times unit price.
func (i Item) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

func (i Item) validate() error {
	if strings.TrimSpace(i.Description) == "" {
		return ErrItemIncomplete
	}
	if i.Quantity.IsNegative() || i.UnitPrice.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Site is the project data a quote header can be filled from.
type Site struct {
	ID         uuid.UUID
	ClientName string
	Address    string
}

// Header is the quote document header.
type Header struct {
	SiteID        *uuid.UUID `json:"site_id,omitempty"`
	Number        string     `json:"number"`
	ClientName    string     `json:"client_name"`
	ClientAddress string     `json:"client_address"`
	Status        Status     `json:"status"`
	IssueDate     time.Time  `json:"issue_date"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	Notes         string     `json:"notes"`
}

// Draft is a quote being composed. The total is always derived from the
// current items.
type Draft struct {
	Header
	items []Item
}

// NewDraft starts a quote dated today with a fresh number and one blank line.
func NewDraft(now time.Time, intn Intn) *Draft {
	return &Draft{
		Header: Header{
			Number:    NewNumber(now, intn),
			Status:    StatusDraft,
			IssueDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		},
		items: []Item{NewItem()},
	}
}

// FromItems builds a draft from an already complete header and items.
func FromItems(h Header, items []Item) *Draft {
	d := &Draft{Header: h, items: make([]Item, len(items))}
	copy(d.items, items)
	if d.Status == "" {
		d.Status = StatusDraft
	}
	for i := range d.items {
		if d.items[i].Unit == "" {
			d.items[i].Unit = DefaultUnit
		}
	}
	return d
}

// Items returns a copy of the lines.
func (d *Draft) Items() []Item {
	cp := make([]Item, len(d.items))
	copy(cp, d.items)
	return cp
}

func (d *Draft) AddItem(item Item) {
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	d.items = append(d.items, item)
}

func (d *Draft) UpdateItem(index int, item Item) error {
	if index < 0 || index >= len(d.items) {
		return ErrItemIndex
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	d.items[index] = item
	return nil
}

func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return ErrItemIndex
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	return nil
}

// Total sums the line totals.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.items {
		total = total.Add(item.Total())
	}
	return total
}

// ApplySite links the draft to site and copies its client name and address.
// The copy is taken once; later site edits do not reach the quote.
func (d *Draft) ApplySite(site Site) {
	id := site.ID
	d.SiteID = &id
	d.ClientName = site.ClientName
	d.ClientAddress = site.Address
}

// Validate checks the draft can be saved.
func (d *Draft) Validate() error {
	if len(d.items) == 0 {
		return ErrNoItems
	}
	for i, item := range d.items {
		if err := item.validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if !d.Status.Valid() {
		return fmt.Errorf("unknown quote status %q", d.Status)
	}
	return nil
}
