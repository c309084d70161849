// internal/repository/ledger_reader.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerData is every row the ledger needs for one organization.
type LedgerData struct {
	Entries   []ledger.Entry
	Materials []ledger.Material
	Labor     []ledger.Labor
	Sites     []ledger.Site
}

// LedgerFilter narrows a load. SiteID restricts every row set to one site;
// SiteStatuses only narrows the sites reported on, so organization totals
// stay complete.
type LedgerFilter struct {
	SiteID       uuid.UUID
	SiteStatuses []model.SiteStatus
}

// args returns the query parameters of f, nil where f does not filter.
func (f LedgerFilter) args() (site any, statuses any) {
	if f.SiteID != uuid.Nil {
		site = f.SiteID
	}
	if len(f.SiteStatuses) > 0 {
		names := make([]string, len(f.SiteStatuses))
		for i, st := range f.SiteStatuses {
			names[i] = string(st)
		}
		statuses = names
	}
	return site, statuses
}

// LedgerReaderIface loads the read model behind rollups and analytics.
type LedgerReaderIface interface {
	Load(ctx context.Context, orgID uuid.UUID, filter LedgerFilter) (*LedgerData, error)
}

// LedgerReader reads the ledger straight from postgres. The queries join
// site and profile names in so reductions never need another round trip.
type LedgerReader struct {
	pool *pgxpool.Pool
}

func NewLedgerReader(pool *pgxpool.Pool) *LedgerReader {
	return &LedgerReader{pool: pool}
}

const (
	ledgerEntriesQuery = `
		SELECT t.id, t.site_id, t.employee_id, COALESCE(s.name, ''), t.type,
		       t.category, t.amount, t.date, t.description, t.is_paid
		FROM transactions t
		LEFT JOIN sites s ON s.id = t.site_id
		WHERE t.organization_id = $1
		  AND ($2::uuid IS NULL OR t.site_id = $2)
		ORDER BY t.date DESC`

	ledgerMaterialsQuery = `
		SELECT site_id, quantity, unit_price, total_price
		FROM materials
		WHERE organization_id = $1
		  AND ($2::uuid IS NULL OR site_id = $2)`

	ledgerLaborQuery = `
		SELECT a.user_id, COALESCE(p.full_name, ''), a.site_id, COALESCE(s.name, ''),
		       a.date, a.hours, a.hourly_rate_snapshot
		FROM attendance_logs a
		LEFT JOIN profiles p ON p.id = a.user_id
		LEFT JOIN sites s ON s.id = a.site_id
		WHERE a.organization_id = $1
		  AND ($2::uuid IS NULL OR a.site_id = $2)
		ORDER BY a.date DESC`

	ledgerSitesQuery = `
		SELECT id, name, status, budget
		FROM sites
		WHERE organization_id = $1
		  AND ($2::uuid IS NULL OR id = $2)
		  AND ($3::text[] IS NULL OR status = ANY($3))
		ORDER BY created_at DESC`
)

func (r *LedgerReader) Load(ctx context.Context, orgID uuid.UUID, filter LedgerFilter) (*LedgerData, error) {
	var (
		data LedgerData
		err  error
	)
	site, statuses := filter.args()

	data.Entries, err = collect(ctx, r.pool, ledgerEntriesQuery, scanEntry, orgID, site)
	if err != nil {
		return nil, fmt.Errorf("loading ledger entries: %w", err)
	}

	data.Materials, err = collect(ctx, r.pool, ledgerMaterialsQuery, scanMaterial, orgID, site)
	if err != nil {
		return nil, fmt.Errorf("loading ledger materials: %w", err)
	}

	data.Labor, err = collect(ctx, r.pool, ledgerLaborQuery, scanLabor, orgID, site)
	if err != nil {
		return nil, fmt.Errorf("loading ledger labor: %w", err)
	}

	data.Sites, err = collect(ctx, r.pool, ledgerSitesQuery, scanSite, orgID, site, statuses)
	if err != nil {
		return nil, fmt.Errorf("loading ledger sites: %w", err)
	}

	return &data, nil
}

func scanEntry(row pgx.CollectableRow) (ledger.Entry, error) {
	var e ledger.Entry
	err := row.Scan(&e.ID, &e.SiteID, &e.EmployeeID, &e.SiteName, &e.Type,
		&e.Category, &e.Amount, &e.Date, &e.Description, &e.Paid)
	return e, err
}

func scanMaterial(row pgx.CollectableRow) (ledger.Material, error) {
	var m ledger.Material
	err := row.Scan(&m.SiteID, &m.Quantity, &m.UnitPrice, &m.TotalPrice)
	return m, err
}

func scanLabor(row pgx.CollectableRow) (ledger.Labor, error) {
	var l ledger.Labor
	err := row.Scan(&l.EmployeeID, &l.EmployeeName, &l.SiteID, &l.SiteName,
		&l.Date, &l.Hours, &l.RateSnapshot)
	return l, err
}

func scanSite(row pgx.CollectableRow) (ledger.Site, error) {
	var s ledger.Site
	err := row.Scan(&s.ID, &s.Name, &s.Status, &s.Budget)
	return s, err
}

func collect[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan pgx.RowToFunc[T], args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}
