// Package client is a Go client for the sitebook API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/dangerclosesec/sitebook/core/entitlement"
	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
)

// ErrPaymentRequired is returned when the organization's trial has ended.
var ErrPaymentRequired = errors.New("subscription required")

// Config represents the configuration for the sitebook client
type Config struct {
	// BaseURL is the server root, without the /api prefix
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to one sitebook server on behalf of one signed-in member.
type Client struct {
	config *Config
	client *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// SetToken sets the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// APIError defines a standardized error response from the API
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (Status: %d)", e.Message, e.StatusCode)
}

// Unwrap lets callers test a lapsed trial with errors.Is(err, ErrPaymentRequired).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusPaymentRequired {
		return ErrPaymentRequired
	}
	return nil
}

// Signup registers and stores the returned token.
func (c *Client) Signup(ctx context.Context, req service.SignupInput) (*service.AuthOutput, error) {
	var resp service.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Login signs in and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*service.AuthOutput, error) {
	var resp service.AuthOutput
	req := service.LoginInput{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.SetToken(resp.Token)
	return &resp, nil
}

// Logout drops the server-side session cache and forgets the token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	c.SetToken("")
	return nil
}

func (c *Client) Session(ctx context.Context) (*service.AppContext, error) {
	var resp service.AppContext
	if err := c.do(ctx, http.MethodGet, "/session", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Subscription(ctx context.Context) (*entitlement.Decision, error) {
	var resp entitlement.Decision
	if err := c.do(ctx, http.MethodGet, "/subscription", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ActivateSubscription moves the organization to the paid plan and returns
// the refreshed context.
func (c *Client) ActivateSubscription(ctx context.Context) (*service.AppContext, error) {
	var resp service.AppContext
	if err := c.do(ctx, http.MethodPost, "/subscription/activate", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSites returns the sites of a board tab; an empty group lists all.
func (c *Client) ListSites(ctx context.Context, group model.SiteGroup) ([]model.Site, error) {
	path := "/sites"
	if group != "" {
		path += "?group=" + url.QueryEscape(string(group))
	}
	var resp []model.Site
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateSite(ctx context.Context, req service.SiteInput) (*model.Site, error) {
	var resp model.Site
	if err := c.do(ctx, http.MethodPost, "/sites", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetSite(ctx context.Context, siteID uuid.UUID) (*model.Site, error) {
	var resp model.Site
	if err := c.do(ctx, http.MethodGet, "/sites/"+siteID.String(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SiteRollup(ctx context.Context, siteID uuid.UUID) (*ledger.SiteRollup, error) {
	var resp ledger.SiteRollup
	if err := c.do(ctx, http.MethodGet, "/sites/"+siteID.String()+"/rollup", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListTransactions(ctx context.Context, year int) ([]model.Transaction, error) {
	var resp []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions?year="+strconv.Itoa(year), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req service.TransactionInput) (*model.Transaction, error) {
	var resp model.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetPaid stores the paid flag of a transaction on the server.
func (c *Client) SetPaid(ctx context.Context, id uuid.UUID, paid bool) (*model.Transaction, error) {
	var resp model.Transaction
	req := map[string]bool{"is_paid": paid}
	if err := c.do(ctx, http.MethodPut, "/transactions/"+id.String()+"/paid", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) FinanceOverview(ctx context.Context, year int) (*ledger.FinanceOverview, error) {
	var resp ledger.FinanceOverview
	if err := c.do(ctx, http.MethodGet, "/finance/overview?year="+strconv.Itoa(year), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportTransactions copies the year's CSV export to w.
func (c *Client) ExportTransactions(ctx context.Context, year int, w io.Writer) error {
	resp, cancel, err := c.send(ctx, http.MethodGet, "/transactions/export?year="+strconv.Itoa(year), nil)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	return nil
}

func (c *Client) CreateQuote(ctx context.Context, req service.QuoteInput) (*model.Quote, error) {
	var resp model.Quote
	if err := c.do(ctx, http.MethodPost, "/quotes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NewQuote starts a draft dated today with one blank line. Compose it with
// the draft's item methods and save it with SubmitQuote.
func (c *Client) NewQuote() *quote.Draft {
	return quote.NewDraft(time.Now(), nil)
}

// FillQuoteFromSite links draft to a site and copies the site's client once.
func (c *Client) FillQuoteFromSite(ctx context.Context, draft *quote.Draft, siteID uuid.UUID) error {
	site, err := c.GetSite(ctx, siteID)
	if err != nil {
		return err
	}
	draft.ApplySite(quote.Site{ID: site.ID, ClientName: site.ClientName, Address: site.Address})
	return nil
}

// SubmitQuote checks draft locally and saves its header and items.
func (c *Client) SubmitQuote(ctx context.Context, draft *quote.Draft) (*model.Quote, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	issued := draft.IssueDate
	return c.CreateQuote(ctx, service.QuoteInput{
		SiteID:        draft.SiteID,
		Number:        draft.Number,
		ClientName:    draft.ClientName,
		ClientAddress: draft.ClientAddress,
		Status:        draft.Status,
		IssueDate:     &issued,
		ValidUntil:    draft.ValidUntil,
		Notes:         draft.Notes,
		Items:         draft.Items(),
	})
}

// Calendar returns the week containing date, laid out in date's location.
func (c *Client) Calendar(ctx context.Context, date time.Time) (*service.Calendar, error) {
	q := url.Values{}
	q.Set("date", date.Format(time.DateOnly))
	q.Set("tz", zoneParam(date))

	var resp service.Calendar
	if err := c.do(ctx, http.MethodGet, "/calendar?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateTask(ctx context.Context, req service.TaskInput) (*model.Task, error) {
	var resp model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RescheduleTask(ctx context.Context, id uuid.UUID, day time.Time, hour int) (*model.Task, error) {
	var resp model.Task
	req := service.RescheduleInput{Day: day, Hour: hour}
	if err := c.do(ctx, http.MethodPost, "/tasks/"+id.String()+"/reschedule", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Payroll(ctx context.Context, memberID uuid.UUID) (*service.PayrollSummary, error) {
	var resp service.PayrollSummary
	if err := c.do(ctx, http.MethodGet, "/team/"+memberID.String()+"/payroll", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Payout(ctx context.Context, memberID uuid.UUID, req service.PayoutInput) (*model.Transaction, error) {
	var resp model.Transaction
	if err := c.do(ctx, http.MethodPost, "/team/"+memberID.String()+"/payouts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogHours records the signed-in member's attendance on an active site.
func (c *Client) LogHours(ctx context.Context, req service.AttendanceInput) (*model.AttendanceLog, error) {
	var resp model.AttendanceLog
	if err := c.do(ctx, http.MethodPost, "/worker/logs", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analytics returns the organization report. A non-empty group limits the
// site leaderboard to that tab of the projects board.
func (c *Client) Analytics(ctx context.Context, group model.SiteGroup) (*ledger.Analytics, error) {
	path := "/analytics"
	if group != "" {
		path += "?group=" + url.QueryEscape(string(group))
	}
	var resp ledger.Analytics
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Dashboard(ctx context.Context) (*service.Dashboard, error) {
	var resp service.Dashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Board loads the week around date into a board that applies moves locally
// before the server confirms them.
func (c *Client) Board(ctx context.Context, date time.Time) (*schedule.Board, error) {
	cal, err := c.Calendar(ctx, date)
	if err != nil {
		return nil, err
	}
	tasks := make([]schedule.Task, len(cal.Tasks))
	for i := range cal.Tasks {
		tasks[i] = cal.Tasks[i].Slot().In(date.Location())
	}
	return schedule.NewBoard(cal.Grid, tasks), nil
}

// MoveTask moves a task on board and persists the move. A rejected move is
// rolled back on the board and its error returned.
func (c *Client) MoveTask(ctx context.Context, board *schedule.Board, id uuid.UUID, day time.Time, hour int) (schedule.Task, error) {
	return board.Move(ctx, id, day, hour, func(ctx context.Context, t schedule.Task) error {
		_, err := c.RescheduleTask(ctx, t.ID, day, hour)
		return err
	})
}

// Book loads the year's transactions into a working copy for optimistic
// paid toggles.
func (c *Client) Book(ctx context.Context, year int) (*ledger.Book, error) {
	rows, err := c.ListTransactions(ctx, year)
	if err != nil {
		return nil, err
	}
	entries := make([]ledger.Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].Entry()
	}
	return ledger.NewBook(entries), nil
}

// TogglePaidIn flips an entry in book and stores the flipped value on the
// server, reverting the local flip when the server refuses.
func (c *Client) TogglePaidIn(ctx context.Context, book *ledger.Book, id uuid.UUID) error {
	return book.TogglePaid(ctx, id, func(ctx context.Context, e ledger.Entry) error {
		t, err := c.SetPaid(ctx, e.ID, e.Paid)
		if err != nil {
			return err
		}
		if t.IsPaid != e.Paid {
			return fmt.Errorf("transaction %s stored paid=%t, sent %t", e.ID, t.IsPaid, e.Paid)
		}
		return nil
	})
}

// zoneParam names t's location for the server: the IANA name when it is
// loadable, otherwise the UTC offset at t.
func zoneParam(t time.Time) string {
	name := t.Location().String()
	if name != "" && name != "Local" {
		if _, err := time.LoadLocation(name); err == nil {
			return name
		}
	}
	return t.Format("-07:00")
}

// do sends a JSON request to path under /api and decodes the JSON response
// into resp when resp is not nil.
func (c *Client) do(ctx context.Context, method, path string, req interface{}, resp interface{}) error {
	httpResp, cancel, err := c.send(ctx, method, path, req)
	if err != nil {
		return err
	}
	defer cancel()
	defer httpResp.Body.Close()

	if resp == nil || httpResp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// send performs the request and returns the response of a 2xx status. The
// caller closes the body and then calls cancel.
func (c *Client) send(ctx context.Context, method, path string, req interface{}) (*http.Response, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if c.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
	}

	var body io.Reader
	if req != nil {
		reqBody, err := json.Marshal(req)
		if err != nil {
			cancel()
			return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+"/api"+path, body)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to send request: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		defer cancel()
		defer httpResp.Body.Close()

		var apiErr APIError
		if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status code %d", httpResp.StatusCode)
		}
		apiErr.StatusCode = httpResp.StatusCode
		return nil, nil, &apiErr
	}

	return httpResp, cancel, nil
}
