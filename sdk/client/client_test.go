package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/dangerclosesec/sitebook/core/quote"
	"github.com/dangerclosesec/sitebook/core/schedule"
	"github.com/dangerclosesec/sitebook/internal/model"
	"github.com/dangerclosesec/sitebook/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewClient(t *testing.T) {
	client := NewClient(nil)
	if client.config.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default BaseURL, got %s", client.config.BaseURL)
	}
	if client.client != http.DefaultClient {
		t.Error("Expected default HTTP client")
	}

	customConfig := &Config{
		BaseURL:    "http://example.com",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
	client = NewClient(customConfig)
	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected custom timeout, got %v", client.config.Timeout)
	}
	if client.client != customConfig.HTTPClient {
		t.Error("Expected custom HTTP client")
	}
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST request, got %s", r.Method)
			}
			var req service.LoginInput
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("Failed to decode request: %v", err)
			}
			if req.Email != "jan@novak.sk" {
				t.Errorf("Expected email jan@novak.sk, got %s", req.Email)
			}
			json.NewEncoder(w).Encode(service.AuthOutput{Token: "tok-123"})
		case "/api/session":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("Expected bearer token, got %q", got)
			}
			json.NewEncoder(w).Encode(service.AppContext{Organization: &model.Organization{Name: "Stavby Novák"}})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	if _, err := client.Login(context.Background(), "jan@novak.sk", "secret123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	app, err := client.Session(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if app.Organization.Name != "Stavby Novák" {
		t.Errorf("Expected organization name, got %q", app.Organization.Name)
	}
}

func TestPaymentRequired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"trial has ended, activate a subscription to continue"}`))
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.ListSites(context.Background(), model.GroupActive)
	if !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("Expected ErrPaymentRequired, got %v", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T", err)
	}
	if apiErr.Message != "trial has ended, activate a subscription to continue" {
		t.Errorf("Unexpected message %q", apiErr.Message)
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	_, err := client.Dashboard(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", apiErr.StatusCode)
	}
	if errors.Is(err, ErrPaymentRequired) {
		t.Error("A server error is not a lapsed trial")
	}
}

// calendarServer serves one task on Monday 09:00-11:00 and answers
// reschedule requests with status.
func calendarServer(t *testing.T, taskID uuid.UUID, status int) *httptest.Server {
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/calendar":
			json.NewEncoder(w).Encode(service.Calendar{
				Grid: schedule.DefaultGrid(),
				Tasks: []model.Task{{
					ID:        taskID,
					Title:     "Betónovanie",
					StartDate: monday.Add(9 * time.Hour),
					EndDate:   monday.Add(11 * time.Hour),
				}},
			})
		case r.URL.Path == "/api/tasks/"+taskID.String()+"/reschedule":
			w.WriteHeader(status)
			if status >= 300 {
				w.Write([]byte(`{"error":"task not found"}`))
				return
			}
			w.Write([]byte(`{}`))
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
}

func TestMoveTask(t *testing.T) {
	taskID := uuid.New()
	wednesday := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)

	t.Run("persisted", func(t *testing.T) {
		server := calendarServer(t, taskID, http.StatusOK)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		board, err := client.Board(context.Background(), wednesday)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		moved, err := client.MoveTask(context.Background(), board, taskID, wednesday, 14)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if moved.Start.Hour() != 14 || moved.Duration() != 2*time.Hour {
			t.Errorf("Expected 14:00 for 2h, got %v for %v", moved.Start, moved.Duration())
		}
		if got := board.Tasks()[0].Start; !got.Equal(moved.Start) {
			t.Errorf("Expected board to keep the move, got %v", got)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		server := calendarServer(t, taskID, http.StatusNotFound)
		defer server.Close()

		client := NewClient(&Config{BaseURL: server.URL})
		board, err := client.Board(context.Background(), wednesday)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		before := board.Tasks()[0]

		if _, err := client.MoveTask(context.Background(), board, taskID, wednesday, 14); err == nil {
			t.Fatal("Expected error for rejected move")
		}
		if after := board.Tasks()[0]; !after.Start.Equal(before.Start) || !after.End.Equal(before.End) {
			t.Errorf("Expected move to be rolled back, got %v-%v", after.Start, after.End)
		}
	})
}

func TestCalendarSendsZone(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"offset", time.Date(2025, time.June, 4, 0, 0, 0, 0, time.FixedZone("", 2*60*60)), "+02:00"},
		{"utc", time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("tz"); got != tt.want {
					t.Errorf("Expected tz=%s, got %q", tt.want, got)
				}
				if got := r.URL.Query().Get("date"); got != "2025-06-04" {
					t.Errorf("Expected date=2025-06-04, got %q", got)
				}
				json.NewEncoder(w).Encode(service.Calendar{Grid: schedule.DefaultGrid()})
			}))
			defer server.Close()

			client := NewClient(&Config{BaseURL: server.URL})
			if _, err := client.Calendar(context.Background(), tt.date); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
		})
	}
}

func TestTogglePaidInRevertsOnFailure(t *testing.T) {
	invoiceID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/transactions":
			json.NewEncoder(w).Encode([]model.Transaction{{
				ID:       invoiceID,
				Type:     ledger.EntryInvoice,
				Category: "Fakturácia",
				Amount:   decimal.NewFromInt(800),
			}})
		case "/api/transactions/" + invoiceID.String() + "/paid":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Internal server error"}`))
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	book, err := client.Book(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := client.TogglePaidIn(context.Background(), book, invoiceID); err == nil {
		t.Fatal("Expected error from failed toggle")
	}

	total, count := book.Unpaid()
	if count != 1 || !total.Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected the invoice to stay unpaid, got %s in %d", total, count)
	}
}

func TestTogglePaidInSendsFlippedValue(t *testing.T) {
	invoiceID := uuid.New()
	stored := true
	var sent []bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/transactions":
			// The list is stale: the invoice was paid elsewhere after it was read.
			json.NewEncoder(w).Encode([]model.Transaction{{
				ID:     invoiceID,
				Type:   ledger.EntryInvoice,
				Amount: decimal.NewFromInt(800),
			}})
		case "/api/transactions/" + invoiceID.String() + "/paid":
			var req struct {
				IsPaid *bool `json:"is_paid"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsPaid == nil {
				t.Errorf("Expected is_paid in body, got %v", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			sent = append(sent, *req.IsPaid)
			stored = *req.IsPaid
			json.NewEncoder(w).Encode(model.Transaction{ID: invoiceID, Type: ledger.EntryInvoice, IsPaid: stored})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	book, err := client.Book(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := client.TogglePaidIn(context.Background(), book, invoiceID); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		local := book.Entries()[0].Paid
		if local != stored {
			t.Errorf("Expected local paid=%t to match server paid=%t", local, stored)
		}
	}
	if len(sent) != 2 || !sent[0] || sent[1] {
		t.Errorf("Expected is_paid true then false, got %v", sent)
	}
}

func TestSubmitQuoteFromDraft(t *testing.T) {
	siteID := uuid.New()
	var got service.QuoteInput

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sites/" + siteID.String():
			json.NewEncoder(w).Encode(model.Site{ID: siteID, ClientName: "Mária Kováčová", Address: "Hlavná 12, Trnava"})
		case "/api/quotes":
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("Expected quote body, got %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(model.Quote{Number: got.Number, TotalAmount: decimal.NewFromInt(1250)})
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(&Config{BaseURL: server.URL})
	draft := client.NewQuote()

	if _, err := client.SubmitQuote(context.Background(), draft); err == nil {
		t.Fatal("Expected the blank line to be rejected before sending")
	}

	if err := draft.UpdateItem(0, quote.Item{Description: "Murovanie", Quantity: decimal.NewFromInt(25), UnitPrice: decimal.NewFromInt(40)}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	draft.AddItem(quote.Item{Description: "Doprava", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(250)})
	draft.AddItem(quote.Item{Description: "Lešenie", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(90)})
	if err := draft.RemoveItem(2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := client.FillQuoteFromSite(context.Background(), draft, siteID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	saved, err := client.SubmitQuote(context.Background(), draft)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !saved.TotalAmount.Equal(draft.Total()) {
		t.Errorf("Expected total %s, got %s", draft.Total(), saved.TotalAmount)
	}
	if len(got.Items) != 2 || got.Items[1].Unit != quote.DefaultUnit {
		t.Errorf("Expected two items with default unit, got %+v", got.Items)
	}
	if got.ClientName != "Mária Kováčová" || got.SiteID == nil || *got.SiteID != siteID {
		t.Errorf("Expected site client to be copied, got %q %v", got.ClientName, got.SiteID)
	}
	if got.Number != draft.Number || got.IssueDate == nil {
		t.Errorf("Expected number and issue date from the draft, got %q %v", got.Number, got.IssueDate)
	}
}

func TestExportTransactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("year") != "2025" {
			t.Errorf("Expected year=2025, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte("Dátum;Typ\n2025-03-03;Príjem\n"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	client := NewClient(&Config{BaseURL: server.URL})
	if err := client.ExportTransactions(context.Background(), 2025, &buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if buf.String() != "Dátum;Typ\n2025-03-03;Príjem\n" {
		t.Errorf("Unexpected export %q", buf.String())
	}
}
