package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/signals/internal/application/adapter"
	"github.com/finance-tracker/signals/internal/domain/entity"
)

// maxErrorBody bounds how much of an upstream error body is kept in the error message.
const maxErrorBody = 512

// UpstreamRollupClient reads rollups from a remote finance backend that serves the
// alert, trend and report endpoints. Each call carries an access token minted for the user.
type UpstreamRollupClient struct {
	baseURL      string
	httpClient   *http.Client
	tokenService adapter.TokenService
}

var _ adapter.RollupSource = (*UpstreamRollupClient)(nil)

// NewUpstreamRollupClient creates a new client for the remote backend.
func NewUpstreamRollupClient(baseURL string, timeout time.Duration, tokenService adapter.TokenService) *UpstreamRollupClient {
	return &UpstreamRollupClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokenService: tokenService,
	}
}

// flexID accepts ids encoded either as JSON strings or numbers.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = flexID(n.String())
	return nil
}

type budgetAlertWire struct {
	CategoryID   flexID          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Level        entity.Level    `json:"level"`
	Message      string          `json:"message"`
	Planned      decimal.Decimal `json:"planned"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   float64         `json:"percentage"`
}

type dueDateAlertWire struct {
	ExpenseID   flexID          `json:"expense_id"`
	Description string          `json:"description"`
	Type        entity.DueType  `json:"type"`
	Level       entity.Level    `json:"level"`
	Message     string          `json:"message"`
	Value       decimal.Decimal `json:"value"`
	Days        int             `json:"days"`
}

type categoryTrendWire struct {
	CategoryID   flexID  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Variation    float64 `json:"variation"`
}

type trendReportWire struct {
	Variations     entity.TrendVariations `json:"variations"`
	CategoryTrends []categoryTrendWire    `json:"category_trends"`
}

type reportRowWire struct {
	CategoryID   flexID          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Planned      decimal.Decimal `json:"planned"`
	Realized     decimal.Decimal `json:"realized"`
	Percentage   float64         `json:"percentage"`
}

// BudgetAlerts fetches GET /api/alerts/budget.
func (c *UpstreamRollupClient) BudgetAlerts(ctx context.Context, userID uuid.UUID, period entity.Period) ([]entity.BudgetAlert, error) {
	var wire []budgetAlertWire
	if err := c.get(ctx, userID, "/api/alerts/budget", periodQuery(period), &wire); err != nil {
		return nil, err
	}

	alerts := make([]entity.BudgetAlert, len(wire))
	for i, w := range wire {
		alerts[i] = entity.BudgetAlert{
			CategoryID:   string(w.CategoryID),
			CategoryName: w.CategoryName,
			Level:        w.Level,
			Message:      w.Message,
			Planned:      w.Planned,
			Spent:        w.Spent,
			Percentage:   w.Percentage,
		}
	}
	return alerts, nil
}

// DueDateAlerts fetches GET /api/alerts/due-dates.
func (c *UpstreamRollupClient) DueDateAlerts(ctx context.Context, userID uuid.UUID) ([]entity.DueDateAlert, error) {
	var wire []dueDateAlertWire
	if err := c.get(ctx, userID, "/api/alerts/due-dates", nil, &wire); err != nil {
		return nil, err
	}

	alerts := make([]entity.DueDateAlert, len(wire))
	for i, w := range wire {
		alerts[i] = entity.DueDateAlert{
			ExpenseID:   string(w.ExpenseID),
			Description: w.Description,
			Type:        w.Type,
			Level:       w.Level,
			Message:     w.Message,
			Value:       w.Value,
			Days:        w.Days,
		}
	}
	return alerts, nil
}

// Trends fetches GET /api/analysis/trends.
func (c *UpstreamRollupClient) Trends(ctx context.Context, userID uuid.UUID, period entity.Period) (*entity.TrendReport, error) {
	var wire trendReportWire
	if err := c.get(ctx, userID, "/api/analysis/trends", periodQuery(period), &wire); err != nil {
		return nil, err
	}

	report := &entity.TrendReport{
		Variations:     wire.Variations,
		CategoryTrends: make([]entity.CategoryTrend, len(wire.CategoryTrends)),
	}
	for i, w := range wire.CategoryTrends {
		report.CategoryTrends[i] = entity.CategoryTrend{
			CategoryID:   string(w.CategoryID),
			CategoryName: w.CategoryName,
			Variation:    w.Variation,
		}
	}
	return report, nil
}

// CategoryReport fetches GET /api/reports/by-category.
func (c *UpstreamRollupClient) CategoryReport(ctx context.Context, userID uuid.UUID, period entity.Period, kind entity.EntryType) ([]entity.CategoryReportRow, error) {
	query := periodQuery(period)
	query.Set("type", string(kind))

	var wire []reportRowWire
	if err := c.get(ctx, userID, "/api/reports/by-category", query, &wire); err != nil {
		return nil, err
	}

	rows := make([]entity.CategoryReportRow, len(wire))
	for i, w := range wire {
		rows[i] = entity.CategoryReportRow{
			CategoryID:   string(w.CategoryID),
			CategoryName: w.CategoryName,
			Planned:      w.Planned,
			Realized:     w.Realized,
			Percentage:   w.Percentage,
		}
	}
	return rows, nil
}

func periodQuery(period entity.Period) url.Values {
	return url.Values{
		"month": []string{strconv.Itoa(period.Month)},
		"year":  []string{strconv.Itoa(period.Year)},
	}
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *UpstreamRollupClient) get(ctx context.Context, userID uuid.UUID, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	token, err := c.tokenService.GenerateAccessToken(ctx, userID, "")
	if err != nil {
		return fmt.Errorf("failed to mint upstream token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	slog.Debug("Upstream rollup fetched",
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
