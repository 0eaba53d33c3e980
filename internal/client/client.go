// Package client is the authenticated HTTP wrapper over the occurrence
// backend. Every other component reaches the API through it. Requests carry
// the bearer token from the injected session context; there are no retries
// and no local caching, the backend is the sole source of truth.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sosdefesa/admin/internal/apperr"
	"github.com/sosdefesa/admin/internal/model"
	"github.com/sosdefesa/admin/internal/session"
	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Context
	logger     *zap.Logger
}

func New(baseURL string, sess *session.Context, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		session: sess,
		logger:  logger,
	}
}

// OccurrencePage is the shape of GET /api/ocorrencias/list.
type OccurrencePage struct {
	Results []model.Occurrence `json:"results"`
	Count   int                `json:"count"`
}

// CardSummary is the shape of the three dashboard card endpoints.
type CardSummary struct {
	Total            int     `json:"total"`
	Today            int     `json:"today"`
	YesterdayPercent float64 `json:"yesterdayPercent"`
	LastWeekPercent  float64 `json:"lastWeekPercent"`
}

// TypeCount is one slice of the type-distribution chart.
type TypeCount struct {
	Type  string `json:"tipo"`
	Count int    `json:"count"`
}

// MonthlyCount is one bucket of the monthly-distribution chart.
type MonthlyCount struct {
	Type  string `json:"tipo"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

// MediaFile is one attachment to upload.
type MediaFile struct {
	Name   string
	Reader io.Reader
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token. The backend expects a
// form-encoded body. The token is returned, not stored; storing it in the
// session context is the caller's decision.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var resp loginResponse
	if err := c.do(req, "/api/login", &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// Me returns the identity behind the current token. Any failure here is an
// authentication failure: the token is missing, expired or revoked.
func (c *Client) Me(ctx context.Context) (model.Me, error) {
	var me model.Me
	if err := c.getJSON(ctx, "/api/me", "/api/me", &me); err != nil {
		return model.Me{}, fmt.Errorf("%w: identity check failed: %v", apperr.ErrAuth, err)
	}
	return me, nil
}

// ListUsers returns the user roster from GET /api.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, "/api", "/api", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListOccurrences fetches one page of the occurrence listing.
func (c *Client) ListOccurrences(ctx context.Context, limit, offset int) (OccurrencePage, error) {
	var page OccurrencePage
	path := fmt.Sprintf("/api/ocorrencias/list?limit=%d&offset=%d", limit, offset)
	if err := c.getJSON(ctx, path, "/api/ocorrencias/list", &page); err != nil {
		return OccurrencePage{}, err
	}
	return page, nil
}

// GetOccurrence fetches the full record, feedback history and media included.
func (c *Client) GetOccurrence(ctx context.Context, id int64) (model.OccurrenceDetail, error) {
	var detail model.OccurrenceDetail
	path := fmt.Sprintf("/api/ocorrencia/%d/", id)
	if err := c.getJSON(ctx, path, "/api/ocorrencia/:id", &detail); err != nil {
		return model.OccurrenceDetail{}, err
	}
	return detail, nil
}

// CreateOccurrence posts a new record and returns it with its server-assigned id.
func (c *Client) CreateOccurrence(ctx context.Context, oc model.NewOccurrence) (model.OccurrenceDetail, error) {
	var created model.OccurrenceDetail
	if err := c.postJSON(ctx, "/api/ocorrencia/", "/api/ocorrencia", oc, &created); err != nil {
		return model.OccurrenceDetail{}, err
	}
	return created, nil
}

// DeleteOccurrence removes an occurrence. The backend cascades the deletion
// to its feedback and media.
func (c *Client) DeleteOccurrence(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/ocorrencia/%d/", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	return c.do(req, "/api/ocorrencia/:id", nil)
}

// FinalizeOccurrence requests the terminal transition.
func (c *Client) FinalizeOccurrence(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/ocorrencia/%d/finalizar", id)
	return c.postJSON(ctx, path, "/api/ocorrencia/:id/finalizar", nil, nil)
}

// CreateFeedback appends one status-transition event.
func (c *Client) CreateFeedback(ctx context.Context, fb model.Feedback) error {
	return c.postJSON(ctx, "/api/feedback/", "/api/feedback", fb, nil)
}

// UploadMedia attaches files to an occurrence as a multipart form with field
// name "midias". Media is immutable once uploaded.
func (c *Client) UploadMedia(ctx context.Context, occurrenceID int64, mediaType string, files []MediaFile) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("midias", f.Name)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}

	path := fmt.Sprintf("/api/midia/?ocorrencia_id=%d&tipo=%s", occurrenceID, url.QueryEscape(mediaType))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, "/api/midia", nil)
}

// ListLogs returns the audit log.
func (c *Client) ListLogs(ctx context.Context) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	if err := c.getJSON(ctx, "/api/registro", "/api/registro", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SessionsCard returns the access-count dashboard summary.
func (c *Client) SessionsCard(ctx context.Context) (CardSummary, error) {
	return c.card(ctx, "sessions-card")
}

// OccurrencesCard returns the occurrence-count dashboard summary.
func (c *Client) OccurrencesCard(ctx context.Context) (CardSummary, error) {
	return c.card(ctx, "ocorrencias-card")
}

// LikesCard returns the like-count dashboard summary.
func (c *Client) LikesCard(ctx context.Context) (CardSummary, error) {
	return c.card(ctx, "curtidas-card")
}

func (c *Client) card(ctx context.Context, name string) (CardSummary, error) {
	var card CardSummary
	path := "/api/dashboard/" + name
	if err := c.getJSON(ctx, path, path, &card); err != nil {
		return CardSummary{}, err
	}
	return card, nil
}

// PieChart returns the type-distribution series.
func (c *Client) PieChart(ctx context.Context) ([]TypeCount, error) {
	var resp struct {
		Data []TypeCount `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/dashboard/pie-chart", "/api/dashboard/pie-chart", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MonthlyChart returns the monthly-distribution series.
func (c *Client) MonthlyChart(ctx context.Context) ([]MonthlyCount, error) {
	var resp struct {
		Data []MonthlyCount `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/dashboard/monthly-chart", "/api/dashboard/monthly-chart", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	return c.do(req, endpoint, out)
}

func (c *Client) postJSON(ctx context.Context, path, endpoint string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

// do sends the request with the session's bearer token, records metrics and
// maps failures onto the error taxonomy: transport errors and non-2xx
// statuses are network failures, except 401 which is an auth failure.
func (c *Client) do(req *http.Request, endpoint string, out interface{}) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		recordRequest(req.Method, endpoint, "error", duration)
		return fmt.Errorf("%w: %v", apperr.ErrNetwork, err)
	}
	defer resp.Body.Close()
	recordRequest(req.Method, endpoint, fmt.Sprintf("%d", resp.StatusCode), duration)

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s returned status 401", apperr.ErrAuth, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: %s returned status %d: %s", apperr.ErrNetwork, endpoint, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", apperr.ErrNetwork, endpoint, err)
	}
	return nil
}
