// Package upstream talks to the booking backend that owns confirmed
// reservations and promotional QR codes. All responses arrive in a
// {status, message, data} envelope.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nixjke/baz-car/internal/domain"
	"github.com/nixjke/baz-car/internal/logger"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// reservationRecord is the wire shape of a confirmed booking.
type reservationRecord struct {
	CarName   string `json:"carName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// QRRecord is a promotional QR code as the backend reports it.
type QRRecord struct {
	Code      string     `json:"code"`
	Discount  int        `json:"discount"`
	Active    bool       `json:"active"`
	ScanCount int        `json:"scanCount"`
	Visited   *time.Time `json:"visited,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchReservations returns confirmed bookings, optionally filtered to one
// vehicle. An error envelope degrades to an empty list so availability
// checks stay usable when the backend misbehaves.
func (c *Client) FetchReservations(ctx context.Context, vehicleName string) ([]domain.ExistingReservation, error) {
	endpoint := c.baseURL + "/bookings"
	if vehicleName != "" {
		endpoint += "?" + url.Values{"carName": {vehicleName}}.Encode()
	}

	env, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if env.Status == statusError {
		logger.Warn("Booking backend returned an error envelope", "message", env.Message)
		return []domain.ExistingReservation{}, nil
	}

	var records []reservationRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse reservations: %w", err)
	}

	reservations := make([]domain.ExistingReservation, 0, len(records))
	for _, rec := range records {
		start, err := time.Parse("2006-01-02", rec.StartDate)
		if err != nil {
			logger.Warn("Skipping reservation with malformed start date", "car", rec.CarName, "start", rec.StartDate)
			continue
		}
		end, err := time.Parse("2006-01-02", rec.EndDate)
		if err != nil {
			logger.Warn("Skipping reservation with malformed end date", "car", rec.CarName, "end", rec.EndDate)
			continue
		}
		reservations = append(reservations, domain.ExistingReservation{
			VehicleID: rec.CarName,
			Start:     start,
			End:       end,
		})
	}
	return reservations, nil
}

// VerifyQR looks up a single QR code.
func (c *Client) VerifyQR(ctx context.Context, code string) (*QRRecord, error) {
	env, err := c.get(ctx, c.baseURL+"/qr/verify/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}
	if env.Status == statusError {
		return nil, fmt.Errorf("qr verification failed: %s", env.Message)
	}

	var record QRRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse qr record: %w", err)
	}
	return &record, nil
}

// ListQRCodes returns every known QR code.
func (c *Client) ListQRCodes(ctx context.Context) ([]QRRecord, error) {
	env, err := c.get(ctx, c.baseURL+"/qr/verify/all")
	if err != nil {
		return nil, err
	}
	if env.Status == statusError {
		return nil, fmt.Errorf("qr listing failed: %s", env.Message)
	}

	var records []QRRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse qr records: %w", err)
	}
	return records, nil
}

// ActivateQR activates a promotional code and returns its updated record.
func (c *Client) ActivateQR(ctx context.Context, code string) (*QRRecord, error) {
	env, err := c.post(ctx, c.baseURL+"/qr/activate/"+url.PathEscape(code))
	if err != nil {
		return nil, err
	}
	if env.Status == statusError {
		return nil, fmt.Errorf("qr activation failed: %s", env.Message)
	}

	var record QRRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse qr record: %w", err)
	}
	return &record, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*envelope, error) {
	return c.do(ctx, http.MethodGet, endpoint)
}

func (c *Client) post(ctx context.Context, endpoint string) (*envelope, error) {
	return c.do(ctx, http.MethodPost, endpoint)
}

func (c *Client) do(ctx context.Context, method, endpoint string) (*envelope, error) {
	start := time.Now()
	logger.UpstreamCall(method, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.UpstreamResult(method, err, "url", endpoint, "duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("booking backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	logger.UpstreamResult(method, err, "url", endpoint, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unexpected response from booking backend (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("booking backend error (status %d): %s", resp.StatusCode, env.Message)
	}
	return &env, nil
}
