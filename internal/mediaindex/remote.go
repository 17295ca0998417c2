// Remote media index [Service] implementation.
//
// Communicates with a media index daemon exposing a small JSON API:
// GET /api/tracks for queries, DELETE /api/tracks for single and batch
// deletes. Denied deletes come back as 403 responses that may carry a
// recoverable consent action.
package mediaindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/emberfm/ember/internal/library"
	"github.com/emberfm/ember/internal/shared"
	"golang.org/x/time/rate"
)

const defaultRemoteBaseURL string = "http://127.0.0.1:8090"

// remoteRow mirrors the daemon's track representation.
type remoteRow struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Artist         string `json:"artist"`
	Album          string `json:"album"`
	MIMEType       string `json:"mime_type"`
	Locator        string `json:"locator"`
	DurationMillis int64  `json:"duration_ms"`
	DateModified   int64  `json:"date_modified"`
}

// remoteDenial is the daemon's 403 payload for denied deletes.
type remoteDenial struct {
	Detail      string   `json:"detail"`
	Recoverable bool     `json:"recoverable"`
	Locators    []string `json:"locators"`
}

// Remote implements [Service] against a media index daemon over HTTP.
//
// Requests are paced with a [rate.Limiter] so bulk scans do not overwhelm
// the daemon.
type Remote struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Service = (*Remote)(nil)

// NewRemote creates a new remote media index client.
//
// requestRate is the allowed requests per second; values <= 0 fall back to 5.
func NewRemote(baseURL string, client *http.Client, requestRate float64) *Remote {
	if baseURL == "" {
		baseURL = defaultRemoteBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if requestRate <= 0 {
		requestRate = 5.0
	}

	return &Remote{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(requestRate), 1),
	}
}

func (r *Remote) Name() string { return "remote" }

// Capabilities reports the per-item recoverable tier: the daemon attempts
// deletes directly and answers denials with a consent action.
func (r *Remote) Capabilities() Capabilities {
	return Capabilities{Deletion: library.PerItemConsentRecoverable}
}

// Query calls GET /api/tracks with the request mapped to query parameters.
func (r *Remote) Query(ctx context.Context, req QueryRequest) ([]Row, error) {
	params := url.Values{}
	if req.MusicOnly {
		params.Set("music", "1")
	}
	if req.SortByTitle {
		params.Set("sort", "title")
	}
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}

	endpoint := "/api/tracks"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var raw []remoteRow
	if err := r.doRequest(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrScanUnavailable, err)
	}

	rows := make([]Row, len(raw))
	for i, rr := range raw {
		rows[i] = Row(rr)
	}
	return rows, nil
}

// Delete calls DELETE /api/tracks for a single locator.
func (r *Remote) Delete(ctx context.Context, locator string) error {
	return r.deleteLocators(ctx, []string{locator})
}

// DeleteBatch calls DELETE /api/tracks with all locators in one request.
func (r *Remote) DeleteBatch(ctx context.Context, locators []string) error {
	return r.deleteLocators(ctx, locators)
}

func (r *Remote) deleteLocators(ctx context.Context, locators []string) error {
	body, err := json.Marshal(struct {
		Locators []string `json:"locators"`
	}{locators})
	if err != nil {
		return fmt.Errorf("failed to marshal delete request: %w", err)
	}

	err = r.doRequest(ctx, http.MethodDelete, "/api/tracks", body, nil)
	if err == nil {
		return nil
	}

	if denied, ok := err.(*deniedError); ok {
		perr := &PermissionError{
			Locator:     locators[0],
			Recoverable: denied.payload.Recoverable,
			Err:         fmt.Errorf("%s", denied.payload.Detail),
		}
		if denied.payload.Recoverable {
			consentLocators := denied.payload.Locators
			if len(consentLocators) == 0 {
				consentLocators = locators
			}
			perr.Consent = &ConsentAction{Locators: consentLocators, Reason: denied.payload.Detail}
		}
		return perr
	}

	return err
}

// deniedError carries the decoded 403 payload through doRequest.
type deniedError struct {
	payload remoteDenial
}

func (e *deniedError) Error() string {
	return fmt.Sprintf("media index denied request: %s", e.payload.Detail)
}

func (r *Remote) doRequest(ctx context.Context, method, endpoint string, body []byte, result any) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return err
	}

	apiURL := r.baseURL + endpoint

	var reqBody *bytes.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		var denial remoteDenial
		if err := json.NewDecoder(resp.Body).Decode(&denial); err != nil {
			denial.Detail = "permission denied"
		}
		return &deniedError{payload: denial}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("media index API error (status %d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("media index API error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
