package fiveoneone

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// buildURL joins the endpoint onto the base URL and adds the API key to the
// query string alongside params. Endpoints may carry their own query.
func (c *Client) buildURL(endpoint string, params url.Values) (*url.URL, error) {
	u, err := url.Parse(c.baseURL + strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u, nil
}

// get performs the authenticated GET shared by every request kind. On success
// the caller owns resp.Body. A non-2xx status is turned into *HTTPError before
// the body is handed out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*http.Response, string, error) {
	u, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, endpoint, &TransportError{Op: "build request", URL: endpoint, Err: err}
	}
	safeURL := redactURL(u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, safeURL, &TransportError{Op: "build request", URL: safeURL, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full URL, key included.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return nil, safeURL, &TransportError{Op: "GET", URL: safeURL, Err: err}
	}

	log.Debug().Str("url", safeURL).Int("status", resp.StatusCode).Msg("511 response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, safeURL, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        safeURL,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, safeURL, nil
}

// requestJSON decodes a JSON response into out, which is usually a
// *value.Value. The body is read as UTF-8; a leading byte order mark is
// dropped since 511 prefixes its JSON with one.
func (c *Client) requestJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	resp, safeURL, err := c.get(ctx, endpoint, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	text := transform.NewReader(resp.Body, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	body, err := io.ReadAll(text)
	if err != nil {
		return &TransportError{Op: "read body", URL: safeURL, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Format: "json", Err: err}
	}
	log.Debug().Str("url", safeURL).Int("bytes", len(body)).Msg("decoded json")
	return nil
}

// requestBytes returns the raw response body.
func (c *Client) requestBytes(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	resp, safeURL, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", URL: safeURL, Err: err}
	}
	log.Debug().Str("url", safeURL).Int("bytes", len(body)).Msg("read body")
	return body, nil
}
