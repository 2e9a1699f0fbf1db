package profile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Fetch retrieves a profile from a file path or an http(s) URL.
func Fetch(input string) (p *AthleteProfile, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	p, err = FetchWithContext(ctx, input)
	return p, err
}

// FetchWithContext retrieves a profile with context.
func FetchWithContext(ctx context.Context, input string) (p *AthleteProfile, err error) {
	// Check if input is a URL
	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		p, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch profile from URL: %s", input)
			return p, err
		}
		return p, err
	}

	// It's a file path - read from disk
	p, err = Load(input)

	return p, err
}

// fetchFromURL retrieves a profile document over HTTP.
func fetchFromURL(ctx context.Context, urlStr string) (p *AthleteProfile, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return p, err
	}

	req.Header.Set("User-Agent", "running-fit-tech/1.0")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return p, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return p, err
	}

	var data []byte
	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return p, err
	}

	var doc document
	err = json.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrap(err, "fetched content is not a valid profile")
		return p, err
	}

	p = fromDocument(doc)

	return p, err
}
