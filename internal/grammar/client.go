// Package grammar provides a best-effort grammar correction client for the
// improved-resume draft. Correction is optional and external: any failure,
// timeout, or oversized input returns the original text unchanged.
package grammar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// DefaultAPIURL is the public LanguageTool endpoint.
const DefaultAPIURL = "https://api.languagetool.org/v2/check"

const defaultTimeout = 8 * time.Second
const defaultMaxChars = 9000
const defaultLanguage = "en-US"

// Client corrects text against a LanguageTool-compatible API.
type Client struct {
	// Enabled gates all network activity; a disabled client is a no-op.
	Enabled bool
	// APIURL overrides DefaultAPIURL when set.
	APIURL string
	// Language is the check language (default "en-US").
	Language string
	// MaxChars skips correction for longer inputs (default 9000).
	MaxChars int
	// Timeout bounds the API call (default 8s).
	Timeout time.Duration
	// HTTPClient overrides the default http.Client, mainly for tests.
	HTTPClient *http.Client
}

type ltReplacement struct {
	Value string `json:"value"`
}

type ltMatch struct {
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	Replacements []ltReplacement `json:"replacements"`
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

// Correct returns the corrected text, or the input unchanged when the client
// is disabled, the input is too long, or anything goes wrong.
func (c *Client) Correct(ctx context.Context, text string) string {
	if c == nil || !c.Enabled || text == "" {
		return text
	}

	maxChars := c.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	if len(text) > maxChars {
		return text
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	apiURL := c.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	language := c.Language
	if language == "" {
		language = defaultLanguage
	}

	form := url.Values{
		"text":     {text},
		"language": {language},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return text
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return text
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return text
	}
	if len(parsed.Matches) == 0 {
		return text
	}

	return applyReplacements(text, parsed.Matches)
}

// applyReplacements applies the first replacement of each match, walking
// right to left so earlier offsets stay valid.
func applyReplacements(text string, matches []ltMatch) string {
	valid := make([]ltMatch, 0, len(matches))
	for _, m := range matches {
		if m.Length > 0 && len(m.Replacements) > 0 {
			valid = append(valid, m)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Offset > valid[j].Offset
	})

	out := text
	for _, m := range valid {
		start, end := m.Offset, m.Offset+m.Length
		if start < 0 || end > len(out) || start >= end {
			continue
		}
		out = out[:start] + m.Replacements[0].Value + out[end:]
	}
	return out
}
