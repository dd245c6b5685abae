// Package googletranslate translates short texts through the public
// translate_a/single endpoint.
package googletranslate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"
	"poi-finder-api/internal/provider"
)

const (
	DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"
	op              = "translate"
)

type Config struct {
	Endpoint  string
	UserAgent string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &Client{cfg: cfg, http: httpClient}
}

// Translate sends in.Text once and joins the translated segments in order.
func (c *Client) Translate(ctx context.Context, in models.TranslationRequest) (models.Translation, error) {
	if strings.TrimSpace(in.Text) == "" {
		return models.Translation{}, apperr.InvalidInput(op, "text cannot be empty")
	}

	values := url.Values{}
	values.Set("client", "gtx")
	values.Set("sl", in.SourceLang)
	values.Set("tl", in.TargetLang)
	values.Set("dt", "t")
	values.Set("q", in.Text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"?"+values.Encode(), nil)
	if err != nil {
		return models.Translation{}, apperr.ProviderError(op, err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	var payload []interface{}
	if err := provider.DoJSON(c.http, req, op, &payload); err != nil {
		return models.Translation{}, err
	}

	text, err := JoinSegments(payload)
	if err != nil {
		return models.Translation{}, apperr.ProviderError(op, err)
	}

	return models.Translation{
		Text:           in.Text,
		SourceLang:     in.SourceLang,
		TargetLang:     in.TargetLang,
		TranslatedText: text,
	}, nil
}

// JoinSegments concatenates payload[0][i][0] for every segment i.
func JoinSegments(payload []interface{}) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation payload")
	}
	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translation payload shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	return b.String(), nil
}
