package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrEmptyTranslation indicates the endpoint returned no translated segments.
	ErrEmptyTranslation = errors.New("empty translation result")

	// ErrUnexpectedPayload indicates the endpoint response could not be parsed.
	ErrUnexpectedPayload = errors.New("unexpected translation payload")
)

// Translate converts text from the source language to the target language.
// Source may be "auto" or empty to let the endpoint detect it.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	translated, _, err := c.translate(ctx, text, source, target)
	return translated, err
}

// Detect returns an ISO 639-1 language code for the text. The translation
// endpoint reports the detected source language alongside the translation, so
// detection is a translate call with an auto source.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	_, detected, err := c.translate(ctx, text, "auto", "en")
	if err != nil {
		return "", err
	}
	if detected == "" {
		return "", ErrUnexpectedPayload
	}
	return detected, nil
}

// translate performs one call against the translate_a/single endpoint and
// returns both the joined translation and the detected source language.
func (c *Client) translate(ctx context.Context, text, source, target string) (string, string, error) {
	if source == "" {
		source = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := c.translateBase + "/translate_a/single?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("translation request failed", "source", source, "target", target, "err", err)
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("translation endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	return parseTranslatePayload(body)
}

// parseTranslatePayload decodes the nested-array response of
// translate_a/single. The payload looks like:
//
//	[[["translated","original",...], ...], null, "hi", ...]
//
// Index 0 holds the translated segments, index 2 the detected source language.
func parseTranslatePayload(body []byte) (string, string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}
	if len(payload) == 0 {
		return "", "", ErrUnexpectedPayload
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", "", ErrUnexpectedPayload
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}

	translated := b.String()
	if translated == "" {
		return "", "", ErrEmptyTranslation
	}

	detected := ""
	if len(payload) > 2 {
		if s, ok := payload[2].(string); ok {
			detected = s
		}
	}

	return translated, detected, nil
}
