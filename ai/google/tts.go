package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrEmptyAudio indicates the speech endpoint returned no audio bytes.
var ErrEmptyAudio = errors.New("empty audio result")

// The endpoint rejects long query strings, so text is split into chunks of at
// most this many runes before synthesis.
const maxTTSChunkRunes = 180

// Synthesize returns MP3 audio for the text in the given language tag.
// Long texts are synthesized chunk by chunk at sentence boundaries and the
// MPEG streams concatenated.
func (c *Client) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyAudio
	}

	var audio []byte
	for _, chunk := range splitTTSChunks(text, maxTTSChunkRunes) {
		part, err := c.synthesizeChunk(ctx, chunk, language)
		if err != nil {
			return nil, err
		}
		audio = append(audio, part...)
	}

	if len(audio) == 0 {
		return nil, ErrEmptyAudio
	}
	return audio, nil
}

func (c *Client) synthesizeChunk(ctx context.Context, chunk, language string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", language)
	params.Set("q", chunk)

	endpoint := c.ttsBase + "/translate_tts?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("speech request failed", "language", language, "err", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech endpoint returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// splitTTSChunks splits text into rune-bounded chunks, preferring sentence
// endings and falling back to word boundaries.
func splitTTSChunks(text string, maxRunes int) []string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentRunes := 0

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentRunes = 0
	}

	for _, word := range strings.Fields(text) {
		wordRunes := utf8.RuneCountInString(word)
		if currentRunes > 0 && currentRunes+wordRunes+1 > maxRunes {
			flush()
		}
		if currentRunes > 0 {
			current.WriteByte(' ')
			currentRunes++
		}
		current.WriteString(word)
		currentRunes += wordRunes

		// Prefer to break right after sentence-ending punctuation once the
		// chunk is reasonably full.
		if currentRunes >= maxRunes/2 && endsSentence(word) {
			flush()
		}
	}
	flush()

	return chunks
}

func endsSentence(word string) bool {
	for _, suffix := range []string{".", "!", "?", "।"} {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
