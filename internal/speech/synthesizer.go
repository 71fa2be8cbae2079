// internal/speech/synthesizer.go
// Briefing suara via OpenAI speech synthesis (PCM 24 kHz mono, base64)

package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// SampleRate adalah sample rate PCM yang dikembalikan backend.
const SampleRate = 24000

// BriefingScript menyusun naskah briefing secara deterministik dari
// kondisi terkini yang sudah dinormalisasi. Temperatur dibulatkan.
func BriefingScript(city string, temperature float64, condition, description string) string {
	return fmt.Sprintf(
		"Here is your weather briefing for %s. It is currently %d degrees with %s. %s. Have a nice day.",
		city, int(math.Round(temperature)), strings.ToLower(condition), description,
	)
}

type Client struct {
	api   *openai.Client
	model string
	voice string
}

// NewClient membuat klien speech. apiBase opsional untuk proxy/self-hosted.
func NewClient(apiKey, apiBase, model, voice string) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, errors.New("speech API key not set")
	}

	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(apiBase); base != "" {
		cfg.BaseURL = base
	}
	if model == "" {
		model = string(openai.TTSModel1)
	}
	if voice == "" {
		voice = string(openai.VoiceAlloy)
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		voice: voice,
	}, nil
}

// Synthesize mengembalikan audio linear PCM sebagai base64.
// Error di sini tidak pernah menggagalkan lookup; pemanggil menelannya.
func (c *Client) Synthesize(ctx context.Context, script string) (string, error) {
	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.model),
		Input:          script,
		Voice:          openai.SpeechVoice(c.voice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
	})
	if err != nil {
		return "", fmt.Errorf("speech synthesis: %w", err)
	}
	defer resp.Close()

	raw, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("read speech audio: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("speech backend returned no audio")
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
