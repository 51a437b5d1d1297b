// internal/service/preview_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrGenerationFailed wraps any AI backend failure.
var ErrGenerationFailed = errors.New("content generation failed")

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_planner_ai_requests_total",
			Help: "Total number of requests to the AI API.",
		},
		[]string{"model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaign_planner_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

// AIClient generates marketing copy from a prompt pair.
type AIClient interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// PreviewService turns a resolved campaign payload into draft content.
type PreviewService struct {
	AI     AIClient
	Logger *zap.Logger
}

const systemPrompt = `You are a marketing copywriter. Write a single social media post for the campaign described by the user. Return only the post text, no commentary.`

// GeneratePreview builds a prompt from the resolved payload and asks the AI
// backend for draft content.
func (s *PreviewService) GeneratePreview(ctx context.Context, in *CampaignInput) (string, error) {
	text, err := s.AI.GenerateText(ctx, systemPrompt, buildPrompt(in))
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("preview generation failed", zap.String("campaign", in.Name), zap.Error(err))
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return text, nil
}

func buildPrompt(in *CampaignInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Campaign: %s\n", in.Name)
	fmt.Fprintf(&b, "Goal: %s\n", in.Goal)
	fmt.Fprintf(&b, "Audience: %s\n", in.Audience)
	fmt.Fprintf(&b, "Platform: %s\n", in.Platform)
	fmt.Fprintf(&b, "Tone: %s\n", in.Tone)
	fmt.Fprintf(&b, "Post length: %s\n", in.PostLength)
	fmt.Fprintf(&b, "Brand voice: %s\n", in.BrandVoiceNotes)
	fmt.Fprintf(&b, "Call to action: %s\n", in.CallToAction)
	if in.Offer != "" && in.Offer != "None" {
		fmt.Fprintf(&b, "Offer: %s\n", in.Offer)
	}
	if in.PainPoint != "" {
		fmt.Fprintf(&b, "Customer pain point: %s\n", in.PainPoint)
	}
	if in.Hashtags != "" {
		fmt.Fprintf(&b, "Hashtags: %s\n", in.Hashtags)
	}
	return b.String()
}

// --- OpenAI-backed client ---

type openAIClient struct {
	client *openaigo.Client
	model  string
}

// NewOpenAIClient builds an AIClient over the OpenAI chat completion API.
// baseURL may point at any compatible gateway; empty means the default.
func NewOpenAIClient(apiKey, baseURL, model string) AIClient {
	cfg := openaigo.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &openAIClient{client: openaigo.NewClientWithConfig(cfg), model: model}
}

func (c *openAIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openaigo.ChatCompletionRequest{
			Model: c.model,
			Messages: []openaigo.ChatCompletionMessage{
				{Role: openaigo.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openaigo.ChatMessageRoleUser, Content: userPrompt},
			},
		},
	)
	aiRequestDuration.With(prometheus.Labels{"model": c.model}).Observe(time.Since(start).Seconds())

	if err != nil {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error"}).Inc()
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "error_empty_response"}).Inc()
		return "", fmt.Errorf("empty response from AI API")
	}

	aiRequestsTotal.With(prometheus.Labels{"model": c.model, "status": "success"}).Inc()
	return resp.Choices[0].Message.Content, nil
}

// --- Template fallback ---

// templateClient renders a deterministic post from the payload. It stands
// in when no AI key is configured, and in tests.
type templateClient struct{}

func NewTemplateClient() AIClient {
	return templateClient{}
}

const fallbackTemplate = `{name}: {goal} for {audience} on {platform}. {cta}!`

func (templateClient) GenerateText(_ context.Context, _, userPrompt string) (string, error) {
	fields := parsePrompt(userPrompt)
	data := map[string]string{
		"name":     fields["Campaign"],
		"goal":     fields["Goal"],
		"audience": fields["Audience"],
		"platform": fields["Platform"],
		"cta":      fields["Call to action"],
	}
	return RenderTemplate(fallbackTemplate, data), nil
}

func parsePrompt(prompt string) map[string]string {
	fields := map[string]string{}
	for _, line := range strings.Split(prompt, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if ok {
			fields[key] = value
		}
	}
	return fields
}
