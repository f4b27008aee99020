// Package scoring rates places against user preferences with Claude.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tablescout/config"
	"tablescout/internal/domain/entity"
	domainerrors "tablescout/internal/domain/errors"
	"tablescout/internal/domain/service"
	"tablescout/internal/errors"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = `You rate restaurants for a diner. Reply with a single JSON object and nothing else:
{"score": <integer 0-100>, "rationale": "<one or two sentences>"}
Base the score only on the place data and the diner's preferences.`

// Scorer implements service.PlaceScorer on the Anthropic Messages API.
type Scorer struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

var _ service.PlaceScorer = (*Scorer)(nil)

// NewScorer creates a scorer. Extra request options are passed to the SDK client.
func NewScorer(apiKey, model string, maxTokens int64, opts ...option.RequestOption) *Scorer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &Scorer{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// NewPlaceScorer builds the scorer from configuration.
func NewPlaceScorer(cfg *config.Config) service.PlaceScorer {
	var opts []option.RequestOption
	if cfg.Scoring.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.Scoring.BaseURL))
	}

	return NewScorer(cfg.Scoring.APIKey, cfg.Scoring.Model, cfg.Scoring.MaxTokens, opts...)
}

type scoreReply struct {
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

// Score rates a resolved place. The caller bounds the call with ctx.
func (s *Scorer) Score(ctx context.Context, view *entity.ResolvedView, preferences string) (*service.PlaceScore, error) {
	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: s.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(view, preferences))),
		},
	})
	if err != nil {
		if errors.IsTimeout(err) {
			return nil, domainerrors.ErrUpstreamTimeout.WithCause(err)
		}

		return nil, domainerrors.ErrUpstreamUnavailable.WithCause(errors.Wrap(err, "anthropic: create message"))
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	reply, err := parseReply(text.String())
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WithCause(err)
	}

	return &service.PlaceScore{
		Score:     reply.Score,
		Rationale: reply.Rationale,
		Model:     string(msg.Model),
	}, nil
}

func buildPrompt(view *entity.ResolvedView, preferences string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Place: %s\n", view.Name)
	fmt.Fprintf(&b, "Address: %s\n", view.Address)
	if len(view.CuisineTags) > 0 {
		fmt.Fprintf(&b, "Cuisine: %s\n", strings.Join(view.CuisineTags, ", "))
	}
	fmt.Fprintf(&b, "Rating: %.1f (%d ratings)\n", view.Rating, view.RatingCount)
	fmt.Fprintf(&b, "Price tier: %d of 4\n", view.PriceTier)
	if view.Details.Editorial != "" {
		fmt.Fprintf(&b, "Summary: %s\n", view.Details.Editorial)
	}
	for i, review := range view.Details.Reviews {
		if i == 5 {
			break
		}
		fmt.Fprintf(&b, "Review (%.0f/5): %s\n", review.Rating, review.Text)
	}
	for _, item := range view.MenuItems {
		fmt.Fprintf(&b, "Menu: %s %.2f %s\n", item.Name, item.Price, item.Currency)
	}
	fmt.Fprintf(&b, "\nDiner preferences: %s\n", preferences)

	return b.String()
}

// parseReply extracts the JSON object from the model reply.
func parseReply(text string) (*scoreReply, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, errors.Errorf("anthropic: no JSON object in reply %q", text)
	}

	var reply scoreReply
	if err := json.Unmarshal([]byte(text[start:end+1]), &reply); err != nil {
		return nil, errors.Wrap(err, "anthropic: decode reply")
	}
	if reply.Score < 0 || reply.Score > 100 {
		return nil, errors.Errorf("anthropic: score %d out of range", reply.Score)
	}

	return &reply, nil
}
