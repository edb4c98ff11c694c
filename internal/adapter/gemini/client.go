// Package gemini implements the TextGenerator port against the Gemini API
// using the google.golang.org/genai SDK. Every call requests
// application/json output constrained by an explicit response schema and
// validates the decoded result before it may seed a campaign record.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"adloom/internal/config/configs"
	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

// Client talks to the Gemini API. A client constructed without an API key
// is inert: every call returns port.ErrMissingCredentials so the usecase
// layer can fall back without special-casing construction.
type Client struct {
	gc      *genai.Client
	model   string
	timeout time.Duration
}

// New creates a generator client. An empty API key yields a disabled
// client rather than an error.
func New(ctx context.Context, cfg configs.Gemini) (*Client, error) {
	c := &Client{model: cfg.Model, timeout: cfg.Timeout}
	if cfg.APIKey == "" {
		return c, nil
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.gc = gc
	return c, nil
}

// GenerateAdVariants drafts one ad per requested platform.
func (c *Client) GenerateAdVariants(ctx context.Context, brief domain.AdBrief) ([]domain.AdVariant, error) {
	prompt := fmt.Sprintf(
		"Draft one advertisement per platform for the following campaign.\n"+
			"Product: %s\nDescription: %s\nTarget audience: %s\nPlatforms: %s\n"+
			"Total budget: %.2f USD over %d days.\n"+
			"For each platform estimate the total reach and conversions the budget can buy.",
		brief.ProductName, brief.Description, brief.TargetAudience,
		strings.Join(brief.Platforms, ", "), brief.Budget, brief.DurationDays)

	schema := &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"platform":             {Type: genai.TypeString},
				"headline":             {Type: genai.TypeString},
				"adCopy":               {Type: genai.TypeString},
				"predictedReach":       {Type: genai.TypeNumber},
				"predictedConversions": {Type: genai.TypeNumber},
				"estimatedCost":        {Type: genai.TypeNumber},
			},
			Required: []string{"platform", "headline", "adCopy", "predictedReach", "predictedConversions"},
		},
	}

	raw, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var variants []domain.AdVariant
	if err := json.Unmarshal([]byte(raw), &variants); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCompletion, err)
	}
	if len(variants) == 0 {
		return nil, port.ErrEmptyCompletion
	}
	for i, v := range variants {
		if v.AdCopy == "" {
			return nil, fmt.Errorf("%w: variant %d has empty adCopy", port.ErrInvalidCompletion, i)
		}
		if v.PredictedReach < 0 || v.PredictedConversions < 0 {
			return nil, fmt.Errorf("%w: variant %d has negative predictions", port.ErrInvalidCompletion, i)
		}
		if !domain.KnownPlatform(v.Platform) {
			return nil, fmt.Errorf("%w: variant %d names unknown platform %q", port.ErrInvalidCompletion, i, v.Platform)
		}
		// never trust the model's arithmetic: the cost is the budget
		variants[i].EstimatedCost = brief.Budget
	}
	return variants, nil
}

// ReviewCompliance checks ad copy against platform advertising policy.
func (c *Client) ReviewCompliance(ctx context.Context, in domain.ComplianceInput) (*domain.ComplianceReport, error) {
	prompt := fmt.Sprintf(
		"Review this %s advertisement for advertising-policy compliance.\n"+
			"Headline: %s\nCopy: %s\n"+
			"Flag misleading claims, prohibited content and restricted categories.",
		in.Platform, in.Headline, in.AdCopy)

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"approved": {Type: genai.TypeBoolean},
			"issues":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"summary":  {Type: genai.TypeString},
		},
		Required: []string{"approved", "summary"},
	}

	raw, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}
	var report domain.ComplianceReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCompletion, err)
	}
	if report.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", port.ErrInvalidCompletion)
	}
	return &report, nil
}

// GenerateArticle writes an SEO article for the given brief.
func (c *Client) GenerateArticle(ctx context.Context, brief domain.ArticleBrief) (*domain.GeneratedArticle, error) {
	prompt := fmt.Sprintf(
		"Write an SEO-optimised article about %q in a %s tone.\n"+
			"Target keywords: %s.\n"+
			"Return plain-text content, an HTML rendering and a URL slug.",
		brief.Topic, brief.Tone, strings.Join(brief.Keywords, ", "))

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"content":     {Type: genai.TypeString},
			"htmlContent": {Type: genai.TypeString},
			"keywords":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"slug":        {Type: genai.TypeString},
		},
		Required: []string{"title", "content"},
	}

	raw, err := c.generate(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}
	var art domain.GeneratedArticle
	if err := json.Unmarshal([]byte(raw), &art); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidCompletion, err)
	}
	if art.Title == "" || art.Content == "" {
		return nil, fmt.Errorf("%w: missing title or content", port.ErrInvalidCompletion)
	}
	if art.Slug == "" {
		art.Slug = domain.Slugify(art.Title)
	}
	return &art, nil
}

// generate runs one schema-constrained completion and returns the raw
// JSON text. Missing credentials, empty output and transport errors all
// originate here.
func (c *Client) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if c.gc == nil {
		return "", port.ErrMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", port.ErrEmptyCompletion
	}
	return text, nil
}
