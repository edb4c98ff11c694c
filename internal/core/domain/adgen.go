package domain

// Platforms supported by the ad generator. Requests naming anything else
// are rejected at the validation boundary.
var Platforms = []string{"facebook", "instagram", "google", "tiktok", "twitter"}

// KnownPlatform reports whether p is one of the supported platforms.
func KnownPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// AdBrief is the user-supplied input to ad generation.
type AdBrief struct {
	ProductName    string   `json:"productName"`
	Description    string   `json:"description"`
	TargetAudience string   `json:"targetAudience"`
	Platforms      []string `json:"platforms"`
	Budget         float64  `json:"budget"`
	DurationDays   int      `json:"campaignDurationDays"`
}

// AdVariant is one per-platform generation result. EstimatedCost always
// equals the brief's budget; the model's arithmetic is never trusted.
// Fallback marks locally synthesized results produced when the upstream
// model was unavailable.
type AdVariant struct {
	Platform             string  `json:"platform"`
	Headline             string  `json:"headline"`
	AdCopy               string  `json:"adCopy"`
	PredictedReach       float64 `json:"predictedReach"`
	PredictedConversions float64 `json:"predictedConversions"`
	EstimatedCost        float64 `json:"estimatedCost"`
	Fallback             bool    `json:"fallback,omitempty"`
}

// ComplianceInput is an ad submitted for policy review.
type ComplianceInput struct {
	Headline string `json:"headline"`
	AdCopy   string `json:"adCopy"`
	Platform string `json:"platform"`
}

// ComplianceReport is the reviewer's verdict.
type ComplianceReport struct {
	Approved bool     `json:"approved"`
	Issues   []string `json:"issues"`
	Summary  string   `json:"summary"`
}

// ArticleBrief is the input to SEO article generation.
type ArticleBrief struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
	Tone     string   `json:"tone"`
}

// GeneratedArticle is the model's article output before persistence.
type GeneratedArticle struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	HTMLContent string   `json:"htmlContent"`
	Keywords    []string `json:"keywords"`
	Slug        string   `json:"slug"`
}
