package configs

import "time"

// Gemini configures the generative model client. An empty APIKey disables
// the upstream entirely; callers then receive ErrMissingCredentials and
// fall back to synthesized results.
type Gemini struct {
	// APIKey authenticates against the Gemini API.
	APIKey string `env:"API_KEY"`
	// Model is the model identifier used for all generation calls.
	Model string `env:"MODEL" envDefault:"gemini-2.0-flash"`
	// Timeout bounds each generation round-trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
