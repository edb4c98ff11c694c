package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"adloom/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// DemoUserID is the principal every session attaches to. The product
	// ships without real authentication; the seeded demo account plays
	// the role of the signed-in user.
	DemoUserID string `env:"DEMO_USER_ID" envDefault:"11111111-1111-1111-1111-111111111111"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Gemini configures the generative model client.
	Gemini configs.Gemini `envPrefix:"GEMINI_"`

	// AMQP configures the optional lifecycle-event publisher.
	AMQP configs.AMQP `envPrefix:"AMQP_"`

	// Sim configures the campaign lifecycle simulation.
	Sim configs.Sim `envPrefix:"SIM_"`
}

// Load reads configuration from the environment into a Config. A .env file
// in the working directory is merged in first when present; a missing file
// is not an error. All fields fall back to their declared defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
