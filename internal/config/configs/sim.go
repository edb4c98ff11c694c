package configs

import "time"

// Sim configures the campaign lifecycle simulation. The defaults mirror
// the interactive product: a 10 second review quarantine and a 2 second
// tick cadence. Deployments wanting the documented "10-15 minutes" review
// window raise REVIEW_PERIOD accordingly.
type Sim struct {
	ReviewPeriod time.Duration `env:"REVIEW_PERIOD" envDefault:"10s"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"2s"`
}
