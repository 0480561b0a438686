package app

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const envSeed = "WORDHUNT_SEED"

// Config holds settings read from the environment.
type Config struct {
	Seed    uint64
	HasSeed bool
}

// LoadConfig reads WORDHUNT_SEED through getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	var cfg Config
	raw := strings.TrimSpace(getenv(envSeed))
	if raw == "" {
		return cfg, nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("invalid %s %q: %w", envSeed, raw, err)
	}
	cfg.Seed = seed
	cfg.HasSeed = true
	return cfg, nil
}

// NewRand returns the generator used to pick highlight colors. A configured
// seed makes the colors reproducible.
func (c Config) NewRand() *rand.Rand {
	if c.HasSeed {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	now := time.Now()
	return rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Nanosecond())))
}
