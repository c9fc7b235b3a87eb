package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, falling back to the given default
// on anything unparseable. Config durations are validated at load time, so a
// fallback here only fires for values injected after startup.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Err(err).Str("value", s).Dur("fallback", fallback).Msg("unparseable duration, using fallback")
		return fallback
	}
	return d
}
