package trending

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoQualityProfile is returned when Sonarr has no profile with the wanted name.
var ErrNoQualityProfile = errors.New("no suitable quality profile")

// ConfigurationError reports a problem the operator has to fix in Sonarr
// before a sync can run. It is never retried.
type ConfigurationError struct {
	Profile   string   // Profile name that was looked for
	Available []string // Profile names Sonarr reported
	Err       error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("could not find quality profile %q in sonarr", e.Profile)
	if len(e.Available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(e.Available, ", "))
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
