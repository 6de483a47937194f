package config

import (
	"os"
	"strconv"
)

// IsDebug reports whether ROSTER_DEBUG turns on debug logging.
// Any value strconv.ParseBool accepts is allowed; anything else is off.
func IsDebug() bool {
	on, err := strconv.ParseBool(os.Getenv("ROSTER_DEBUG"))
	return err == nil && on
}
