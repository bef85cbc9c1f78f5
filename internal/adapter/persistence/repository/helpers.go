package repository

import (
	"errors"
	"os"
)

var errMissingCounterValue = errors.New("counter value missing from update response")

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
