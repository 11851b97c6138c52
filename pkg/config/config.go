package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Refresh interval bounds. Values outside this range are clamped on read.
const (
	MinRefresh     = 5 * time.Second
	MaxRefresh     = 60 * time.Second
	DefaultRefresh = 10 * time.Second
)

type Config interface {
	APIURL() string
	RefreshInterval() time.Duration
	MemoTTL() time.Duration

	SetAPIURL(string)
	SetRefreshInterval(time.Duration)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error

	// LogrusFields returns the current settings as logrus fields.
	LogrusFields() logrus.Fields
}

// ClampRefresh bounds a refresh interval to [MinRefresh, MaxRefresh].
func ClampRefresh(d time.Duration) time.Duration {
	if d < MinRefresh {
		return MinRefresh
	}
	if d > MaxRefresh {
		return MaxRefresh
	}
	return d
}
