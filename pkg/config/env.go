package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variables override whatever the config file says. A .env
// file in the working directory is picked up first, the way the hosted
// deployments configure themselves.
const (
	envAPIURL         = "GRIDMON_API_URL"
	envRefreshSeconds = "GRIDMON_REFRESH_SECONDS"
)

var dotEnvOnce sync.Once

func loadDotEnv() {
	dotEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, relying on system environment variables")
		}
	})
}

func (f *File) applyEnvOverrides() {
	loadDotEnv()

	f.mu.Lock()
	defer f.mu.Unlock()

	if url := os.Getenv(envAPIURL); url != "" {
		f.c.APIURL = &url
	}

	if raw := os.Getenv(envRefreshSeconds); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			logrus.Warnf("ignoring invalid %s=%q: %v", envRefreshSeconds, raw, err)
			return
		}
		f.c.RefreshSeconds = &seconds
	}
}
