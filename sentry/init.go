package sentry

import (
	"github.com/evalphobia/logrus_sentry"
	"github.com/getsentry/raven-go"
	log "github.com/sirupsen/logrus"
)

// Init installs a logrus hook that forwards entries at the configured level
// and above to Sentry. An empty DSN leaves logging untouched.
func Init(config Config) error {
	if config.DSN == "" {
		log.Info("Sentry DSN is not configured - Sentry will be disabled")
		return nil
	}

	client, err := raven.New(config.DSN)
	if err != nil {
		return err
	}
	client.SetEnvironment(config.Env)
	client.SetRelease(config.Release)

	levels, err := hookLevels(config.Level)
	if err != nil {
		return err
	}

	hook, err := logrus_sentry.NewWithClientSentryHook(client, levels)
	if err != nil {
		return err
	}
	log.AddHook(hook)
	log.Infof("Enabled Sentry alerting for following logging levels: %v", levels)

	return nil
}

// hookLevels expands a bound level into the list of levels at or above it,
// in logrus severity order.
func hookLevels(bound string) ([]log.Level, error) {
	boundLevel, err := log.ParseLevel(bound)
	if err != nil {
		return nil, err
	}

	var levels []log.Level
	for _, level := range log.AllLevels {
		levels = append(levels, level)
		if level == boundLevel {
			break
		}
	}

	return levels, nil
}
