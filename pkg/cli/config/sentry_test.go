package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/quickfolio/quickfolio/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
}

func TestGitHubAppFlags(t *testing.T) {
	appConfig := &config.GitHubApp{}
	flags := appConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-app-id"])
	gt.True(t, flagNames["github-app-private-key"])
	gt.True(t, flagNames["github-app-private-key-file"])
}

func TestFirestoreEnabled(t *testing.T) {
	firestoreConfig := &config.Firestore{}
	gt.B(t, firestoreConfig.Enabled()).False()
}
