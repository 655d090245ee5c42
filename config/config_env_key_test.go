package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"dispatch": map[string]any{
			"maxDistanceMeters": 5000,
		},
		"pubsub": map[string]any{
			"rabbitmqUrl": "",
		},
		"telegram": map[string]any{
			"botToken": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISPATCH_MAXDISTANCEMETERS", want: "dispatch.maxDistanceMeters"},
		{envKey: "PUBSUB_RABBITMQURL", want: "pubsub.rabbitmqUrl"},
		{envKey: "TELEGRAM_BOTTOKEN", want: "telegram.botToken"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{Dispatch: &DispatchConfig{MaxDistanceMeters: 1200}}

	applyDefaults(cfg)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.InDelta(t, 1200, cfg.Dispatch.MaxDistanceMeters, 0.001)
	assert.Equal(t, defaultCandidateLimit, cfg.Dispatch.CandidateLimit)
	assert.Equal(t, "postgis", cfg.Dispatch.Locator)
	assert.Equal(t, int64(defaultMilestoneEvery), cfg.Rewards.MilestoneEvery)
	assert.Equal(t, "dispatch:agents", cfg.Redis.GeoKey)
	assert.NotNil(t, cfg.Commission)
	assert.NotNil(t, cfg.PubSub)
}
