package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

func validatorTestConfig() *structures.Config {
	return &structures.Config{
		Repo: structures.RepoConfig{
			Owner:          "ross-rotordynamics",
			Name:           "ross",
			StaleAfterDays: 45,
			StaleLabel:     "stale",
		},
		Schedule: structures.ScheduleConfig{
			ScanAt:  "10:30",
			StatsAt: "10:30",
		},
		Storage: structures.StorageConfig{
			DataDir:   "/var/lib/ross-bott",
			StaticDir: "/var/lib/ross-bott/static",
		},
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/var/log/ross-bott",
		},
		Cache: structures.CacheConfig{
			Enabled: true,
			Size:    16,
			TTL:     time.Hour,
		},
	}
}

func TestCnfValidator_ValidConfig(t *testing.T) {
	err := NewCnfValidator(validatorTestConfig()).Validate()
	assert.NoError(t, err)
}

func TestCnfValidator_MissingOwner(t *testing.T) {
	conf := validatorTestConfig()
	conf.Repo.Owner = ""

	err := NewCnfValidator(conf).Validate()
	assert.Error(t, err)
}

func TestCnfValidator_ZeroStaleDays(t *testing.T) {
	conf := validatorTestConfig()
	conf.Repo.StaleAfterDays = 0

	err := NewCnfValidator(conf).Validate()
	assert.Error(t, err)
}

func TestCnfValidator_BadLogLevel(t *testing.T) {
	conf := validatorTestConfig()
	conf.Logger.Level = "verbose"

	err := NewCnfValidator(conf).Validate()
	assert.Error(t, err)
}

func TestCnfValidator_BadScheduleTime(t *testing.T) {
	for _, at := range []string{"25:00", "10:61", "10.30", "morning", ""} {
		conf := validatorTestConfig()
		conf.Schedule.ScanAt = at

		err := NewCnfValidator(conf).Validate()
		assert.Error(t, err, "expected %q to be rejected", at)
	}
}
