package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"info":    logger.InfoLevel,
		"verbose": logger.InfoLevel,
	}

	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "ez", Password: "pw", Database: "eventzone", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=ez password=pw dbname=eventzone sslmode=disable", p.DSN())
}

func TestEventsConfig_Location(t *testing.T) {
	loc, err := EventsConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = EventsConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestSchedulerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		seenTTL time.Duration
		wantErr bool
	}{
		{name: "default", seenTTL: 24 * time.Hour},
		{name: "just above twice the window", seenTTL: 2*time.Minute + time.Second},
		{name: "exactly twice the window", seenTTL: 2 * time.Minute, wantErr: true},
		{name: "shorter than the window", seenTTL: 30 * time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SchedulerConfig{
				ReminderInterval: 10 * time.Second,
				ReminderWindow:   time.Minute,
				PaymentInterval:  30 * time.Second,
				SeenTTL:          tt.seenTTL,
			}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
