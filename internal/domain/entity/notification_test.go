package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"advertising", CategoryAdvertising},
		{"security", CategorySecurity},
		{"maintenance", CategoryMaintenance},
		{"", CategoryAdvertising},
		{"weather", CategoryAdvertising},
		{"SECURITY", CategoryAdvertising},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.input), "input %q", tt.input)
	}
}

func TestCategory_Suppressible(t *testing.T) {
	assert.True(t, CategoryAdvertising.Suppressible())
	assert.False(t, CategorySecurity.Suppressible())
	assert.False(t, CategoryMaintenance.Suppressible())
	assert.True(t, Category("weather").Suppressible())
}

func TestScheduledNotification_Due(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		sent         bool
		scheduledFor time.Time
		want         bool
	}{
		{"past and unsent", false, now.Add(-time.Minute), true},
		{"exactly now and unsent", false, now, true},
		{"future and unsent", false, now.Add(time.Minute), false},
		{"past but already sent", true, now.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &ScheduledNotification{Sent: tt.sent, ScheduledFor: tt.scheduledFor}
			assert.Equal(t, tt.want, n.Due(now))
		})
	}
}
