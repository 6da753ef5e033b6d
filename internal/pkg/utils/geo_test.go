package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lon     string
		wantErr bool
	}{
		{"valid", "-37.8136", "144.9631", false},
		{"edges", "90", "-180", false},
		{"not a number", "abc", "144.9", true},
		{"empty lon", "-37.8", "", true},
		{"lat out of range", "91", "0", true},
		{"lon out of range", "0", "180.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.lat, tt.lon)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
