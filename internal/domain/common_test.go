package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxAround(t *testing.T) {
	box := BoundingBoxAround(Point{Lat: -37.81, Lon: 144.96}, 0.1)

	assert.InDelta(t, -37.91, box.MinLat, 1e-9)
	assert.InDelta(t, -37.71, box.MaxLat, 1e-9)
	assert.InDelta(t, 144.86, box.MinLon, 1e-9)
	assert.InDelta(t, 145.06, box.MaxLon, 1e-9)
}

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{MinLat: 10, MinLon: 20, MaxLat: 11, MaxLon: 21}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Point{Lat: 10.5, Lon: 20.5}, true},
		{"south-west corner", Point{Lat: 10, Lon: 20}, true},
		{"north-east corner", Point{Lat: 11, Lon: 21}, true},
		{"north of box", Point{Lat: 11.0001, Lon: 20.5}, false},
		{"west of box", Point{Lat: 10.5, Lon: 19.9999}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}
