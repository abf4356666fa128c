package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 15, 9, 26, 535, time.UTC)
	out := StartOfDay(in)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), out)
}

func TestStartOfDay_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	in := time.Date(2025, 3, 14, 23, 30, 0, 0, loc)
	out := StartOfDay(in)
	assert.Equal(t, loc, out.Location())
	assert.Equal(t, 14, out.Day())
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	out := StartOfMonth(in)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), out)
}
