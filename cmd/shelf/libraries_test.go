package main

import (
	"testing"

	"github.com/h0rv/shelf/internal/card"
	"github.com/h0rv/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	year := 1995
	ticks := 170 * card.TicksPerMinute

	assert.Equal(t, "Bare", describe(domain.Item{Name: "Bare"}))
	assert.Equal(t, "Heat (1995, 2h 50m)", describe(domain.Item{Name: "Heat", ProductionYear: &year, RunTimeTicks: &ticks}))
	assert.Equal(t, "Heat (1995, watched)", describe(domain.Item{Name: "Heat", ProductionYear: &year, Played: true}))
}
