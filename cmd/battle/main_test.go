package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/pkg/logger"
)

func TestRun_Narration(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, logger.Discard()))

	got := out.String()
	for _, line := range []string{
		"Arthur equipped Iron Sword!",
		"Dark Knight equipped Battle Axe!",
		"Arthur is a Warrior ally.",
		"Dark Knight is a Undead enemy.",
		"Arthur attacks Dark Knight with Iron Sword!",
		"Dark Knight has taken 20 damage.",
		"Dark Knight has 60/80 health points.",
		"Dark Knight attacks Arthur with Battle Axe!",
		"Arthur has taken 29 damage.",
		"Arthur has 71/100 health points.",
		"Arthur has been healed by 23 points (including 3 bonus).",
		"Arthur has 94/100 health points.",
		"Hero health: 94",
		"Enemy type: Undead",
		"Arthur has 0/100 health points.",
		"Arthur has 100/100 health points.",
	} {
		assert.Contains(t, got, line+"\n")
	}

	assert.Less(t, strings.Index(got, "=== Battle Begins ==="), strings.Index(got, "=== Healing ==="))
}
