package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/pkg/logger"
)

func clockAt(year int, month time.Month) func() time.Time {
	return func() time.Time { return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC) }
}

func TestRun_Walkthrough(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, logger.Discard(), clockAt(2026, time.October)))

	got := out.String()
	for _, line := range []string{
		"=== Fleet ===",
		"Brand: Ford, Model: Mustang",
		"The car is moving",
		"CC: 1000",
		"The motorcycle is moving",
		"Load Capacity: 1000 kg",
		"Battery: 100kWh",
		"The electric car is moving silently",
		"=== Media ===",
		"Book: The Great Gatsby by F. Scott Fitzgerald (1925)",
		"This book has 180 pages and is a Classic book.",
		"This magazine is about Nature and is published Monthly.",
		"Today's topic is Politics.",
		"Remember that this newspaper is published Daily.",
		"=== City Library ===",
		"The Great Gatsby by F. Scott Fitzgerald",
		"1984 by George Orwell",
		"=== Payments ===",
		"Cannot pay with PayPal: sign in first.",
		"Paying 250.00 with credit card (**** 3456)",
		"Paying 500.00 with PayPal (john@example.com)",
		"Cannot pay 0.00 with credit card: the amount must be positive.",
	} {
		assert.Contains(t, got, line+"\n")
	}

	assert.NotContains(t, got, "National Geographic by National Geographic Society\n")
	assert.NotContains(t, got, "s3cret")
	assert.Less(t, strings.Index(got, "=== Fleet ==="), strings.Index(got, "=== Payments ==="))
}

func TestRun_ExpiredCardIsRefused(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, logger.Discard(), clockAt(2031, time.January)))

	assert.Contains(t, out.String(), "Cannot pay with credit card: the card has expired.\n")
	assert.Contains(t, out.String(), "Paying 500.00 with PayPal (john@example.com)\n")
}
