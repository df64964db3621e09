// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goway/destination"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	return filepath.Join(dir, "pending.db")
}

func TestRequestPendingClear(t *testing.T) {
	store := setup(t)

	out, err := run(t, "--store", store, "pending")
	require.NoError(t, err)
	assert.Equal(t, "no pending request\n", out)

	out, err = run(t, "--store", store, "request", "type", "food")
	require.NoError(t, err)
	assert.Equal(t, "queued vendorType(food)\n", out)

	// A later request of another kind replaces the earlier one.
	_, err = run(t, "--store", store, "request", "building", "The", "Breeze")
	require.NoError(t, err)
	out, err = run(t, "--store", store, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "building ")

	_, err = run(t, "--store", store, "clear")
	require.NoError(t, err)
	out, err = run(t, "--store", store, "pending")
	require.NoError(t, err)
	assert.Equal(t, "no pending request\n", out)
}

func TestRequest_UnknownReference(t *testing.T) {
	store := setup(t)

	_, err := run(t, "--store", store, "request", "vendor", "Nowhere")
	assert.ErrorContains(t, err, `no vendor matches "Nowhere"`)

	_, err = run(t, "--store", store, "request", "type", "spaceport")
	assert.Error(t, err)
}

func TestVenues(t *testing.T) {
	setup(t)

	out, err := run(t, "venues")
	require.NoError(t, err)
	assert.Contains(t, out, "3 buildings, 9 vendors")

	out, err = run(t, "venues", "breeze")
	require.NoError(t, err)
	assert.Contains(t, out, `3 results for "breeze"`)
}

func TestParseOpen(t *testing.T) {
	d, err := parseOpen("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseOpen("Worship")
	require.NoError(t, err)
	assert.Equal(t, destination.KindPraying, d.Kind)

	d, err = parseOpen("search")
	require.NoError(t, err)
	assert.Equal(t, destination.KindSearch, d.Kind)

	_, err = parseOpen("mars")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	setup(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "goway version dev\n", out)
}
