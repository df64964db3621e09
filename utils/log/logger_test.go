// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package gowaylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestL_FallsBackToNoop(t *testing.T) {
	logger = nil
	require.NotNil(t, L())
	L().Infof("discarded %d", 1)
	require.NotNil(t, Component("x"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.WarnLevel, parseLevel("warning", "prod"))
	assert.Equal(t, zap.ErrorLevel, parseLevel("ERROR", "prod"))
	assert.Equal(t, zap.DebugLevel, parseLevel("", "dev"))
	assert.Equal(t, zap.InfoLevel, parseLevel("", "prod"))
}

func TestInit_WritesToDir(t *testing.T) {
	dir := t.TempDir()
	path := Init("goway-test", Options{Mode: "development", Dir: dir})
	t.Cleanup(func() { logger = nil })

	assert.Equal(t, filepath.Join(dir, "app-debug.log"), path)
	L().Info("hello")
	Sync()

	_, err := os.Stat(path)
	require.NoError(t, err)
}
