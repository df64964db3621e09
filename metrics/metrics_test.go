// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Requests.WithLabelValues("vendor", Accepted).Inc()
	m.Requests.WithLabelValues("vendor", Debounced).Add(2)

	assert.Equal(t, 2, testutil.CollectAndCount(m.Requests))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("vendor", Debounced)))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1, "empty vectors are not exported")
	assert.Equal(t, "goway_navigation_requests_total", families[0].GetName())

	assert.Panics(t, func() { New(reg) }, "collectors register once")
}
