// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keyed struct {
	Kind  string
	Value string
	Seen  int `hash:"ignore"`
}

func TestCompute(t *testing.T) {
	a := MustCompute([]keyed{{Kind: "vendor", Value: "v1", Seen: 1}})
	b := MustCompute([]keyed{{Kind: "vendor", Value: "v1", Seen: 9}})
	c := MustCompute([]keyed{{Kind: "vendor", Value: "v2"}})

	assert.Equal(t, a, b, "ignored fields do not count")
	assert.NotEqual(t, a, c)

	ab := MustCompute([]string{"a", "b"})
	ba := MustCompute([]string{"b", "a"})
	assert.NotEqual(t, ab, ba)
}

func TestFmt(t *testing.T) {
	assert.Equal(t, "00000000000000ff", Fmt(255))
	assert.Len(t, Fmt(MustCompute("x")), 16)
}
