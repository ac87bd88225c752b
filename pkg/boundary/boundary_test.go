/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: boundary_test.go
Description: Tests for the boundary payload set.
*/

package boundary_test

import (
	"bytes"
	"testing"

	"github.com/kleascm/akaylee-seedgen/pkg/boundary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, name string) []byte {
	t.Helper()
	p, ok := boundary.Lookup(name)
	require.True(t, ok, "missing payload %s", name)
	return p.Generate()
}

// TestPayloadSet checks the fixed names and order
func TestPayloadSet(t *testing.T) {
	assert.Equal(t, []string{"empty", "large", "nulls", "high_ascii", "mixed"}, boundary.Names())
	assert.Len(t, boundary.Payloads(), 5)

	_, ok := boundary.Lookup("huge")
	assert.False(t, ok)
}

// TestPayloadContents checks each payload byte for byte
func TestPayloadContents(t *testing.T) {
	assert.Empty(t, payload(t, "empty"))

	large := payload(t, "large")
	require.Len(t, large, 2001)
	assert.Equal(t, bytes.Repeat([]byte("A"), 1000), large[:1000])
	assert.Equal(t, byte('\n'), large[1000])
	assert.Equal(t, bytes.Repeat([]byte("B"), 1000), large[1001:])

	nulls := payload(t, "nulls")
	require.Len(t, nulls, 100)
	assert.Equal(t, make([]byte, 100), nulls)

	high := payload(t, "high_ascii")
	require.Len(t, high, 128)
	for i, b := range high {
		assert.Equal(t, byte(128+i), b)
	}

	mixed := payload(t, "mixed")
	assert.Equal(t, []byte("TEXT_START\x00\x01\x02\x03TEXT_MIDDLE\xff\xfe\xfdTEXT_END"), mixed)
}

// TestPayloadsDeterministic checks that repeated calls agree
func TestPayloadsDeterministic(t *testing.T) {
	for _, p := range boundary.Payloads() {
		assert.Equal(t, p.Generate(), p.Generate(), p.Name)
	}
}

// TestPayloadsListIsolated checks that callers cannot reorder the shared list
func TestPayloadsListIsolated(t *testing.T) {
	list := boundary.Payloads()
	list[0], list[1] = list[1], list[0]
	assert.Equal(t, "empty", boundary.Payloads()[0].Name)
}

// TestFileName checks the on-disk naming
func TestFileName(t *testing.T) {
	assert.Equal(t, "seed_high_ascii.dat", boundary.FileName("high_ascii"))
}
