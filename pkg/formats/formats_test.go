/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formats_test.go
Description: Tests for the format generator registry. Covers magic bytes, determinism,
normal/simple length ordering, aliasing and unknown identifier handling.
*/

package formats_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/gif"
	"image/png"
	"testing"

	"github.com/kleascm/akaylee-seedgen/pkg/formats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, mode formats.Mode, id string) []byte {
	t.Helper()
	gen, err := formats.ForMode(mode).Resolve(id)
	require.NoError(t, err)
	return gen()
}

// TestNormalMagicBytes checks that every image and document format starts with its canonical magic
func TestNormalMagicBytes(t *testing.T) {
	magic := map[string][]byte{
		"png": {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		"gif": []byte("GIF89a"),
		"jpg": {0xFF, 0xD8},
		"bmp": []byte("BM"),
		"pdf": []byte("%PDF"),
	}

	for id, prefix := range magic {
		t.Run(id, func(t *testing.T) {
			data := generate(t, formats.ModeNormal, id)
			assert.True(t, bytes.HasPrefix(data, prefix), "%s seed lacks magic %x", id, prefix)
		})
	}
}

// TestSignaturesAreCopies checks that callers cannot alter the shared magic bytes
func TestSignaturesAreCopies(t *testing.T) {
	for _, signature := range []func() []byte{formats.PNGSignature, formats.JPEGSignature, formats.GIFSignature, formats.BMPSignature} {
		first := signature()
		first[0] ^= 0xFF
		assert.NotEqual(t, first, signature())
	}

	assert.True(t, bytes.HasPrefix(generate(t, formats.ModeNormal, "png"), formats.PNGSignature()))
	assert.True(t, bytes.HasPrefix(generate(t, formats.ModeNormal, "bmp"), formats.BMPSignature()))
}

// TestPDFOffsets checks that the xref table and startxref carry the real byte offsets
func TestPDFOffsets(t *testing.T) {
	data := generate(t, formats.ModeNormal, "pdf")

	for obj, offset := range map[string]int{"1 0 obj": 9, "2 0 obj": 58, "3 0 obj": 115, "xref\n": 184} {
		assert.Equal(t, offset, bytes.Index(data, []byte(obj)), obj)
	}
	assert.Contains(t, string(data), "0000000115 00000 n")
	assert.Contains(t, string(data), "startxref\n184\n")
}

// TestDeterminism checks that generators return identical bytes on every call
func TestDeterminism(t *testing.T) {
	for _, mode := range []formats.Mode{formats.ModeNormal, formats.ModeSimple} {
		registry := formats.ForMode(mode)
		for _, id := range registry.Identifiers() {
			gen, err := registry.Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, gen(), gen(), "%s/%s is not deterministic", mode, id)
		}
	}
}

// TestGeneratorsReturnPrivateCopies checks that mutating one result leaves later calls untouched
func TestGeneratorsReturnPrivateCopies(t *testing.T) {
	gen, err := formats.NormalRegistry().Resolve("png")
	require.NoError(t, err)

	first := gen()
	first[0] = 0x00
	assert.Equal(t, byte(0x89), gen()[0])
}

// TestNormalNotShorterThanSimple checks that simple seeds are truncations of normal ones
func TestNormalNotShorterThanSimple(t *testing.T) {
	normal := formats.NormalRegistry()
	simple := formats.SimpleRegistry()

	for _, id := range normal.Identifiers() {
		if !simple.Has(id) {
			continue
		}
		n := generate(t, formats.ModeNormal, id)
		s := generate(t, formats.ModeSimple, id)
		assert.GreaterOrEqual(t, len(n), len(s), "normal %s shorter than simple", id)
	}
}

// TestSimpleHeaderPrefixes checks the header-only simple payloads
func TestSimpleHeaderPrefixes(t *testing.T) {
	cases := map[string][]byte{
		"txt":    []byte("A"),
		"png":    {0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		"jpg":    {0xFF, 0xD8, 0xFF, 0xE0},
		"pdf":    []byte("%PDF-1.1\n"),
		"bmp":    []byte("BM"),
		"gif":    []byte("GIF89a"),
		"json":   []byte("{}"),
		"binary": {0, 1, 2, 3, 4, 5},
		"empty":  {},
	}

	for id, want := range cases {
		assert.Equal(t, want, generate(t, formats.ModeSimple, id), id)
	}

	// Where the simple seed is header-only, the normal seed begins with it
	for _, id := range []string{"png", "jpg", "pdf", "bmp", "gif"} {
		assert.True(t, bytes.HasPrefix(generate(t, formats.ModeNormal, id), generate(t, formats.ModeSimple, id)), id)
	}
}

// TestAliases checks that binary and bin resolve to the same payload
func TestAliases(t *testing.T) {
	for _, mode := range []formats.Mode{formats.ModeNormal, formats.ModeSimple} {
		assert.Equal(t, generate(t, mode, "binary"), generate(t, mode, "bin"))
	}
}

// TestUnknownFormat checks the not-found result
func TestUnknownFormat(t *testing.T) {
	_, err := formats.NormalRegistry().Resolve("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, formats.ErrUnknownFormat))

	// Identifiers are case-sensitive
	_, err = formats.NormalRegistry().Resolve("PNG")
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)

	// empty exists only in simple mode
	_, err = formats.NormalRegistry().Resolve("empty")
	assert.ErrorIs(t, err, formats.ErrUnknownFormat)
	assert.Empty(t, generate(t, formats.ModeSimple, "empty"))
}

// TestRegistryListing checks identifiers and mode bookkeeping
func TestRegistryListing(t *testing.T) {
	normal := formats.NormalRegistry()
	assert.Equal(t, formats.ModeNormal, normal.Mode())
	assert.Equal(t, []string{"bin", "binary", "bmp", "csv", "gif", "html", "jpg", "json", "pdf", "png", "txt", "xml"}, normal.Identifiers())

	simple := formats.SimpleRegistry()
	assert.Equal(t, formats.ModeSimple, simple.Mode())
	assert.Equal(t, normal.Len()+1, simple.Len())
	assert.Same(t, simple, formats.ForMode(formats.ModeSimple))
}

// TestImageHeaders decodes the PNG and GIF headers with the standard decoders
func TestImageHeaders(t *testing.T) {
	cfg, err := png.DecodeConfig(bytes.NewReader(generate(t, formats.ModeNormal, "png")))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Width)
	assert.Equal(t, 1, cfg.Height)

	cfg, err = gif.DecodeConfig(bytes.NewReader(generate(t, formats.ModeNormal, "gif")))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Width)
	assert.Equal(t, 1, cfg.Height)

	gifData := generate(t, formats.ModeNormal, "gif")
	assert.Equal(t, byte(0x3B), gifData[len(gifData)-1])
}

// TestBMPHeader checks that BMP header fields describe the file correctly
func TestBMPHeader(t *testing.T) {
	data := generate(t, formats.ModeNormal, "bmp")
	require.Len(t, data, formats.BMPHeaderSize+4)

	le := func(off int) uint32 {
		return uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
	}
	assert.Equal(t, uint32(len(data)), le(2))
	assert.Equal(t, uint32(formats.BMPHeaderSize), le(10))
	assert.Equal(t, uint32(40), le(14))
	assert.Equal(t, uint32(1), le(18))
	assert.Equal(t, uint32(1), le(22))
	assert.Equal(t, byte(24), data[28])
}

// TestJSONSeed checks the structured JSON payload
func TestJSONSeed(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(generate(t, formats.ModeNormal, "json"), &doc))
	for _, key := range []string{"name", "value", "items", "nested"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, []interface{}{"a", "b", "c"}, doc["items"])
}

// TestBinaryRecord checks the documented packed layout
func TestBinaryRecord(t *testing.T) {
	data := generate(t, formats.ModeNormal, "binary")
	require.Len(t, data, formats.BinaryRecordSize)

	var rec formats.BinaryRecord
	require.NoError(t, rec.UnmarshalBinary(data))
	assert.Equal(t, formats.BinaryRecordMagic, rec.Magic)
	assert.Equal(t, uint32(100), rec.Count)
	assert.Equal(t, uint16(200), rec.Width)
	assert.Equal(t, uint16(16), rec.Flags)
	assert.Equal(t, "testdata12", string(rec.Tag[:]))

	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, data[:4])
	assert.Error(t, rec.UnmarshalBinary(data[:10]))
}

// TestParseMode checks mode parsing and text encoding
func TestParseMode(t *testing.T) {
	mode, err := formats.ParseMode("Simple")
	require.NoError(t, err)
	assert.Equal(t, formats.ModeSimple, mode)

	mode, err = formats.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, formats.ModeNormal, mode)

	_, err = formats.ParseMode("fancy")
	assert.Error(t, err)

	text, err := formats.ModeSimple.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "simple", string(text))

	var decoded formats.Mode
	require.NoError(t, decoded.UnmarshalText([]byte("normal")))
	assert.Equal(t, formats.ModeNormal, decoded)
}
