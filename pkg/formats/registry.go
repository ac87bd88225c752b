/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Format generator registry. Maps short format identifiers such as "png"
or "json" to deterministic byte generators, with one fixed registry per generation
mode. Several identifiers may alias the same generator.
*/

package formats

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFormat is returned when an identifier is absent from a registry
var ErrUnknownFormat = errors.New("unknown format")

// Generator produces the bytes of one seed. Generators depend on no external
// state and return identical bytes on every call.
type Generator func() []byte

// Registry is a fixed mapping from format identifier to generator for one mode.
// Registries are built once and never modified.
type Registry struct {
	mode       Mode
	generators map[string]Generator
}

var normalRegistry = &Registry{
	mode: ModeNormal,
	generators: map[string]Generator{
		"txt":    fixed(textNormal),
		"png":    fixed(pngNormal),
		"jpg":    fixed(jpegNormal),
		"pdf":    fixed(pdfNormal),
		"bmp":    fixed(bmpNormal),
		"gif":    fixed(gifNormal),
		"xml":    fixed(xmlNormal),
		"json":   fixed(jsonNormal),
		"html":   fixed(htmlNormal),
		"csv":    fixed(csvNormal),
		"binary": binaryNormal,
		"bin":    binaryNormal,
	},
}

var simpleRegistry = &Registry{
	mode: ModeSimple,
	generators: map[string]Generator{
		"txt":    fixed(textSimple),
		"png":    fixed(pngSimple),
		"jpg":    fixed(jpegSimple),
		"pdf":    fixed(pdfSimple),
		"bmp":    fixed(bmpSimple),
		"gif":    fixed(gifSimple),
		"xml":    fixed(xmlSimple),
		"json":   fixed(jsonSimple),
		"html":   fixed(htmlSimple),
		"csv":    fixed(csvSimple),
		"binary": fixed(binarySimple),
		"bin":    fixed(binarySimple),
		"empty":  fixed(nil),
	},
}

// NormalRegistry returns the registry of well-formed generators
func NormalRegistry() *Registry { return normalRegistry }

// SimpleRegistry returns the registry of truncated generators
func SimpleRegistry() *Registry { return simpleRegistry }

// ForMode returns the registry for the given mode. Unrecognised modes fall back
// to the normal registry.
func ForMode(mode Mode) *Registry {
	if mode == ModeSimple {
		return simpleRegistry
	}
	return normalRegistry
}

// Mode returns the mode this registry serves
func (r *Registry) Mode() Mode {
	return r.mode
}

// Resolve looks up the generator for an identifier. Identifiers are
// case-sensitive. Absent identifiers yield an error wrapping ErrUnknownFormat.
func (r *Registry) Resolve(id string) (Generator, error) {
	gen, ok := r.generators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s mode)", ErrUnknownFormat, id, r.mode)
	}
	return gen, nil
}

// Has reports whether the identifier resolves in this registry
func (r *Registry) Has(id string) bool {
	_, ok := r.generators[id]
	return ok
}

// Identifiers returns every identifier in the registry, sorted
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.generators))
	for id := range r.generators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of identifiers in the registry
func (r *Registry) Len() int {
	return len(r.generators)
}

// fixed wraps a constant payload in a generator that hands out a private copy,
// so callers can never alter what later calls return.
func fixed(payload []byte) Generator {
	return func() []byte {
		if len(payload) == 0 {
			return []byte{}
		}
		return bytes.Clone(payload)
	}
}
