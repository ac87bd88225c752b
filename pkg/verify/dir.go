/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dir.go
Description: Directory-level seed inspection. Checks every seed.<id> file with Check
and compares every seed_<name>.dat file with its boundary payload.
*/

package verify

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kleascm/akaylee-seedgen/pkg/boundary"
	"github.com/kleascm/akaylee-seedgen/pkg/formats"
)

// Result is the inspection outcome for one file
type Result struct {
	Path       string
	Identifier string
	Boundary   bool
	Size       int
	Err        error
}

// OK reports whether the file passed inspection
func (r Result) OK() bool { return r.Err == nil }

// Dir inspects the seed files in dir. Files that are not seeds are skipped.
// Results follow directory order, which os.ReadDir sorts by name.
func Dir(dir string, mode formats.Mode) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed directory: %w", err)
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		switch {
		case strings.HasPrefix(name, "seed."):
			results = append(results, checkFile(path, strings.TrimPrefix(name, "seed."), mode))
		case strings.HasPrefix(name, "seed_") && strings.HasSuffix(name, ".dat"):
			results = append(results, checkBoundaryFile(path, strings.TrimSuffix(strings.TrimPrefix(name, "seed_"), ".dat")))
		}
	}

	return results, nil
}

func checkFile(path, id string, mode formats.Mode) Result {
	result := Result{Path: path, Identifier: id}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Size = len(data)
	result.Err = Check(id, data, mode)
	if errors.Is(result.Err, formats.ErrUnknownFormat) {
		if sniffed := Sniff(data); sniffed != "" {
			result.Err = fmt.Errorf("%w (content looks like %s)", result.Err, sniffed)
		}
	}
	return result
}

func checkBoundaryFile(path, name string) Result {
	result := Result{Path: path, Identifier: name, Boundary: true}

	payload, ok := boundary.Lookup(name)
	if !ok {
		result.Err = fmt.Errorf("%w: unknown boundary payload %q", ErrMalformed, name)
		return result
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Size = len(data)

	if !bytes.Equal(data, payload.Generate()) {
		result.Err = fmt.Errorf("%w: %s does not match the boundary payload", ErrMalformed, name)
	}
	return result
}
