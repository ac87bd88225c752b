/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Configuration, per-seed outcomes and run reports for the seed generator.
*/

package seedgen

import (
	"errors"
	"time"

	"github.com/kleascm/akaylee-seedgen/pkg/formats"
)

// ManifestFile is written into the output directory when Config.Manifest is set
const ManifestFile = "manifest.json"

// Config describes one generation run. It is passed explicitly so runs never
// depend on process-wide state.
type Config struct {
	OutputDir string       `json:"output_dir"`
	Formats   []string     `json:"formats"`
	Mode      formats.Mode `json:"mode"`
	Boundary  bool         `json:"boundary"`
	Manifest  bool         `json:"manifest"`
}

// Validate checks the config before any file is touched
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	switch c.Mode {
	case formats.ModeNormal, formats.ModeSimple:
		// ok
	default:
		return errors.New("unsupported generation mode: " + c.Mode.String())
	}
	return nil
}

// Kind distinguishes format seeds from boundary payloads
type Kind string

const (
	KindFormat   Kind = "format"
	KindBoundary Kind = "boundary"
)

// Status is the result of one requested seed
type Status string

const (
	StatusCreated Status = "created"
	StatusUnknown Status = "unknown"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one requested identifier or boundary payload
type Outcome struct {
	Identifier string `json:"identifier"`
	Kind       Kind   `json:"kind"`
	Status     Status `json:"status"`
	Path       string `json:"path,omitempty"`
	Size       int    `json:"size"`
	SHA256     string `json:"sha256,omitempty"`
	Error      string `json:"error,omitempty"`
	Err        error  `json:"-"`
}

// Report summarises one generation run
type Report struct {
	RunID     string        `json:"run_id"`
	Mode      formats.Mode  `json:"mode"`
	OutputDir string        `json:"output_dir"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Outcomes  []Outcome     `json:"outcomes"`
}

// Created returns the outcomes that produced a file
func (r *Report) Created() []Outcome { return r.filter(StatusCreated) }

// Unknown returns the outcomes for identifiers that did not resolve
func (r *Report) Unknown() []Outcome { return r.filter(StatusUnknown) }

// Failed returns the outcomes whose file could not be written
func (r *Report) Failed() []Outcome { return r.filter(StatusFailed) }

func (r *Report) filter(status Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
