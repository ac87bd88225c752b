/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Seed corpus orchestration. Resolves requested format identifiers against
the registry for the active mode, writes one seed.<id> file per resolved identifier,
optionally writes the boundary payloads as seed_<name>.dat, and reports the outcome
of every request. Unknown identifiers and individual write failures never abort the
batch.
*/

package seedgen

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-seedgen/pkg/boundary"
	"github.com/kleascm/akaylee-seedgen/pkg/formats"
	"github.com/kleascm/akaylee-seedgen/pkg/logging"
)

// Generator runs seed generation batches. Runs are sequential and share no
// state beyond the immutable registries.
type Generator struct {
	logger *logging.Logger
}

// New creates a generator. A nil logger discards all log output.
func New(logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Generator{logger: logger}
}

// SeedFileName returns the on-disk name for a format identifier
func SeedFileName(id string) string {
	return "seed." + id
}

// Run executes one generation batch. The only fatal conditions are an invalid
// config, an output directory that cannot be created, and a manifest that cannot
// be written; everything else is reported per outcome.
func (g *Generator) Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config: %w", err)
	}

	report := &Report{
		RunID:     uuid.New().String(),
		Mode:      cfg.Mode,
		OutputDir: cfg.OutputDir,
		StartedAt: time.Now(),
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	registry := formats.ForMode(cfg.Mode)
	for _, id := range cfg.Formats {
		report.Outcomes = append(report.Outcomes, g.generateFormat(registry, cfg.OutputDir, id))
	}

	if cfg.Boundary {
		for _, payload := range boundary.Payloads() {
			report.Outcomes = append(report.Outcomes, g.generateBoundary(cfg.OutputDir, payload))
		}
	}

	report.Duration = time.Since(report.StartedAt)
	g.logger.LogSummary(report.RunID, len(report.Created()), len(report.Unknown()), len(report.Failed()), report.Duration)

	if cfg.Manifest {
		if err := writeManifest(cfg.OutputDir, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

// generateFormat resolves one identifier and writes its seed file
func (g *Generator) generateFormat(registry *formats.Registry, dir, id string) Outcome {
	outcome := Outcome{Identifier: id, Kind: KindFormat}

	gen, err := registry.Resolve(id)
	if err != nil {
		outcome.Status = StatusUnknown
		outcome.Err = err
		outcome.Error = err.Error()
		g.logger.LogUnknown(id, registry.Mode().String())
		return outcome
	}

	outcome.Path = filepath.Join(dir, SeedFileName(id))
	if err := writeSeed(outcome.Path, gen(), &outcome); err != nil {
		g.logger.LogWriteFailure(id, outcome.Path, err)
		return outcome
	}

	g.logger.LogSeed(id, outcome.Path, outcome.Size, map[string]interface{}{
		"mode": registry.Mode().String(),
	})
	return outcome
}

// generateBoundary writes one boundary payload file
func (g *Generator) generateBoundary(dir string, payload boundary.Payload) Outcome {
	outcome := Outcome{
		Identifier: payload.Name,
		Kind:       KindBoundary,
		Path:       filepath.Join(dir, boundary.FileName(payload.Name)),
	}

	if err := writeSeed(outcome.Path, payload.Generate(), &outcome); err != nil {
		g.logger.LogWriteFailure(payload.Name, outcome.Path, err)
		return outcome
	}

	g.logger.LogBoundary(payload.Name, outcome.Path, outcome.Size)
	return outcome
}

// writeSeed writes data in a single write-and-close and fills in the outcome
func writeSeed(path string, data []byte, outcome *Outcome) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
		outcome.Error = outcome.Err.Error()
		return outcome.Err
	}

	sum := sha256.Sum256(data)
	outcome.Status = StatusCreated
	outcome.Size = len(data)
	outcome.SHA256 = hex.EncodeToString(sum[:])
	return nil
}

// writeManifest records the report next to the seeds it describes
func writeManifest(dir string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
