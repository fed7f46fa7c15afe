// Package checker runs one validation pass: resolve the contestant folder,
// match its files against the configured problems, and hand back a report.
package checker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/harrison/checker/internal/config"
	"github.com/harrison/checker/internal/logger"
	"github.com/harrison/checker/internal/matcher"
	"github.com/harrison/checker/internal/models"
	"github.com/harrison/checker/internal/resolver"
)

// Stage is a step of a run. Stages only move forward; a failure ends the run
// in the stage where it happened.
type Stage string

// Stages in the order a successful run passes through them
const (
	StageStart          Stage = "start"
	StageConfigLoaded   Stage = "config_loaded"
	StageFolderResolved Stage = "folder_resolved"
	StageFilesScanned   Stage = "files_scanned"
	StageReported       Stage = "reported"
)

// Runner drives a single run and remembers how far it got.
type Runner struct {
	logger logger.Logger
	stage  Stage
}

// NewRunner creates a Runner in StageStart. A nil logger discards output.
func NewRunner(log logger.Logger) *Runner {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Runner{logger: log, stage: StageStart}
}

// Stage returns the last stage the run reached.
func (r *Runner) Stage() Stage {
	return r.stage
}

// Advance moves the run to stage.
func (r *Runner) Advance(stage Stage) {
	r.logger.LogDebug(fmt.Sprintf("stage %s -> %s", r.stage, stage))
	r.stage = stage
}

// Run resolves the contestant folder under cfg.RootPath and matches its files.
// The config must already be loaded, so the run starts from StageConfigLoaded.
//
// Errors are returned unchanged from the resolver and matcher so callers can
// classify them with errors.Is and errors.As.
func (r *Runner) Run(cfg *config.Config) (*models.Report, error) {
	r.Advance(StageConfigLoaded)

	res, err := resolver.Resolve(cfg.RootPath, cfg.IDRule(), r.logger)
	if err != nil {
		return nil, err
	}
	r.Advance(StageFolderResolved)

	report, err := matcher.Match(res.Path, cfg.ProblemSpecs(), r.logger)
	if err != nil {
		return nil, err
	}
	r.Advance(StageFilesScanned)

	report.RunID = uuid.NewString()
	report.Root = cfg.RootPath
	report.Contestant = res.Name
	r.logger.LogInfo(fmt.Sprintf("scanned %d files under %s", report.FilesScanned, report.Folder))

	return report, nil
}
