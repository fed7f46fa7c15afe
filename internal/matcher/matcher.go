// Package matcher assigns the files of a contestant folder to problems.
package matcher

import (
	"fmt"

	"github.com/harrison/checker/internal/fileutil"
	"github.com/harrison/checker/internal/logger"
	"github.com/harrison/checker/internal/models"
	"github.com/harrison/checker/internal/rule"
)

// Match walks folder once and tests every file against every problem's rule.
// A file is recorded under each problem it satisfies, in traversal order.
//
// folder must be accessible; otherwise the returned error wraps
// fileutil.ErrRootInaccessible. Unreadable directories below folder are
// collected in Report.ScanErrors and do not stop the walk.
func Match(folder string, problems []models.Problem, log logger.Logger) (*models.Report, error) {
	if err := fileutil.CheckDir(folder); err != nil {
		return nil, fmt.Errorf("contestant folder %s: %w", folder, err)
	}

	report := &models.Report{
		Folder:  folder,
		Results: make([]models.MatchResult, len(problems)),
	}
	for i, p := range problems {
		report.Results[i].Problem = p
	}

	for path, err := range fileutil.WalkFiles(folder) {
		if err != nil {
			log.LogWarn(err.Error())
			report.ScanErrors = append(report.ScanErrors, err)
			continue
		}
		report.FilesScanned++

		rel, err := rule.NewRelPath(folder, path)
		if err != nil {
			report.ScanErrors = append(report.ScanErrors, err)
			continue
		}

		matched := false
		for i := range report.Results {
			res := &report.Results[i]
			if !res.Problem.Rule.MatchPath(rel) {
				continue
			}
			res.Files = append(res.Files, path)
			matched = true
			log.LogDebug(fmt.Sprintf("%s matches problem %s", rel, res.Problem.Name))
		}
		if !matched {
			log.LogTrace(fmt.Sprintf("%s matches no problem", rel))
		}
	}

	return report, nil
}
