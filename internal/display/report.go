package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/checker/internal/models"
)

// RenderReport writes the human-readable report: the resolved folder, then one
// block per problem in configured order, then a one-line summary. Paths are
// printed in the order they were found.
func RenderReport(w io.Writer, report *models.Report) {
	label := color.New(color.FgCyan)
	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed)
	duplicate := color.New(color.FgYellow)

	fmt.Fprintf(w, "%s %s\n\n", label.Sprint("Contestant folder:"), report.Folder)

	for _, res := range report.Results {
		fmt.Fprintf(w, "Problem %s:\n", color.New(color.Bold).Sprint(res.Problem.Name))

		switch res.Outcome() {
		case models.OutcomeMissing:
			fmt.Fprintf(w, "  %s\n", missing.Sprint(res.Problem.Hint()))
		case models.OutcomeFound:
			fmt.Fprintf(w, "  %s %s\n", found.Sprint("Found:"), res.Files[0])
		case models.OutcomeDuplicate:
			fmt.Fprintf(w, "  %s\n", duplicate.Sprint("Multiple source files found:"))
			for _, file := range res.Files {
				fmt.Fprintf(w, "    %s\n", file)
			}
		}

		fmt.Fprintln(w)
	}

	if len(report.ScanErrors) > 0 {
		WarnScanErrors(report.ScanErrors).Display(w)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d problem(s): %s, %s, %s\n",
		len(report.Results),
		found.Sprintf("%d found", report.Count(models.OutcomeFound)),
		missing.Sprintf("%d missing", report.Count(models.OutcomeMissing)),
		duplicate.Sprintf("%d with multiple files", report.Count(models.OutcomeDuplicate)),
	)
}

type jsonProblem struct {
	Name   string         `json:"name"`
	Status models.Outcome `json:"status"`
	Files  []string       `json:"files"`
	Hint   string         `json:"hint,omitempty"`
}

type jsonReport struct {
	RunID        string        `json:"run_id"`
	RootPath     string        `json:"root_path"`
	Contestant   string        `json:"contestant"`
	Folder       string        `json:"folder"`
	FilesScanned int           `json:"files_scanned"`
	Problems     []jsonProblem `json:"problems"`
	ScanErrors   []string      `json:"scan_errors,omitempty"`
}

// RenderJSON writes the report as a single indented JSON document.
func RenderJSON(w io.Writer, report *models.Report) error {
	out := jsonReport{
		RunID:        report.RunID,
		RootPath:     report.Root,
		Contestant:   report.Contestant,
		Folder:       report.Folder,
		FilesScanned: report.FilesScanned,
		Problems:     make([]jsonProblem, 0, len(report.Results)),
	}

	for _, res := range report.Results {
		p := jsonProblem{
			Name:   res.Problem.Name,
			Status: res.Outcome(),
			Files:  res.Files,
		}
		if p.Files == nil {
			p.Files = []string{}
		}
		if p.Status == models.OutcomeMissing {
			p.Hint = res.Problem.Hint()
		}
		out.Problems = append(out.Problems, p)
	}
	for _, err := range report.ScanErrors {
		out.ScanErrors = append(out.ScanErrors, err.Error())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
