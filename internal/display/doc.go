// Package display renders everything the checker shows to the operator.
//
// # Report
//
// RenderReport prints one block per problem in configured order:
//
//	Problem math:
//	  Found: /contest/GD-12345/math/math.cpp
//
//	Problem graph:
//	  Multiple source files found:
//	    /contest/GD-12345/graph/graph.cpp
//	    /contest/GD-12345/graph/graph.pas
//
//	Problem tree:
//	  No source files found.
//
// RenderJSON prints the same data as one JSON document for scripts.
//
// # Warnings
//
// Warning renders diagnostics with an optional message, affected paths and a
// suggestion. Display is used for non-fatal problems, DisplayFatal for the
// message printed before the checker exits with a non-zero code:
//
//	warning := display.Warning{
//	    Title:      "Errcode 4, found multiple personal directories.",
//	    Files:      []string{"/contest/GD-10001", "/contest/GD-10002"},
//	    Suggestion: "Keep exactly one folder named after your contestant ID",
//	}
//	warning.DisplayFatal(os.Stderr)
//
// # Colors
//
// Colors come from github.com/fatih/color and follow its global NoColor
// switch, so output is plain when stderr is not a terminal, when NO_COLOR is
// set, or when the operator passes --color never.
package display
