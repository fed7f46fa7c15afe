// Package rule implements the predicates that decide which directory is a
// contestant folder and which files belong to which problem.
//
// Two capabilities exist. An IDRule looks at a bare directory name. A
// LocationRule looks at a file path relative to the contestant folder. Every
// rule matches the whole input, never a substring.
package rule

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// IDRule decides whether a directory name is a contestant identifier.
type IDRule interface {
	MatchName(name string) bool
	String() string
}

// LocationRule decides whether a file belongs to a problem.
type LocationRule interface {
	MatchPath(p RelPath) bool
	String() string
}

// RelPath is a path relative to a contestant folder, kept as segments so that
// comparisons never depend on the host separator.
type RelPath []string

// NewRelPath returns path relative to root. path must lie strictly inside root.
func NewRelPath(root, path string) (RelPath, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize %s: %w", path, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %s is not inside %s", path, root)
	}
	return RelPath(strings.Split(rel, string(filepath.Separator))), nil
}

// ParseRelPath splits a slash-separated path. Empty segments are dropped.
func ParseRelPath(s string) RelPath {
	var p RelPath
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			p = append(p, seg)
		}
	}
	return p
}

// String joins the segments with "/".
func (p RelPath) String() string {
	return strings.Join(p, "/")
}

// StructuredID accepts names of exactly Length bytes that start with Prefix
// and continue with decimal digits only, e.g. GD-12345.
type StructuredID struct {
	Length int
	Prefix string
}

// DefaultID is the contestant identifier used when the config names none.
var DefaultID = StructuredID{Length: 8, Prefix: "GD-"}

func (r StructuredID) MatchName(name string) bool {
	if len(name) != r.Length {
		return false
	}
	rest, ok := strings.CutPrefix(name, r.Prefix)
	if !ok {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}

func (r StructuredID) String() string {
	return fmt.Sprintf("%s followed by %d digits", r.Prefix, r.Length-len(r.Prefix))
}

// SuffixRule expects "{name}.{suffix}" at the folder root, or
// "{name}/{name}.{suffix}" when HasSubfolder is set. Comparison is exact.
type SuffixRule struct {
	Name         string
	HasSubfolder bool
	Suffixes     []string
}

func (r SuffixRule) MatchPath(p RelPath) bool {
	rel := p.String()
	for _, candidate := range r.Candidates() {
		if rel == candidate {
			return true
		}
	}
	return false
}

// Candidates returns every relative path the rule accepts, in suffix order.
func (r SuffixRule) Candidates() []string {
	out := make([]string, 0, len(r.Suffixes))
	for _, suffix := range r.Suffixes {
		file := r.Name + "." + suffix
		if r.HasSubfolder {
			file = r.Name + "/" + file
		}
		out = append(out, file)
	}
	return out
}

func (r SuffixRule) String() string {
	return strings.Join(r.Candidates(), " | ")
}

// RegexRule matches a regular expression against the entire input.
// Relative paths are matched in their slash-joined form.
type RegexRule struct {
	expr string
	re   *regexp.Regexp
}

// NewRegexRule compiles expr anchored at both ends. expr must compile on its
// own so unbalanced groups cannot escape the anchors.
func NewRegexRule(expr string) (*RegexRule, error) {
	if _, err := regexp.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	return &RegexRule{expr: expr, re: re}, nil
}

func (r *RegexRule) MatchName(name string) bool { return r.re.MatchString(name) }

func (r *RegexRule) MatchPath(p RelPath) bool { return r.re.MatchString(p.String()) }

func (r *RegexRule) String() string { return "regex " + r.expr }

// GlobRule matches a shell-style glob. "*" does not cross "/", "**" does.
type GlobRule struct {
	pattern string
	g       glob.Glob
}

// NewGlobRule compiles pattern with "/" as the segment separator.
func NewGlobRule(pattern string) (*GlobRule, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
	}
	return &GlobRule{pattern: pattern, g: g}, nil
}

func (r *GlobRule) MatchName(name string) bool { return r.g.Match(name) }

func (r *GlobRule) MatchPath(p RelPath) bool { return r.g.Match(p.String()) }

func (r *GlobRule) String() string { return "glob " + r.pattern }

var (
	_ IDRule       = StructuredID{}
	_ IDRule       = (*RegexRule)(nil)
	_ IDRule       = (*GlobRule)(nil)
	_ LocationRule = SuffixRule{}
	_ LocationRule = (*RegexRule)(nil)
	_ LocationRule = (*GlobRule)(nil)
)
