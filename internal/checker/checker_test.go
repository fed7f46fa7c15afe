package checker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/checker/internal/config"
	"github.com/harrison/checker/internal/fileutil"
	"github.com/harrison/checker/internal/models"
	"github.com/harrison/checker/internal/resolver"
)

func createTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
}

func structuredConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(`root_path: "` + filepath.ToSlash(root) + `"
acceptable_suffixes: [cpp, pas]
problems:
  - name: math
    has_subfolder: true
  - name: graph
    has_subfolder: false
  - name: tree
    has_subfolder: true
`))
	require.NoError(t, err)
	return cfg
}

func TestRun_Success(t *testing.T) {
	root := t.TempDir()
	createTree(t, root,
		"GD-12345/math/math.cpp",
		"GD-12345/graph.cpp",
		"GD-12345/graph.pas",
		"GD-12345/tree.cpp",
		"notes/readme.txt",
	)

	runner := NewRunner(nil)
	report, err := runner.Run(structuredConfig(t, root))
	require.NoError(t, err)

	assert.Equal(t, StageFilesScanned, runner.Stage())
	assert.Equal(t, "GD-12345", report.Contestant)
	assert.Equal(t, filepath.Join(root, "GD-12345"), report.Folder)
	assert.Equal(t, 4, report.FilesScanned)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	require.Len(t, report.Results, 3)
	assert.Equal(t, models.OutcomeFound, report.Results[0].Outcome())
	assert.Equal(t, models.OutcomeDuplicate, report.Results[1].Outcome())
	assert.Equal(t, models.OutcomeMissing, report.Results[2].Outcome(), "tree.cpp is not inside tree/")
}

func TestRun_RepeatedRunsAgree(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, "GD-12345/graph.cpp", "GD-12345/graph.pas", "GD-12345/math/math.pas")
	cfg := structuredConfig(t, root)

	first, err := NewRunner(nil).Run(cfg)
	require.NoError(t, err)
	second, err := NewRunner(nil).Run(cfg)
	require.NoError(t, err)

	for i := range first.Results {
		assert.ElementsMatch(t, first.Results[i].Files, second.Results[i].Files)
	}
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_NoFolder(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, "GD-1234/math/math.cpp")

	runner := NewRunner(nil)
	report, err := runner.Run(structuredConfig(t, root))

	assert.Nil(t, report)
	assert.ErrorIs(t, err, resolver.ErrNoneFound)
	assert.Equal(t, StageConfigLoaded, runner.Stage())
}

func TestRun_MultipleFolders(t *testing.T) {
	root := t.TempDir()
	createTree(t, root, "GD-10001/a.cpp", "GD-10002/b.cpp")

	runner := NewRunner(nil)
	_, err := runner.Run(structuredConfig(t, root))

	var multi *resolver.MultipleFoundError
	require.True(t, errors.As(err, &multi))
	assert.ElementsMatch(t, []string{"GD-10001", "GD-10002"}, multi.Names)
	assert.Equal(t, StageConfigLoaded, runner.Stage())
}

func TestRun_RootMissing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	_, err := NewRunner(nil).Run(structuredConfig(t, root))
	assert.ErrorIs(t, err, fileutil.ErrRootInaccessible)
}
