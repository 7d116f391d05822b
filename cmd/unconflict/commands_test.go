// cmd/unconflict/commands_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Real filesystem (temp dirs), cobra command tree
// PURPOSE: Test the command line surface end to end, from arguments to file contents

package unconflict

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/unconflict/pkg/errors"
	"github.com/arthur-debert/unconflict/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspace isolates a test in its own working directory with no user config
func workspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, ".state"))
	for _, name := range []string{"UNCONFLICT_OUTPUT_LINE_ENDING", "UNCONFLICT_BACKUP_ENABLED", "UNCONFLICT_UI_FORMAT", "UNCONFLICT_LOG_FILE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func execute(args ...string) (string, string, error) {
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sampleConflict() string {
	return testutil.NewConflict().
		Context("ctx1").
		Block([]string{"A"}, []string{"B"}).
		Context("ctx2").
		String()
}

func TestResolve_RewritesFile(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"mt", "ctx1\nA\nB\nctx2"},
		{"tm", "ctx1\nB\nA\nctx2"},
		{"m", "ctx1\nA\nctx2"},
		{"t", "ctx1\nB\nctx2"},
		{"none", "ctx1\nctx2"},
		{"MT", "ctx1\nA\nB\nctx2"},
		{"theirs-only", "ctx1\nB\nctx2"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			dir := workspace(t)
			path := writeFile(t, dir, "file.txt", sampleConflict())

			stdout, _, err := execute(path, tt.mode)
			require.NoError(t, err)

			assert.Equal(t, tt.want, readFile(t, path))
			assert.Contains(t, stdout, "Resolved 1 conflict in "+path)
		})
	}
}

func TestResolve_NoConflicts(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "clean.txt", "a\nb\n")
	before, err := os.Stat(path)
	require.NoError(t, err)

	stdout, _, err := execute(path, "m")
	require.NoError(t, err)

	assert.Equal(t, "There are no conflicts in file "+path+"\n", stdout)
	assert.Equal(t, "a\nb\n", readFile(t, path))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestResolve_LeavesNoLogFile(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "f.txt", sampleConflict())

	_, _, err := execute("-vv", path, "MT")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".state"))
	assert.True(t, os.IsNotExist(err), "no state directory is created")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.txt", entries[0].Name())
}

func TestResolve_SymlinkedFile(t *testing.T) {
	dir := workspace(t)
	target := writeFile(t, dir, "target.txt", sampleConflict())
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("target.txt", link))

	_, _, err := execute(link, "M")
	require.NoError(t, err)

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must stay a symlink")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<<<<<<<")
	assert.Contains(t, string(data), "A")
	assert.NotContains(t, string(data), "B")
}

func TestResolve_LogFileFlag(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "f.txt", sampleConflict())
	logPath := filepath.Join(dir, "run.log")

	_, _, err := execute("-v", "--log-file", logPath, path, "m")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, logPath), "File resolved")
}

func TestResolve_NotEnoughArguments(t *testing.T) {
	workspace(t)

	for _, args := range [][]string{{}, {"only-a-path.txt"}} {
		_, _, err := execute(args...)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
		assert.True(t, IsUsageError(err))
		assert.Equal(t, ExitUsage, ExitCode(err))
		assert.Equal(t, MsgErrNotEnoughArgs, ErrorMessage(err))
	}
}

func TestResolve_InvalidModeLeavesFileAlone(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "file.txt", sampleConflict())

	_, _, err := execute(path, "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.False(t, IsUsageError(err))
	assert.Contains(t, ErrorMessage(err), "invalid resolve mode x")
	assert.Contains(t, ErrorMessage(err), "mt, tm, m, t, none")

	assert.Equal(t, sampleConflict(), readFile(t, path))
}

func TestResolve_InvalidModeChecksBeforeFileAccess(t *testing.T) {
	workspace(t)

	_, _, err := execute("does-not-exist.txt", "bogus")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
}

func TestResolve_MalformedLeavesFileAlone(t *testing.T) {
	dir := workspace(t)
	content := "a\n<<<<<<< HEAD\nmine\n=======\ntheirs"
	path := writeFile(t, dir, "broken.txt", content)

	_, _, err := execute(path, "mt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedConflict))
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, ErrorMessage(err), path)

	assert.Equal(t, content, readFile(t, path))
}

func TestResolve_MissingFile(t *testing.T) {
	workspace(t)

	_, _, err := execute("missing.txt", "m")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestResolve_DryRun(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "file.txt", sampleConflict())

	stdout, stderr, err := execute("--dry-run", path, "m")
	require.NoError(t, err)

	assert.Equal(t, "ctx1\nA\nctx2", stdout)
	assert.Contains(t, stderr, MsgDryRunNotice)
	assert.Equal(t, sampleConflict(), readFile(t, path))
}

func TestResolve_Backup(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "file.txt", sampleConflict())

	stdout, _, err := execute("--backup", path, "t")
	require.NoError(t, err)

	assert.Equal(t, "ctx1\nB\nctx2", readFile(t, path))
	assert.Equal(t, sampleConflict(), readFile(t, path+".orig"))
	assert.Contains(t, stdout, path+".orig")
}

func TestResolve_ProjectConfig(t *testing.T) {
	dir := workspace(t)
	writeFile(t, dir, ".unconflict.toml", "[output]\nline_ending = \"crlf\"\nfinal_newline = true\n")
	path := writeFile(t, dir, "file.txt", sampleConflict())

	_, _, err := execute(path, "mt")
	require.NoError(t, err)

	assert.Equal(t, "ctx1\r\nA\r\nB\r\nctx2\r\n", readFile(t, path))
}

func TestResolve_ExplicitConfigMustExist(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "file.txt", sampleConflict())

	_, _, err := execute("--config", filepath.Join(dir, "nope.toml"), path, "m")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, sampleConflict(), readFile(t, path))
}

func TestResolve_ResolvedFileHasNoConflicts(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "file.txt", sampleConflict())

	_, _, err := execute(path, "mt")
	require.NoError(t, err)
	first := readFile(t, path)

	stdout, _, err := execute(path, "mt")
	require.NoError(t, err)
	assert.Contains(t, stdout, "There are no conflicts")
	assert.Equal(t, first, readFile(t, path))
}

func TestScanCmd_Text(t *testing.T) {
	dir := workspace(t)
	conflicted := writeFile(t, dir, "a.txt", sampleConflict())
	clean := writeFile(t, dir, "b.txt", "plain\n")

	stdout, _, err := execute("scan", conflicted, clean)
	require.NoError(t, err)

	assert.Contains(t, stdout, conflicted+": 1 conflict")
	assert.Contains(t, stdout, clean+": no conflicts")
	assert.Contains(t, stdout, "line 2-6")
	assert.Equal(t, sampleConflict(), readFile(t, conflicted))
}

func TestScanCmd_JSON(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "a.txt", sampleConflict())

	stdout, _, err := execute("scan", "--format", "json", path)
	require.NoError(t, err)

	var doc struct {
		Files []struct {
			Path      string `json:"path"`
			Conflicts int    `json:"conflicts"`
		} `json:"files"`
		Summary struct {
			Conflicts int `json:"conflicts"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	require.Len(t, doc.Files, 1)
	assert.Equal(t, path, doc.Files[0].Path)
	assert.Equal(t, 1, doc.Files[0].Conflicts)
	assert.Equal(t, 1, doc.Summary.Conflicts)
}

func TestScanCmd_Checkstyle(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "a.txt", sampleConflict())

	stdout, _, err := execute("scan", "-f", "checkstyle", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "<?xml"))
	assert.Contains(t, stdout, `source="unconflict.conflict"`)
}

func TestScanCmd_FailuresSetExitCode(t *testing.T) {
	dir := workspace(t)
	broken := writeFile(t, dir, "broken.txt", "<<<<<<< HEAD\nmine")

	stdout, _, err := execute("scan", broken, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, ErrorMessage(err), "2 of 2 files")
	assert.Contains(t, stdout, broken+": error")
}

func TestScanCmd_NeedsFiles(t *testing.T) {
	workspace(t)

	_, _, err := execute("scan")
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestScanCmd_InvalidFormat(t *testing.T) {
	dir := workspace(t)
	path := writeFile(t, dir, "a.txt", sampleConflict())

	_, _, err := execute("scan", "--format", "yaml", path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRepoCmd_InvalidModeBeforeGit(t *testing.T) {
	workspace(t)

	_, _, err := execute("repo", "sideways")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidMode))
}

func TestRepoCmd_NotARepository(t *testing.T) {
	workspace(t)
	t.Setenv("UNCONFLICT_GIT_BACKEND", "go-git")

	_, _, err := execute("repo", "m")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotARepo))
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestVersionCmd(t *testing.T) {
	workspace(t)

	stdout, _, err := execute("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "unconflict dev"))
}

func TestGenConfigCmd(t *testing.T) {
	workspace(t)

	stdout, _, err := execute("genconfig")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[markers]")
	assert.Contains(t, stdout, "# header")
}

func TestConfigCmd_ShowsEffectiveValues(t *testing.T) {
	workspace(t)
	t.Setenv("UNCONFLICT_OUTPUT_LINE_ENDING", "crlf")

	stdout, _, err := execute("config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "line_ending")
	assert.Contains(t, stdout, "crlf")
}

func TestHelpTopics(t *testing.T) {
	workspace(t)

	stdout, _, err := execute("help", "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "modes")
	assert.Contains(t, stdout, "markers")
	assert.Contains(t, stdout, "config")

	stdout, _, err = execute("help", "modes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mine-then-theirs")
}

func TestCompletionCmd(t *testing.T) {
	workspace(t)

	stdout, _, err := execute("completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "unconflict")

	_, _, err = execute("completion", "tcsh")
	require.Error(t, err)
}
