package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/llehouerou/periodic/internal/element"
	"github.com/llehouerou/periodic/internal/state"
	"github.com/llehouerou/periodic/internal/ui/layout"
	"github.com/llehouerou/periodic/internal/ui/render"
	"github.com/llehouerou/periodic/internal/ui/styles"
	"github.com/llehouerou/periodic/internal/ui/testutil"
)

const quietConfig = `
icons = "none"

[log]
level = "off"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return testutil.StripANSI(out.String()), err
}

func TestPrint_CountsMatches(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	out, err := run(t, "--config", cfg, "print", "--group", "1", "--state", "Solid")
	require.NoError(t, err)

	assert.Contains(t, out, "6 matches of 118")
	assert.Contains(t, out, "Li")
	assert.Contains(t, out, "57-71")
}

func TestPrint_DimsNonMatchingHydrogen(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	cfg := writeFile(t, "config.toml", quietConfig)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfg, "print", "--group", "18"})
	require.NoError(t, cmd.Execute())

	th := styles.T()
	cw, _ := layout.CellSize(false)
	symbol := render.Center("H", cw)
	dimmed := th.Cell(string(element.CategoryNonmetal), false).Bold(true).Render(symbol)
	cursor := lipgloss.NewStyle().Background(th.Primary).Foreground(th.BgBase).Bold(true).Render(symbol)

	assert.Contains(t, out.String(), dimmed)
	assert.NotContains(t, out.String(), cursor)
}

func TestPrint_SingleMatch(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	out, err := run(t, "--config", cfg, "print", "--search", "iron", "--narrow")
	require.NoError(t, err)

	assert.Contains(t, out, "1 match of 118")
}

func TestPrint_UnknownChoice(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	_, err := run(t, "--config", cfg, "print", "--state", "Plasma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown state "Plasma"`)
}

func TestShow(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	tests := []struct {
		name  string
		query string
	}{
		{"symbol", "Fe"},
		{"number", "26"},
		{"name case-insensitive", "IRON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "--config", cfg, "show", tt.query)
			require.NoError(t, err)
			assert.Contains(t, out, "Iron")
			assert.Contains(t, out, "55.845 u")
			assert.Contains(t, out, "4th")
		})
	}
}

func TestShow_NotFound(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	_, err := run(t, "--config", cfg, "show", "Xx")
	require.Error(t, err)
	assert.Equal(t, "Failed to find element 'Xx': no such element", err.Error())
}

func TestShow_RequiresOneArg(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)

	_, err := run(t, "--config", cfg, "show")
	require.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "show", "Fe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load configuration")
}

const offTableDataset = `
[[elements]]
number = 1
symbol = "H"
name = "Hydrogen"
group = "1"
period = 1
category = "Nonmetal"
state = "Gas"
atomic_mass = 1.008

[[elements]]
number = 150
symbol = "Zz"
name = "Imaginarium"
group = "1"
period = 8
category = "Unknown"
state = "Solid"
`

func TestDataset_LenientDropsUnplaceable(t *testing.T) {
	dataset := writeFile(t, "elements.toml", offTableDataset)
	cfg := writeFile(t, "config.toml", "dataset = \""+dataset+"\"\n"+quietConfig)

	out, err := run(t, "--config", cfg, "print")
	require.NoError(t, err)
	assert.Contains(t, out, "2 matches of 2")
}

func TestDataset_StrictRejectsUnplaceable(t *testing.T) {
	dataset := writeFile(t, "elements.toml", offTableDataset)
	cfg := writeFile(t, "config.toml", "strict_dataset = true\ndataset = \""+dataset+"\"\n"+quietConfig)

	_, err := run(t, "--config", cfg, "print")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load element dataset")
}

func TestPrint_ExampleCategoryExists(t *testing.T) {
	cfg := writeFile(t, "config.toml", quietConfig)
	assert.Contains(t, newPrintCmd(&env{}).Example, `--category "Noble Gas"`)

	out, err := run(t, "--config", cfg, "print", "--category", "Noble Gas", "--narrow")
	require.NoError(t, err)
	assert.Contains(t, out, "6 matches of 118")
}

func TestWithEnv_ClosesLogOnError(t *testing.T) {
	closed := 0
	e := &env{closeLog: func() { closed++ }}
	boom := errors.New("boom")

	run := e.withEnv(func(*cobra.Command, []string) error { return boom })
	require.ErrorIs(t, run(nil, nil), boom)
	assert.Equal(t, 1, closed)

	e.close()
	assert.Equal(t, 1, closed, "close is idempotent")
}

func TestLoad_ClosesLogWhenDatasetFails(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "periodic.log")
	cfg := writeFile(t, "config.toml",
		"dataset = \""+filepath.Join(t.TempDir(), "missing.toml")+"\"\n\n[log]\nlevel = \"info\"\nfile = \""+logFile+"\"\n")

	var e env
	err := e.load(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load element dataset")
	assert.Nil(t, e.closeLog)
	assert.FileExists(t, logFile)
}

func TestOpenPreferences_LogsFormattedFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	failing := func() (*state.Manager, error) { return nil, errors.New("disk full") }

	assert.Nil(t, openPreferences(failing, zap.New(core)))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to open preferences: disk full", logs.All()[0].Message)
}

func TestOpenPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "periodic.db")
	mgr := openPreferences(func() (*state.Manager, error) { return state.OpenPath(path) }, zap.NewNop())
	require.NotNil(t, mgr)
	require.NoError(t, mgr.Close())
}
