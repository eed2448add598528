package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cofactor/determinant"
	"github.com/katalvlaran/cofactor/loader"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout, stderr and
// the error from execute.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := execute(root)
	return stdout.String(), stderr.String(), err
}

func td(name string) string { return filepath.Join("testdata", name) }

func TestDet_Golden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"det_reference", []string{"det", td("reference.txt")}},
		{"det_vandermonde_both", []string{"det", "--engine", "both", td("vandermonde.yaml")}},
		{"det_order7_cutoff3", []string{"det", "--cutoff", "3", "--workers", "2", td("order7.txt")}},
		{"det_order7_config", []string{"det", "--config", td("cofactor.yaml"), td("order7.txt")}},
		{"version", []string{"version"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			require.NoError(t, err, stderr)
			require.Empty(t, stderr)
			g.Assert(t, tt.name, []byte(stdout))
		})
	}
}

func TestDet_EnginesAgree(t *testing.T) {
	for _, engine := range []string{EngineSequential, EngineParallel, EngineBoth} {
		stdout, _, err := run(t, "det", "--engine", engine, "--cutoff", "3", td("order7.txt"))
		require.NoError(t, err, engine)
		require.Equal(t, "det: -60\n", stdout, engine)
	}

	stdout, _, err := run(t, "det", "--unbounded", "--cutoff", "4", td("order7.txt"))
	require.NoError(t, err)
	require.Equal(t, "det: -60\n", stdout)
}

func TestDet_Print(t *testing.T) {
	stdout, _, err := run(t, "det", "--print", td("reference.txt"))
	require.NoError(t, err)

	require.Contains(t, stdout, "┌")
	require.Contains(t, stdout, "│")
	require.Contains(t, stdout, "10")
	require.Contains(t, stdout, "det: -3\n")
	require.Less(t, bytes.Index([]byte(stdout), []byte("┌")), bytes.Index([]byte(stdout), []byte("det:")))
}

func TestDet_Verbose(t *testing.T) {
	stdout, stderr, err := run(t, "det", "-v", "--cutoff", "3", td("order7.txt"))
	require.NoError(t, err)
	require.Equal(t, "det: -60\n", stdout)

	require.Contains(t, stderr, "loaded matrix")
	require.Contains(t, stderr, "order=7")
	require.Contains(t, stderr, "parallel determinant done")
}

func TestDet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"ragged", []string{"det", td("ragged.txt")}, loader.ErrRaggedRow},
		{"order 2", []string{"det", td("small.txt")}, determinant.ErrInvalidDimension},
		{"overflow seq", []string{"det", "--engine", "seq", td("overflow.txt")}, determinant.ErrArithmeticOverflow},
		{"overflow par", []string{"det", "--cutoff", "3", td("overflow.txt")}, determinant.ErrArithmeticOverflow},
		{"forced text on yaml", []string{"det", "--format", "text", td("vandermonde.yaml")}, loader.ErrBadEntry},
		{"bad engine flag", []string{"det", "--engine", "gpu", td("reference.txt")}, ErrInvalidConfig},
		{"bad cutoff flag", []string{"det", "--cutoff", "2", td("reference.txt")}, ErrInvalidConfig},
		{"bad format flag", []string{"det", "--format", "csv", td("reference.txt")}, loader.ErrUnknownFormat},
		{"bad engine in config", []string{"det", "--config", td("bad_engine.yaml"), td("reference.txt")}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, stdout)
			require.Contains(t, stderr, "Error: ")
		})
	}
}

func TestDet_Usage(t *testing.T) {
	_, stderr, err := run(t, "det")
	require.Error(t, err)
	require.Contains(t, stderr, "Error: ")

	_, _, err = run(t, "det", td("missing.txt"))
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "cofactor "+Version+"\n", stdout)
}
