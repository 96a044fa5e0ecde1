package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bharathkarthikeyan/gecode/pkg/config"
	"github.com/bharathkarthikeyan/gecode/pkg/kernel"
)

func TestDefaultPassesValidation(t *testing.T) {
	opts, err := config.Parse([]byte(""))
	require.NoError(t, err)
	require.Equal(t, 1, opts.CloneRate)
	require.Equal(t, 0, opts.NodeLimit)
}

func TestParseOverridesDefaults(t *testing.T) {
	opts, err := config.Parse([]byte(`
node_limit: 1000
fail_limit: 500
clone_rate: 4
cost_class_order: [unary, binary, crazy]
`))
	require.NoError(t, err)
	require.Equal(t, 1000, opts.NodeLimit)
	require.Equal(t, 500, opts.FailLimit)
	require.Equal(t, 4, opts.CloneRate)
	require.Equal(t, []string{"unary", "binary", "crazy"}, opts.CostClassOrder)
}

func TestParseRejectsCloneRateBelowOne(t *testing.T) {
	_, err := config.Parse([]byte("clone_rate: 0\n"))
	require.Error(t, err)
}

func TestParseRejectsUnknownCostClass(t *testing.T) {
	_, err := config.Parse([]byte("cost_class_order: [nonexistent]\n"))
	require.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("node_limit: [this is not an int\n"))
	require.Error(t, err)
}

func TestToSearchOptionsCarriesEveryField(t *testing.T) {
	opts, err := config.Parse([]byte("node_limit: 7\nfail_limit: 8\nclone_rate: 2\n"))
	require.NoError(t, err)
	so := opts.ToSearchOptions()
	require.Equal(t, 7, so.NodeLimit)
	require.Equal(t, 8, so.FailLimit)
	require.Equal(t, 2, so.CloneRate)
}

func TestLoadMissingFileIsMisuseError(t *testing.T) {
	_, err := config.Load("/nonexistent/path/engine.yaml")
	require.Error(t, err)
	require.IsType(t, &kernel.MisuseError{}, err)
}
