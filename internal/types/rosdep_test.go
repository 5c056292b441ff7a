package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRosdepFileUnmarshal(t *testing.T) {
	data := []byte(`
schema_version: "v1"
rules:
  boost:
    windows: [boost-system, boost-thread]
    ubuntu:
      jammy: [libboost-all-dev]
  eigen:
    windows: eigen3
  ament_cmake:
    windows: []
`)
	var file RosdepFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	assert.Equal(t, "v1", file.SchemaVersion)

	packages, ok := file.Rules["boost"]["windows"].Packages("10")
	require.True(t, ok)
	if diff := cmp.Diff([]string{"boost-system", "boost-thread"}, packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}

	packages, ok = file.Rules["boost"]["ubuntu"].Packages("jammy")
	require.True(t, ok)
	assert.Equal(t, []string{"libboost-all-dev"}, packages)

	_, ok = file.Rules["boost"]["ubuntu"].Packages("focal")
	assert.False(t, ok)

	packages, ok = file.Rules["eigen"]["windows"].Packages("11")
	require.True(t, ok)
	assert.Equal(t, []string{"eigen3"}, packages)

	packages, ok = file.Rules["ament_cmake"]["windows"].Packages("10")
	require.True(t, ok)
	assert.Empty(t, packages)
}

func TestRosdepRuleVersionOverridesAny(t *testing.T) {
	rule := RosdepRule{
		Any:      []string{"generic"},
		Versions: map[string][]string{"11": {"special"}},
	}
	packages, ok := rule.Packages("11")
	require.True(t, ok)
	assert.Equal(t, []string{"special"}, packages)

	packages, ok = rule.Packages("10")
	require.True(t, ok)
	assert.Equal(t, []string{"generic"}, packages)
}
