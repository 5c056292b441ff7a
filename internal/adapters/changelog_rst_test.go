package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom-vcpkg/internal/types"
)

const testChangelog = `^^^^^^^^^^^^^^^^^^^^^^^^^^^^^
Changelog for package my_node
^^^^^^^^^^^^^^^^^^^^^^^^^^^^^

Forthcoming
-----------
* unreleased work

1.2.0 (2024-02-01)
------------------
* Fix parsing
  of nested tags
* Add widget
* Contributors: Alice, Bob

1.1.0 (2024-01-01)
------------------
- older change
`

func TestChangelogRSTAdapterLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChangelogFilename)
	require.NoError(t, os.WriteFile(path, []byte(testChangelog), 0644))

	entries, err := NewChangelogRSTAdapter().Load(path)
	require.NoError(t, err)

	want := []types.ChangelogEntry{
		{
			Version: "1.2.0",
			Date:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Changes: []string{"Fix parsing\nof nested tags", "Add widget", "Contributors: Alice, Bob"},
		},
		{
			Version: "1.1.0",
			Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Changes: []string{"older change"},
		},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestChangelogRSTAdapterMissingFile(t *testing.T) {
	entries, err := NewChangelogRSTAdapter().Load(filepath.Join(t.TempDir(), ChangelogFilename))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestChangelogRSTAdapterBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChangelogFilename)
	require.NoError(t, os.WriteFile(path, []byte("1.0.0 (someday)\n-----------\n* x\n"), 0644))

	_, err := NewChangelogRSTAdapter().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse changelog")
}
