// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package workspace

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for path, body := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0644))
	}
	return fs
}

func TestDetectEntry(t *testing.T) {
	t.Parallel()

	fs := writeFiles(t, map[string]string{
		"/proj/Regina.yaml":   "name: demo\nmain: src/app.yaml\nseed: 7\n",
		"/proj/src/app.yaml":  "main: []\n",
		"/bare/main.yml":      "main: []\n",
		"/empty/readme.txt":   "nothing",
		"/broken/Regina.json": `{"main": "x.yaml"}`,
	})

	entry, err := DetectEntry(fs, "/proj")
	require.NoError(t, err)
	assert.Equal(t, "/proj/src/app.yaml", entry.Path)
	require.NotNil(t, entry.Project)
	assert.Equal(t, int64(7), entry.Project.GetSeed())

	entry, err = DetectEntry(fs, "/bare")
	require.NoError(t, err)
	assert.Equal(t, "/bare/main.yml", entry.Path)
	assert.Nil(t, entry.Project)
	assert.Equal(t, DefaultSeed, entry.Project.GetSeed())

	entry, err = DetectEntry(fs, "/proj/src/app.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/proj/src", entry.Root)

	_, err = DetectEntry(fs, "/empty")
	assert.Error(t, err)

	_, err = DetectEntry(fs, "/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a 'name'")
}

func TestResolveImport(t *testing.T) {
	t.Parallel()

	fs := writeFiles(t, map[string]string{
		"/src/main.yaml":     "",
		"/src/lib/geo.yaml":  "",
		"/src/lib/util.json": "",
	})

	path, ok := ResolveImport(fs, "/src/main.yaml", "lib/geo")
	assert.True(t, ok)
	assert.Equal(t, "/src/lib/geo.yaml", path)

	path, ok = ResolveImport(fs, "/src/lib/geo.yaml", "util.json")
	assert.True(t, ok)
	assert.Equal(t, "/src/lib/util.json", path)

	_, ok = ResolveImport(fs, "/src/main.yaml", "lib/missing")
	assert.False(t, ok)
	_, ok = ResolveImport(fs, "/src/main.yaml", "lib/geo.yml")
	assert.False(t, ok)
}
