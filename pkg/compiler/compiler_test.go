// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package compiler

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regina-lang/regina/pkg/compiler/errors"
)

func memfs(t *testing.T, files map[string]string) Options {
	fs := afero.NewMemMapFs()
	for path, body := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0644))
	}
	return Options{Fs: fs}
}

func TestLoadFollowsImports(t *testing.T) {
	t.Parallel()

	opts := memfs(t, map[string]string{
		"src/main.yaml":      "imports: [lib/a, lib/b.yaml]\nmain: [{call: print, args: [1]}]\n",
		"src/lib/a.yaml":     "imports: [b]\nfunctions: [{name: fa}]\n",
		"src/lib/b.yaml":     "imports: [{path: a, as: back}]\nclasses: [{name: B}]\n",
		"src/lib/unused.yml": "functions: [{name: never}]\n",
	})

	prog, err := Load(context.Background(), opts, "src/main.yaml")
	require.NoError(t, err)
	assert.Len(t, prog.Modules, 3)
	require.NotNil(t, prog.Entry)
	assert.Equal(t, "src/main.yaml", prog.Entry.Path)

	a, ok := prog.Entry.LookupImport("a")
	require.True(t, ok)
	_, ok = a.LookupFunction("fa", 0)
	assert.True(t, ok)

	// Cycles are fine: b imports a back.
	b, ok := a.LookupImport("b")
	require.True(t, ok)
	back, ok := b.LookupImport("back")
	require.True(t, ok)
	assert.Same(t, a, back)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	opts := memfs(t, map[string]string{
		"main.yaml":   "imports: [missing]\n",
		"broken.yaml": "imports: [bad]\n",
		"bad.yaml":    "main: [{lambda: 1}]\n",
	})

	_, err := Load(context.Background(), opts, "nowhere.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))

	_, err = Load(context.Background(), opts, "main.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Import 'missing' could not be resolved")

	_, err = Load(context.Background(), opts, "broken.yaml")
	require.Error(t, err)
	located, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorIllegalSyntax.ID, located.Diag.ID)
	assert.Equal(t, "bad.yaml", located.Diag.Doc.File)
}
