package errors

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pkgErrorsPath = "github.com/pkg/errors"

// Every package outside this one goes through the façade.
func TestPkgErrorsImportedOnlyByFacade(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	facadeDir, err := filepath.Abs(".")
	require.NoError(t, err)

	var offenders []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if name := d.Name(); path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}

			return nil
		}
		if filepath.Ext(path) != ".go" || filepath.Dir(path) == facadeDir {
			return nil
		}

		file, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range file.Imports {
			if p, _ := strconv.Unquote(imp.Path.Value); p == pkgErrorsPath {
				rel, _ := filepath.Rel(root, path)
				offenders = append(offenders, rel)
			}
		}

		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, offenders)
}
