package antora_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func mkdir(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(path, 0o755))
}

// newProject builds a two-component Antora workspace:
//
//	/proj/a            comp-a 1.0   modules ROOT, mod-a, mod-b
//	/proj/b            comp-b 2.0   modules ROOT (no title)
//	/proj/c            comp-b 2.0   modules ROOT (title "Component B")
//	/proj/build.gradle + build/generated-snippets
func newProject(t *testing.T) *vfs.Tree {
	t.Helper()
	fsys := afero.NewMemMapFs()

	writeFile(t, fsys, "/proj/a/antora.yml", "name: comp-a\nversion: \"1.0\"\n")
	writeFile(t, fsys, "/proj/a/modules/ROOT/pages/index.adoc", "= Index\n")
	writeFile(t, fsys, "/proj/a/modules/mod-a/pages/page.adoc", "= Page\n")
	writeFile(t, fsys, "/proj/a/modules/mod-b/images/pic.png", "png")

	writeFile(t, fsys, "/proj/b/antora.yml", "name: comp-b\nversion: \"2.0\"\n")
	writeFile(t, fsys, "/proj/b/modules/ROOT/pages/index.adoc", "= Index\n")

	writeFile(t, fsys, "/proj/c/antora.yml", "name: comp-b\nversion: \"2.0\"\ntitle: Component B\n")
	writeFile(t, fsys, "/proj/c/modules/ROOT/pages/index.adoc", "= Index\n")

	writeFile(t, fsys, "/proj/build.gradle", "")
	mkdir(t, fsys, "/proj/build/generated-snippets")

	return vfs.NewTree(fsys, "/proj")
}
