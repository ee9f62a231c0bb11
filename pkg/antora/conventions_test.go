package antora_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/go-adoc-refs/pkg/antora"
	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

func TestFindModuleDir(t *testing.T) {
	tree := newProject(t)

	dir, ok := antora.FindModuleDir(tree, tree.Root(), "/proj/a/modules/mod-a/pages")
	require.True(t, ok)
	assert.Equal(t, "/proj/a/modules/mod-a", dir)

	// the module root itself qualifies
	dir, ok = antora.FindModuleDir(tree, tree.Root(), "/proj/a/modules/mod-a")
	require.True(t, ok)
	assert.Equal(t, "/proj/a/modules/mod-a", dir)

	// outside any module the walk terminates at the project root
	_, ok = antora.FindModuleDir(tree, tree.Root(), "/proj/build")
	assert.False(t, ok)
}

func TestFindModuleDirStopsAtProjectRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// a valid module layout sits above the configured project root
	writeFile(t, fsys, "/outer/antora.yml", "name: outer\n")
	writeFile(t, fsys, "/outer/modules/m/sub/deep/file.adoc", "")
	tree := vfs.NewTree(fsys, "/outer/modules/m/sub")

	_, ok := antora.FindModuleDir(tree, tree.Root(), "/outer/modules/m/sub/deep")
	assert.False(t, ok, "walk must not pass the project root")
}

func TestFindFamilyDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/antora.yml", "name: c\n")
	mkdir(t, fsys, "/p/modules/m/assets/images")
	mkdir(t, fsys, "/p/modules/m/images")
	mkdir(t, fsys, "/p/modules/m/examples")
	mkdir(t, fsys, "/p/modules/m/pages/_partials")
	mkdir(t, fsys, "/p/modules/n/attachments")
	mkdir(t, fsys, "/p/modules/n/partials")
	tree := vfs.NewTree(fsys, "/p")

	tests := []struct {
		name     string
		startDir string
		family   antora.Family
		want     string
		found    bool
	}{
		{"assets preferred for images", "/p/modules/m/pages", antora.FamilyImage, "/p/modules/m/assets/images", true},
		{"plain attachments fallback", "/p/modules/n", antora.FamilyAttachment, "/p/modules/n/attachments", true},
		{"examples", "/p/modules/m", antora.FamilyExample, "/p/modules/m/examples", true},
		{"pages", "/p/modules/m", antora.FamilyPage, "/p/modules/m/pages", true},
		{"partials preferred", "/p/modules/n", antora.FamilyPartial, "/p/modules/n/partials", true},
		{"pages/_partials fallback", "/p/modules/m", antora.FamilyPartial, "/p/modules/m/pages/_partials", true},
		{"missing family dir", "/p/modules/n", antora.FamilyExample, "", false},
		{"outside module", "/p", antora.FamilyImage, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := antora.FindFamilyDir(tree, tree.Root(), tt.startDir, tt.family)
			require.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, dir)
		})
	}
}

func TestFindFamilyDirRelative(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/p/antora.yml", "name: c\n")
	mkdir(t, fsys, "/p/modules/m/assets/images")
	mkdir(t, fsys, "/p/modules/m/pages/sub")
	tree := vfs.NewTree(fsys, "/p")

	rel, ok := antora.FindFamilyDirRelative(tree, tree.Root(), "/p/modules/m/pages/sub", antora.FamilyImage)
	require.True(t, ok)
	assert.Equal(t, "../../assets/images", rel)

	rel, ok = antora.FindFamilyDirRelative(tree, tree.Root(), "/p/modules/m", antora.FamilyImage)
	require.True(t, ok)
	assert.Equal(t, "assets/images", rel)
}

func TestFindSnippetsDir(t *testing.T) {
	tree := newProject(t)

	dir, ok := antora.FindSnippetsDir(tree, tree.Root(), "/proj/a/modules/mod-a/pages")
	require.True(t, ok)
	assert.Equal(t, "/proj/build/generated-snippets", dir)

	// maven layout
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/m/pom.xml", "")
	mkdir(t, fsys, "/m/target/generated-snippets")
	mkdir(t, fsys, "/m/docs")
	mavenTree := vfs.NewTree(fsys, "/m")
	dir, ok = antora.FindSnippetsDir(mavenTree, "/m", "/m/docs")
	require.True(t, ok)
	assert.Equal(t, "/m/target/generated-snippets", dir)

	// build file without output dir does not match
	fsys2 := afero.NewMemMapFs()
	writeFile(t, fsys2, "/g/build.gradle.kts", "")
	mkdir(t, fsys2, "/g/docs")
	_, ok = antora.FindSnippetsDir(vfs.NewTree(fsys2, "/g"), "/g", "/g/docs")
	assert.False(t, ok)
}

func TestCollectAttributes(t *testing.T) {
	tree := newProject(t)

	attrs := antora.CollectAttributes(tree, tree.Root(), "/proj/a/modules/mod-b")
	assert.Equal(t, "comp-a", attrs["name"])
	assert.Equal(t, "1.0", attrs["version"])
	assert.Equal(t, "/proj/a/modules/mod-b/images", attrs["imagesdir"])
	_, hasPartials := attrs["partialsdir"]
	assert.False(t, hasPartials, "mod-b has no partials directory")

	// outside any module nothing is synthesized
	assert.Empty(t, antora.CollectAttributes(tree, tree.Root(), "/proj/build"))
}
