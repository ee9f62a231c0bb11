package antora

import (
	"strings"

	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// isModuleRoot reports whether dir is recognized as a module root: its
// parent is named "modules" and its grandparent contains an antora.yml.
func isModuleRoot(tree *vfs.Tree, dir string) bool {
	parent, ok := tree.Parent(dir)
	if !ok || tree.Name(parent) != "modules" {
		return false
	}
	grandparent, ok := tree.Parent(parent)
	if !ok {
		return false
	}
	return tree.HasChild(grandparent, DescriptorFilename)
}

// walkUp visits startDir and each ancestor in turn, stopping after visiting
// projectRoot (inclusive) or when the tree is exhausted. The walk ends early
// when visit reports a match; depth counts the steps taken from startDir.
func walkUp(tree *vfs.Tree, projectRoot, startDir string, visit func(dir string, depth int) bool) bool {
	dir := startDir
	for depth := 0; ; depth++ {
		if visit(dir, depth) {
			return true
		}
		if dir == projectRoot {
			return false
		}
		parent, ok := tree.Parent(dir)
		if !ok {
			return false
		}
		dir = parent
	}
}

// FindModuleDir walks upward from startDir and returns the closest enclosing
// module root, usable as the anchor for attribute synthesis and key
// resolution.
func FindModuleDir(tree *vfs.Tree, projectRoot, startDir string) (string, bool) {
	var found string
	ok := walkUp(tree, projectRoot, startDir, func(dir string, _ int) bool {
		if isModuleRoot(tree, dir) {
			found = dir
			return true
		}
		return false
	})
	return found, ok
}

// familyDirUnder applies the family-specific lookup rules at module root d.
func familyDirUnder(tree *vfs.Tree, d string, family Family) (string, bool) {
	switch family {
	case FamilyImage, FamilyAttachment:
		if assets, ok := tree.Child(d, "assets"); ok {
			if dir, ok := tree.Child(assets, family.dirName()); ok {
				return dir, true
			}
		}
		return tree.Child(d, family.dirName())
	case FamilyPartial:
		if dir, ok := tree.Child(d, family.dirName()); ok {
			return dir, true
		}
		if pages, ok := tree.Child(d, FamilyPage.dirName()); ok {
			return tree.Child(pages, "_"+family.dirName())
		}
		return "", false
	case FamilyExample, FamilyPage:
		return tree.Child(d, family.dirName())
	default:
		return "", false
	}
}

// FindFamilyDir walks upward from startDir to the closest enclosing module
// root carrying the family's conventional directory and returns that
// directory. The walk never leaves projectRoot.
func FindFamilyDir(tree *vfs.Tree, projectRoot, startDir string, family Family) (string, bool) {
	var found string
	ok := walkUp(tree, projectRoot, startDir, func(dir string, _ int) bool {
		if !isModuleRoot(tree, dir) {
			return false
		}
		target, ok := familyDirUnder(tree, dir, family)
		if !ok {
			return false
		}
		found = target
		return true
	})
	return found, ok
}

// FindFamilyDirRelative returns the family directory's path expressed
// relative to startDir, using one "../" per walk step.
func FindFamilyDirRelative(tree *vfs.Tree, projectRoot, startDir string, family Family) (string, bool) {
	var found string
	ok := walkUp(tree, projectRoot, startDir, func(dir string, depth int) bool {
		if !isModuleRoot(tree, dir) {
			return false
		}
		target, ok := familyDirUnder(tree, dir, family)
		if !ok {
			return false
		}
		rel := strings.TrimPrefix(target, dir+"/")
		found = strings.Repeat("../", depth) + rel
		return true
	})
	return found, ok
}

// snippets build-layout pairs: build file at a directory marks its sibling
// output dir as the snippets location.
var snippetLayouts = []struct {
	buildFile string
	outputDir string
}{
	{"pom.xml", "target"},
	{"build.gradle", "build"},
	{"build.gradle.kts", "build"},
}

// FindSnippetsDir walks upward looking for a build root whose output
// directory contains generated-snippets, feeding the reserved "snippets"
// attribute. Unlike the family walks it does not require a module root.
func FindSnippetsDir(tree *vfs.Tree, projectRoot, startDir string) (string, bool) {
	var found string
	ok := walkUp(tree, projectRoot, startDir, func(dir string, _ int) bool {
		for _, layout := range snippetLayouts {
			if !tree.HasChild(dir, layout.buildFile) {
				continue
			}
			outDir, ok := tree.Child(dir, layout.outputDir)
			if !ok {
				continue
			}
			if snippets, ok := tree.Child(outDir, "generated-snippets"); ok {
				found = snippets
				return true
			}
		}
		return false
	})
	return found, ok
}

// CollectAttributes synthesizes the attribute set contributed by the module
// enclosing startDir: the descriptor's scalar keys plus one <family>sdir
// attribute per convention directory that exists. Paths use forward slashes.
func CollectAttributes(tree *vfs.Tree, projectRoot, startDir string) map[string]string {
	moduleDir, ok := FindModuleDir(tree, projectRoot, startDir)
	if !ok {
		return map[string]string{}
	}

	attrs := map[string]string{}
	if d, ok := LoadDescriptor(tree, moduleDir); ok {
		for key, value := range d.Raw {
			attrs[key] = value
		}
	}
	for _, family := range []Family{FamilyPartial, FamilyImage, FamilyAttachment, FamilyExample} {
		if dir, ok := FindFamilyDir(tree, projectRoot, moduleDir, family); ok {
			attrs[family.DirAttribute()] = strings.ReplaceAll(dir, "\\", "/")
		}
	}
	return attrs
}
