package antora

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// ResolveKey resolves a symbolic key against the anchor module directory
// into candidate filesystem paths, existing paths ranked first. Resolution
// never fails hard: URLs, keys without a family context and keys matching
// nothing all come back as the literal original key, so downstream
// consumers can still render them as text.
func ResolveKey(ctx context.Context, tree *vfs.Tree, moduleDir, key string, defaultFamily Family) []string {
	if IsURL(key) {
		return []string{key}
	}

	anchor, ok := LoadDescriptor(tree, moduleDir)
	if !ok {
		return []string{key}
	}

	parts := ParseKey(key)

	family := parts.Family
	if !parts.HasFamily {
		if defaultFamily == "" {
			// without a family context the key is not resolvable
			return []string{key}
		}
		family = defaultFamily
	}

	dirs := otherModuleDirs(ctx, tree, moduleDir, anchor, parts)

	root := tree.Root()
	var existing, missing []string
	for _, dir := range dirs {
		target, ok := FindFamilyDir(tree, root, dir, family)
		if !ok {
			continue
		}
		resolved := target
		if parts.Remainder != "" {
			resolved += "/" + parts.Remainder
		}
		resolved = strings.ReplaceAll(resolved, "\\", "/")
		if tree.Exists(resolved) {
			existing = append(existing, resolved)
		} else {
			missing = append(missing, resolved)
		}
	}

	result := append(existing, missing...)
	if len(result) == 0 {
		return []string{key}
	}
	zerolog.Ctx(ctx).Trace().
		Str("key", key).
		Str("family", string(family)).
		Int("candidates", len(result)).
		Int("existing", len(existing)).
		Msg("resolved symbolic key")
	return result
}

// ResolvePrefixDirs returns the candidate module directories a key's
// version/component/module prefix addresses, closest first. The family and
// path portions of the key are ignored.
func ResolvePrefixDirs(ctx context.Context, tree *vfs.Tree, moduleDir, key string) []string {
	anchor, ok := LoadDescriptor(tree, moduleDir)
	if !ok {
		return nil
	}
	return otherModuleDirs(ctx, tree, moduleDir, anchor, ParseKey(key))
}

// otherModuleDirs derives the target (component, version, module) from the
// key parts, inheriting from the anchor where the key is silent, and
// returns every matching module directory ranked by path proximity to the
// anchor module directory.
func otherModuleDirs(ctx context.Context, tree *vfs.Tree, moduleDir string, anchor Descriptor, parts KeyParts) []string {
	component := parts.Component
	hasComponent := parts.HasComponent
	module := parts.Module

	if parts.HasModule && !hasComponent {
		component = anchor.Name
		hasComponent = anchor.Name != ""
	}
	if !hasComponent && !parts.HasModule {
		component = anchor.Name
		hasComponent = anchor.Name != ""
		module = tree.Name(moduleDir)
	}
	version := parts.Version
	if !parts.HasVersion {
		version = anchor.Version
	}

	if !hasComponent {
		return nil
	}
	if module == "" {
		module = "ROOT"
	}

	descriptors, err := FindAllDescriptors(ctx, tree)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("descriptor scan reported parse failures")
	}
	sortByProximity(descriptors, moduleDir)

	var dirs []string
	for _, d := range descriptors {
		if d.Name != component || d.Version != version {
			continue
		}
		if dir, ok := d.ModuleDir(tree, module); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
