package antora

import (
	"context"
	"path"

	"github.com/rs/zerolog"

	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// Module is one addressable prefix discovered for a module directory, e.g.
// "2.0@component:mod:". Prefixes are unique within one CollectPrefixes
// result.
type Module struct {
	Prefix    string
	Component string
	Name      string
	Title     string
	Dir       string
}

// CollectPrefixes builds every prefix a reference inside moduleDir could use
// to address a module in the project:
//
//   - <version@><module>:            for modules of the anchor's component
//   - <version@><component>::        for a component's ROOT module
//   - <version@><component>:<module>: always
//
// The version@ part is present only when the candidate component's version
// differs from the anchor's. Results are ordered by path proximity to
// moduleDir and deduplicated by prefix, first occurrence winning; entries
// missing a title are back-filled from any descriptor of the same component
// that declared one.
func CollectPrefixes(ctx context.Context, tree *vfs.Tree, moduleDir string) []Module {
	anchor, ok := LoadDescriptor(tree, moduleDir)
	if !ok {
		return nil
	}

	descriptors, err := FindAllDescriptors(ctx, tree)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("descriptor scan reported parse failures")
	}
	sortByProximity(descriptors, moduleDir)

	componentTitles := map[string]string{}
	var collected []Module
	for _, d := range descriptors {
		if d.Title != "" {
			if _, seen := componentTitles[d.Name]; !seen {
				componentTitles[d.Name] = d.Title
			}
		}
		versionPrefix := ""
		if d.Version != anchor.Version {
			versionPrefix = d.Version + "@"
		}
		modulesDir, ok := d.ModulesDir(tree)
		if !ok {
			continue
		}
		for _, name := range d.ModuleNames(tree) {
			dir := path.Join(modulesDir, name)
			if d.Name == anchor.Name {
				collected = append(collected, Module{
					Prefix:    versionPrefix + name + ":",
					Component: d.Name,
					Name:      name,
					Title:     d.Title,
					Dir:       dir,
				})
			}
			if name == "ROOT" {
				collected = append(collected, Module{
					Prefix:    versionPrefix + d.Name + "::",
					Component: d.Name,
					Name:      name,
					Title:     d.Title,
					Dir:       dir,
				})
			}
			collected = append(collected, Module{
				Prefix:    versionPrefix + d.Name + ":" + name + ":",
				Component: d.Name,
				Name:      name,
				Title:     d.Title,
				Dir:       dir,
			})
		}
	}

	seen := map[string]bool{}
	result := make([]Module, 0, len(collected))
	for _, m := range collected {
		if seen[m.Prefix] {
			continue
		}
		seen[m.Prefix] = true
		if m.Title == "" {
			// the title may only be declared on some of a component's
			// descriptors
			m.Title = componentTitles[m.Component]
		}
		result = append(result, m)
	}
	return result
}
