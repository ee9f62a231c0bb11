package antora

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// Descriptor is one parsed antora.yml component descriptor. A descriptor
// that failed to parse keeps its File/Dir but contributes no name, version
// or title.
type Descriptor struct {
	Name    string
	Version string
	Title   string
	// File is the descriptor file path, Dir its containing directory (the
	// component root whose "modules" child holds the module directories).
	File string
	Dir  string

	// Raw holds every scalar top-level key of the mapping, stringified.
	Raw map[string]string
}

func parseDescriptor(data []byte, file string) (Descriptor, error) {
	d := Descriptor{
		File: file,
		Dir:  path.Dir(file),
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return d, errors.Errorf("parsing %s: %w", file, err)
	}
	d.Raw = map[string]string{}
	for key, value := range m {
		switch value.(type) {
		case nil, map[string]any, []any:
			continue
		default:
			d.Raw[key] = fmt.Sprint(value)
		}
	}
	d.Name = d.Raw["name"]
	d.Version = d.Raw["version"]
	d.Title = d.Raw["title"]
	return d, nil
}

// LoadDescriptor reads the descriptor owning moduleDir, i.e. the antora.yml
// in moduleDir's grandparent. It reports false when moduleDir does not sit
// under the modules/<name> convention or the descriptor cannot be read.
func LoadDescriptor(tree *vfs.Tree, moduleDir string) (Descriptor, bool) {
	parent, ok := tree.Parent(moduleDir)
	if !ok {
		return Descriptor{}, false
	}
	grandparent, ok := tree.Parent(parent)
	if !ok {
		return Descriptor{}, false
	}
	file, ok := tree.Child(grandparent, DescriptorFilename)
	if !ok {
		return Descriptor{}, false
	}
	data, err := tree.ReadFile(file)
	if err != nil {
		return Descriptor{}, false
	}
	d, _ := parseDescriptor(data, file)
	return d, true
}

// FindAllDescriptors locates every antora.yml in the tree and parses each.
// Malformed descriptors are kept (they still anchor a modules directory)
// but contribute no component metadata; their parse errors are aggregated
// into the returned error, which callers log rather than fail on.
func FindAllDescriptors(ctx context.Context, tree *vfs.Tree) ([]Descriptor, error) {
	var errs error
	files := tree.FindFilesNamed(ctx, DescriptorFilename)
	descriptors := make([]Descriptor, 0, len(files))
	for _, file := range files {
		data, err := tree.ReadFile(file)
		if err != nil {
			errs = multierr.Append(errs, err)
			descriptors = append(descriptors, Descriptor{File: file, Dir: path.Dir(file)})
			continue
		}
		d, err := parseDescriptor(data, file)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		descriptors = append(descriptors, d)
	}
	zerolog.Ctx(ctx).Trace().Int("count", len(descriptors)).Msg("scanned component descriptors")
	return descriptors, errs
}

// ModulesDir returns the descriptor's sibling "modules" directory.
func (d Descriptor) ModulesDir(tree *vfs.Tree) (string, bool) {
	return tree.Child(d.Dir, "modules")
}

// ModuleNames lists the module directories under the descriptor, keeping
// only names that are lexically valid module names.
func (d Descriptor) ModuleNames(tree *vfs.Tree) []string {
	modulesDir, ok := d.ModulesDir(tree)
	if !ok {
		return nil
	}
	var names []string
	for _, name := range tree.Children(modulesDir) {
		if !tree.IsDir(path.Join(modulesDir, name)) {
			continue
		}
		if IsValidModuleName(name) {
			names = append(names, name)
		}
	}
	return names
}

// ModuleDir returns the named module directory under the descriptor.
func (d Descriptor) ModuleDir(tree *vfs.Tree, module string) (string, bool) {
	modulesDir, ok := d.ModulesDir(tree)
	if !ok {
		return "", false
	}
	dir, ok := tree.Child(modulesDir, module)
	if !ok || !tree.IsDir(dir) {
		return "", false
	}
	return dir, true
}

// sortByProximity orders descriptors by descending length of the literal
// path prefix they share with anchor, so the closest enclosing scopes sort
// first. The sort is stable to preserve walk order among ties.
func sortByProximity(descriptors []Descriptor, anchor string) {
	sort.SliceStable(descriptors, func(i, j int) bool {
		return commonPrefixLen(descriptors[i].File, anchor) > commonPrefixLen(descriptors[j].File, anchor)
	})
}

func commonPrefixLen(a, b string) int {
	i := 0
	for ; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}
