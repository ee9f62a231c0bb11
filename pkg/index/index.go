// Package index models the host-maintained project-wide symbol indices the
// resolver consumes: a name → attribute-declaration multimap and a
// block-id → declaring-location multimap. The host keeps these incrementally
// up to date and pre-filters them to in-project scope; the in-memory
// implementation here backs the CLI and the tests.
package index

import (
	"context"
	"sort"
	"sync"

	"github.com/walteh/go-adoc-refs/pkg/position"
)

// AttributeDeclaration is one declared value for an attribute name. Indexed
// declarations point at a source location; directory-derived and
// metadata-derived declarations are synthetic and never carry one.
type AttributeDeclaration interface {
	AttributeName() string
	// AttributeValue reports false for declarations without a value
	// (e.g. ":name!:" style unsets).
	AttributeValue() (string, bool)
	// DeclarationPosition reports false for synthetic declarations.
	DeclarationPosition() (string, position.RawPosition, bool)
}

// Declaration is an attribute declaration backed by a source location.
type Declaration struct {
	Name     string
	Value    string
	HasValue bool
	File     string
	Pos      position.RawPosition
}

func (d Declaration) AttributeName() string { return d.Name }

func (d Declaration) AttributeValue() (string, bool) { return d.Value, d.HasValue }

func (d Declaration) DeclarationPosition() (string, position.RawPosition, bool) {
	return d.File, d.Pos, true
}

// DirDeclaration is a synthetic attribute derived from a conventional
// directory (imagesdir, partialsdir, snippets, ...).
type DirDeclaration struct {
	Name string
	Dir  string
}

func (d DirDeclaration) AttributeName() string { return d.Name }

func (d DirDeclaration) AttributeValue() (string, bool) { return d.Dir, true }

func (d DirDeclaration) DeclarationPosition() (string, position.RawPosition, bool) {
	return "", position.RawPosition{}, false
}

// MetadataDeclaration is a synthetic attribute derived from a module
// descriptor value.
type MetadataDeclaration struct {
	Name  string
	Value string
}

func (d MetadataDeclaration) AttributeName() string { return d.Name }

func (d MetadataDeclaration) AttributeValue() (string, bool) { return d.Value, true }

func (d MetadataDeclaration) DeclarationPosition() (string, position.RawPosition, bool) {
	return "", position.RawPosition{}, false
}

// BlockID is a declared block identifier and where it was declared.
type BlockID struct {
	ID   string
	File string
	Pos  position.RawPosition
}

// AttributeIndex is the host's attribute-declaration multimap.
type AttributeIndex interface {
	AttributesByName(ctx context.Context, name string) []AttributeDeclaration
	AllAttributes(ctx context.Context) []AttributeDeclaration
}

// BlockIDIndex is the host's block-id multimap.
type BlockIDIndex interface {
	IDsByKey(ctx context.Context, key string) []BlockID
	AllIDs(ctx context.Context) []BlockID
}

// FindIDs looks up key in the host index. An empty key never matches.
func FindIDs(ctx context.Context, ix BlockIDIndex, key string) []BlockID {
	if key == "" || ix == nil {
		return nil
	}
	return ix.IDsByKey(ctx, key)
}

// InMemory implements both index interfaces.
type InMemory struct {
	mu    sync.RWMutex
	attrs map[string][]AttributeDeclaration
	ids   map[string][]BlockID
}

var (
	_ AttributeIndex = (*InMemory)(nil)
	_ BlockIDIndex   = (*InMemory)(nil)
)

func NewInMemory() *InMemory {
	return &InMemory{
		attrs: map[string][]AttributeDeclaration{},
		ids:   map[string][]BlockID{},
	}
}

func (ix *InMemory) AddAttribute(decl AttributeDeclaration) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	name := decl.AttributeName()
	ix.attrs[name] = append(ix.attrs[name], decl)
}

func (ix *InMemory) AddBlockID(id BlockID) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.ids[id.ID] = append(ix.ids[id.ID], id)
}

func (ix *InMemory) AttributesByName(ctx context.Context, name string) []AttributeDeclaration {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return append([]AttributeDeclaration(nil), ix.attrs[name]...)
}

func (ix *InMemory) AllAttributes(ctx context.Context) []AttributeDeclaration {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	names := make([]string, 0, len(ix.attrs))
	for name := range ix.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	var all []AttributeDeclaration
	for _, name := range names {
		all = append(all, ix.attrs[name]...)
	}
	return all
}

func (ix *InMemory) IDsByKey(ctx context.Context, key string) []BlockID {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return append([]BlockID(nil), ix.ids[key]...)
}

func (ix *InMemory) AllIDs(ctx context.Context) []BlockID {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	keys := make([]string, 0, len(ix.ids))
	for key := range ix.ids {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var all []BlockID
	for _, key := range keys {
		all = append(all, ix.ids[key]...)
	}
	return all
}
