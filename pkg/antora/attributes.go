package antora

import (
	"context"
	"regexp"
	"strings"

	"github.com/walteh/go-adoc-refs/pkg/index"
	"github.com/walteh/go-adoc-refs/pkg/vfs"
)

// attributePattern matches one {name} placeholder.
var attributePattern = regexp.MustCompile(`\{([a-zA-Z0-9_][a-zA-Z0-9_-]*)\}`)

// Env carries the collaborators attribute expansion reads from.
type Env struct {
	Tree *vfs.Tree
	// Attributes is the host's project-wide declaration index; may be nil.
	Attributes index.AttributeIndex
	// FileDir is the directory containing the document being resolved.
	FileDir string
}

type valueState int

const (
	valueNone valueState = iota
	valueSingle
	valueAmbiguous
)

// ExpandAttributes substitutes {name} placeholders in text. Exactly one
// distinct declared value substitutes in place and the scan restarts, so
// nested references expand too. More than one distinct value makes the whole
// expansion ambiguous and it reports false with text unchanged — "can't
// decide" and "don't know" are deliberately surfaced the same way. Unknown
// names are left as literal braces and scanning continues past them.
//
// There is no intrinsic cycle detection: a self-referencing attribute chain
// is bounded only by ctx, which is checked on every iteration.
func ExpandAttributes(ctx context.Context, env Env, text string) (string, bool) {
	searchFrom := 0
	for {
		if ctx.Err() != nil {
			return text, false
		}
		loc := attributePattern.FindStringSubmatchIndex(text[searchFrom:])
		if loc == nil {
			return text, true
		}
		start, end := searchFrom+loc[0], searchFrom+loc[1]
		name := strings.ToLower(text[searchFrom+loc[2] : searchFrom+loc[3]])

		value, state := distinctValue(declarationsFor(ctx, env, name))
		switch state {
		case valueAmbiguous:
			return text, false
		case valueSingle:
			text = text[:start] + value + text[end:]
			searchFrom = 0
		default:
			// unresolved: the braces stay literal
			searchFrom = end
		}
	}
}

// distinctValue reduces a declaration list to its single effective value.
// Declarations without a value count toward distinctness but never
// substitute.
func distinctValue(decls []index.AttributeDeclaration) (string, valueState) {
	var (
		value    string
		hasValue bool
		seen     bool
	)
	for _, decl := range decls {
		v, ok := decl.AttributeValue()
		if !seen {
			value, hasValue, seen = v, ok, true
			continue
		}
		if v != value || ok != hasValue {
			return "", valueAmbiguous
		}
	}
	if seen && hasValue {
		return value, valueSingle
	}
	return "", valueNone
}

// declarationsFor gathers the declared values for name, in priority order:
// the reserved snippets directory, then the enclosing module's synthetic and
// metadata attributes, and only when neither applies the host's project-wide
// declaration index.
func declarationsFor(ctx context.Context, env Env, name string) []index.AttributeDeclaration {
	var decls []index.AttributeDeclaration
	root := env.Tree.Root()

	if name == SnippetsAttribute {
		if dir, ok := FindSnippetsDir(env.Tree, root, env.FileDir); ok {
			decls = append(decls, index.DirDeclaration{Name: name, Dir: dir})
		}
	}

	if _, ok := FindModuleDir(env.Tree, root, env.FileDir); ok {
		attrs := CollectAttributes(env.Tree, root, env.FileDir)
		if value, ok := attrs[name]; ok {
			decls = append(decls, index.MetadataDeclaration{Name: name, Value: value})
		}
	}

	// module-scoped values override project-wide declarations
	if len(decls) == 0 && env.Attributes != nil {
		decls = append(decls, env.Attributes.AttributesByName(ctx, name)...)
	}
	return decls
}

// AllDeclarations lists every attribute declaration visible from the
// environment: the host index plus the synthetic snippets, family-directory
// and descriptor attributes of the enclosing module.
func AllDeclarations(ctx context.Context, env Env) []index.AttributeDeclaration {
	var decls []index.AttributeDeclaration
	if env.Attributes != nil {
		decls = append(decls, env.Attributes.AllAttributes(ctx)...)
	}
	root := env.Tree.Root()
	if dir, ok := FindSnippetsDir(env.Tree, root, env.FileDir); ok {
		decls = append(decls, index.DirDeclaration{Name: SnippetsAttribute, Dir: dir})
	}
	if moduleDir, ok := FindModuleDir(env.Tree, root, env.FileDir); ok {
		for _, family := range []Family{FamilyPartial, FamilyImage, FamilyAttachment, FamilyExample} {
			if dir, ok := FindFamilyDir(env.Tree, root, moduleDir, family); ok {
				decls = append(decls, index.DirDeclaration{Name: family.DirAttribute(), Dir: dir})
			}
		}
		if d, ok := LoadDescriptor(env.Tree, moduleDir); ok {
			for key, value := range d.Raw {
				decls = append(decls, index.MetadataDeclaration{Name: key, Value: value})
			}
		}
	}
	return decls
}
