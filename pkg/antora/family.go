// Package antora resolves Antora-style cross-file references: it locates
// module roots and conventional family directories by walking the workspace
// tree, indexes antora.yml component descriptors, parses symbolic resource
// keys (version@component:module:family$path) into candidate filesystem
// paths, and expands {attribute} placeholders.
//
// Nothing in this package mutates the workspace, and no operation returns a
// hard failure for unresolvable input: absence of a resolution is
// communicated through the return-value shape (the original key echoed back,
// a false ok, an empty slice).
package antora

// DescriptorFilename is the fixed name of the component metadata file.
const DescriptorFilename = "antora.yml"

// SnippetsAttribute is the reserved attribute name bound to the build-output
// snippets directory.
const SnippetsAttribute = "snippets"

// Family is the kind of resource a symbolic key addresses.
type Family string

const (
	FamilyExample    Family = "example"
	FamilyAttachment Family = "attachment"
	FamilyPartial    Family = "partial"
	FamilyImage      Family = "image"
	FamilyPage       Family = "page"
)

// Families lists every family, in declaration order.
var Families = []Family{FamilyExample, FamilyAttachment, FamilyPartial, FamilyImage, FamilyPage}

// ParseFamily reports whether s names a known family.
func ParseFamily(s string) (Family, bool) {
	for _, f := range Families {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// dirName is the conventional directory name for the family ("images",
// "partials", ...).
func (f Family) dirName() string {
	return string(f) + "s"
}

// DirAttribute is the synthetic attribute name bound to the family's
// conventional directory ("imagesdir", "partialsdir", ...).
func (f Family) DirAttribute() string {
	return f.dirName() + "dir"
}
