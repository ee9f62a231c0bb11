package index_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/go-adoc-refs/pkg/index"
	"github.com/walteh/go-adoc-refs/pkg/position"
)

func TestInMemoryAttributes(t *testing.T) {
	ctx := context.Background()
	ix := index.NewInMemory()

	ix.AddAttribute(index.Declaration{
		Name: "product", Value: "World", HasValue: true,
		File: "/ws/docs/attrs.adoc",
		Pos:  position.NewBasicPosition(":product: World", 0),
	})
	ix.AddAttribute(index.Declaration{Name: "product", Value: "Mars", HasValue: true})
	ix.AddAttribute(index.DirDeclaration{Name: "imagesdir", Dir: "/ws/images"})

	decls := ix.AttributesByName(ctx, "product")
	require.Len(t, decls, 2)
	value, ok := decls[0].AttributeValue()
	assert.True(t, ok)
	assert.Equal(t, "World", value)

	file, _, ok := decls[0].DeclarationPosition()
	assert.True(t, ok)
	assert.Equal(t, "/ws/docs/attrs.adoc", file)

	// synthetic declarations never carry a source position
	_, _, ok = ix.AttributesByName(ctx, "imagesdir")[0].DeclarationPosition()
	assert.False(t, ok)

	assert.Empty(t, ix.AttributesByName(ctx, "missing"))
	assert.Len(t, ix.AllAttributes(ctx), 3)
}

func TestInMemoryBlockIDs(t *testing.T) {
	ctx := context.Background()
	ix := index.NewInMemory()

	ix.AddBlockID(index.BlockID{ID: "intro", File: "/ws/docs/a.adoc"})
	ix.AddBlockID(index.BlockID{ID: "intro", File: "/ws/docs/b.adoc"})
	ix.AddBlockID(index.BlockID{ID: "setup", File: "/ws/docs/a.adoc"})

	assert.Len(t, index.FindIDs(ctx, ix, "intro"), 2)
	assert.Empty(t, index.FindIDs(ctx, ix, ""), "an empty key never matches")
	assert.Empty(t, index.FindIDs(ctx, ix, "missing"))
	assert.Len(t, ix.AllIDs(ctx), 3)
}
