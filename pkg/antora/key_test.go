package antora_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walteh/go-adoc-refs/pkg/antora"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want antora.KeyParts
	}{
		{
			key: "2.0@comp:mod:image$a/b.png",
			want: antora.KeyParts{
				Version: "2.0", HasVersion: true,
				Component: "comp", HasComponent: true,
				Module: "mod", HasModule: true,
				Family: antora.FamilyImage, HasFamily: true,
				Remainder: "a/b.png",
			},
		},
		{
			key: "mod:partial$snippet.adoc",
			want: antora.KeyParts{
				Module: "mod", HasModule: true,
				Family: antora.FamilyPartial, HasFamily: true,
				Remainder: "snippet.adoc",
			},
		},
		{
			key: "comp::page$index.adoc",
			want: antora.KeyParts{
				Component: "comp", HasComponent: true,
				Module: "", HasModule: true,
				Family: antora.FamilyPage, HasFamily: true,
				Remainder: "index.adoc",
			},
		},
		{
			key: "example$run.sh",
			want: antora.KeyParts{
				Family: antora.FamilyExample, HasFamily: true,
				Remainder: "run.sh",
			},
		},
		{
			key:  "plain/path.adoc",
			want: antora.KeyParts{Remainder: "plain/path.adoc"},
		},
		{
			// empty version prefix is still a version prefix
			key: "@mod:x",
			want: antora.KeyParts{
				HasVersion: true,
				Module:     "mod", HasModule: true,
				Remainder: "x",
			},
		},
		{
			// an unknown family name is not consumed
			key: "mod:chapter$x",
			want: antora.KeyParts{
				Module: "mod", HasModule: true,
				Remainder: "chapter$x",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, antora.ParseKey(tt.key))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, antora.IsURL("https://example.com"))
	assert.True(t, antora.IsURL("http://example.com"))
	assert.True(t, antora.IsURL("file:///tmp/x"))
	assert.True(t, antora.IsURL("ftp://host"))
	assert.True(t, antora.IsURL("irc://chat"))
	assert.False(t, antora.IsURL("mod:image$x.png"))
	assert.False(t, antora.IsURL("nothttps://x"))
}

func TestIsValidModuleName(t *testing.T) {
	assert.True(t, antora.IsValidModuleName("ROOT"))
	assert.True(t, antora.IsValidModuleName("mod_1.x-y"))
	assert.True(t, antora.IsValidModuleName(""))
	assert.False(t, antora.IsValidModuleName("bad name"))
	assert.False(t, antora.IsValidModuleName("bad/name"))
}
