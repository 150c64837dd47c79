package tsmock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const registrySchema = `
scalar Date

enum Status {
    ONLINE
    OFFLINE
}

union Media = Photo | Video

interface Node {
    id: ID!
}

interface Named {
    name: String!
}

type Photo implements Node {
    id: ID!
}

type Video implements Node & Named {
    id: ID!
    name: String!
}

type Plain {
    id: ID!
}

input Filter {
    status: Status
}
`

func parseDefs(t *testing.T, src string) []*ast.Definition {
	t.Helper()

	doc, err := parser.ParseSchema(&ast.Source{Name: "registry.graphql", Input: src})
	require.NoError(t, err)
	return doc.Definitions
}

func TestNewRegistry(t *testing.T) {
	defs := parseDefs(t, registrySchema)

	testCases := []struct {
		Name         string
		Implementors bool
		Kinds        map[string]Kind
	}{
		{
			Name:  "Plain",
			Kinds: map[string]Kind{"Date": KindScalar, "Status": KindEnum, "Media": KindUnion},
		},
		{
			Name:         "Implementors",
			Implementors: true,
			Kinds: map[string]Kind{
				"Date":   KindScalar,
				"Status": KindEnum,
				"Media":  KindUnion,
				"Photo":  KindImplement,
				"Video":  KindImplement,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(subT *testing.T) {
			reg := NewRegistry(defs, testCase.Implementors)
			require.Equal(subT, len(testCase.Kinds), reg.Len())

			for _, e := range reg.entries {
				kind, ok := testCase.Kinds[e.Name]
				require.True(subT, ok, "unexpected entry: %s", e.Name)
				assert.Equal(subT, kind, e.Kind, e.Name)
			}
		})
	}
}

func TestRegistryEntries(t *testing.T) {
	reg := NewRegistry(parseDefs(t, registrySchema), true)

	enums := reg.Enums()
	require.Len(t, enums, 1)
	assert.Equal(t, []string{"ONLINE", "OFFLINE"}, enums[0].Values)

	media := reg.Lookup("Media")
	require.Len(t, media, 1)
	assert.Equal(t, []string{"Photo", "Video"}, media[0].Members)

	nodes := reg.Lookup("Node")
	require.Len(t, nodes, 2)
	assert.Equal(t, "Photo", nodes[0].Name)
	assert.Equal(t, "Video", nodes[1].Name)

	named := reg.Lookup("Named")
	require.Len(t, named, 1)
	assert.Equal(t, "Video", named[0].Name)

	// implementors resolve through their interfaces only
	assert.Empty(t, reg.Lookup("Photo"))
	assert.Empty(t, reg.Lookup("Plain"))
	assert.Empty(t, reg.Lookup("Filter"))
}

func TestRegistryFirstWins(t *testing.T) {
	defs := []*ast.Definition{
		{Kind: ast.Enum, Name: "Status", EnumValues: ast.EnumValueList{{Name: "ONLINE"}}},
		{Kind: ast.Enum, Name: "Status", EnumValues: ast.EnumValueList{{Name: "OFFLINE"}}},
		{Kind: ast.Scalar, Name: "Status"},
	}

	reg := NewRegistry(defs, false)
	require.Equal(t, 1, reg.Len())

	found := reg.Lookup("Status")
	require.Len(t, found, 1)
	assert.Equal(t, KindEnum, found[0].Kind)
	assert.Equal(t, []string{"ONLINE"}, found[0].Values)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "union", KindUnion.String())
	assert.Equal(t, "implement", KindImplement.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
