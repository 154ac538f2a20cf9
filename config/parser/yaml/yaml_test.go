package yaml_test

import (
	"testing"

	"github.com/0xalexb/hjarta-morph/config"
	yamlparser "github.com/0xalexb/hjarta-morph/config/parser/yaml"
	"github.com/0xalexb/hjarta-morph/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_FlatDocument(t *testing.T) {
	t.Parallel()

	parser := yamlparser.NewParser()

	data := []byte(`
name: test-app
version: "1.0"
debug: true
`)

	result, err := parser.Parse(data)

	require.NoError(t, err)
	assert.Equal(t, "test-app", result["name"])
	assert.Equal(t, "1.0", result["version"])
	assert.Equal(t, true, result["debug"])
}

func TestParser_Parse_NestedDocument(t *testing.T) {
	t.Parallel()

	parser := yamlparser.NewParser()

	data := []byte(`
database:
  connection:
    host: db.example.com
    port: 5432
  credentials:
    user: admin
tags:
  - a
  - b
`)

	result, err := parser.Parse(data)
	require.NoError(t, err)

	connection, err := tree.Navigate(result, tree.ParsePath("database.connection"))
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", connection["host"])
	assert.EqualValues(t, 5432, connection["port"])

	tags, ok := result["tags"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, tags)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "nil data", data: nil, wantErr: yamlparser.ErrEmptyData},
		{name: "whitespace only", data: []byte("  \n\t\n"), wantErr: yamlparser.ErrEmptyData},
		{name: "sequence root", data: []byte("- a\n- b\n"), wantErr: config.ErrNotMapping},
		{name: "scalar root", data: []byte("just a string\n"), wantErr: config.ErrNotMapping},
		{name: "invalid yaml", data: []byte("key: [unclosed\n"), wantErr: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := yamlparser.NewParser().Parse(testCase.data)

			require.Error(t, err)
			assert.Nil(t, result)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestParser_ImplementsConfigParser(t *testing.T) {
	t.Parallel()

	var _ config.Parser = yamlparser.NewParser()
}
