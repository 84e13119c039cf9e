package parser_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusCase struct {
	Name  string   `yaml:"name"`
	CSS   string   `yaml:"css"`
	Kinds []string `yaml:"kinds"`
}

type corpusFile struct {
	Cases []corpusCase `yaml:"cases"`
}

// TestParseCorpus runs every snippet in testdata/corpus.yaml through the
// parser, asserting the expected top-level node kinds and the structural
// invariants that must hold for any parse.
func TestParseCorpus(t *testing.T) {
	raw, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)

	var corpus corpusFile
	require.NoError(t, yaml.Unmarshal(raw, &corpus))
	require.NotEmpty(t, corpus.Cases, "the corpus should not be empty")

	for _, tc := range corpus.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			sheet := parse(t, tc.CSS)
			assert.Equal(t, tc.Kinds, topLevelKinds(sheet))
		})
	}
}
