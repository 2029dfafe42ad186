package suggest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docklint/docklint/util/suggest"
)

func TestSearch(t *testing.T) {
	options := []string{"FROM", "RUN", "COPY", "WORKDIR", "ENTRYPOINT"}

	tests := []struct {
		value string
		match string
		ok    bool
	}{
		{"FORM", "FROM", true},
		{"RNU", "RUN", true},
		{"COPPY", "COPY", true},
		{"WORKDIRS", "WORKDIR", true},
		{"BANANA", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			match, ok := suggest.Search(tc.value, options, true)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.match, match)
		})
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	options := []string{"FROM", "RUN"}

	match, ok := suggest.Search("form", options, false)
	require.True(t, ok)
	require.Equal(t, "FROM", match)

	// an exact match under folding is not a suggestion
	_, ok = suggest.Search("from", options, false)
	require.False(t, ok)
}

func TestSearchNoOptions(t *testing.T) {
	_, ok := suggest.Search("FROM", nil, true)
	require.False(t, ok)
}
