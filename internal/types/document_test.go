//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleDocuments_ContainsDuplicates(t *testing.T) {
	docs := SampleDocuments()
	require.NotEmpty(t, docs)

	seen := make(map[DocumentRecord]int)
	for _, d := range docs {
		seen[d]++
	}

	hasDuplicate := false
	for _, n := range seen {
		if n > 1 {
			hasDuplicate = true
		}
	}
	assert.True(t, hasDuplicate, "sample data is expected to contain at least one duplicate record")
}

func TestSampleDocuments_ReturnsFreshSlice(t *testing.T) {
	a := SampleDocuments()
	a[0].Title = "changed"

	b := SampleDocuments()
	assert.NotEqual(t, "changed", b[0].Title)
}

func TestDocumentRecord_JSONFieldNames(t *testing.T) {
	d := DocumentRecord{Title: "T", URL: "U", Domain: "D", Mark: 3, Topic: "X"}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"T","url":"U","domain":"D","mark":3,"topic":"X"}`, string(data))
}
