package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableContainsHeadersAndCells(t *testing.T) {
	out := Table(
		[]string{"ID", "Department Name"},
		[][]string{{"1", "Engineering"}, {"2", "Sales"}},
	)

	for _, want := range []string{"ID", "Department Name", "Engineering", "Sales"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Engineering"), strings.Index(out, "Sales"), "rows keep their order")
}

func TestTableWithoutRowsStillRendersHeaders(t *testing.T) {
	out := Table([]string{"ID", "Role Title"}, nil)

	assert.Contains(t, out, "Role Title")
}

func TestOrPlaceholder(t *testing.T) {
	name := "Jane Smith"
	empty := ""

	assert.Equal(t, "Jane Smith", OrPlaceholder(&name))
	assert.Equal(t, Placeholder, OrPlaceholder(&empty))
	assert.Equal(t, Placeholder, OrPlaceholder(nil))
	assert.Equal(t, "n/a", TextOrPlaceholder(""))
	assert.Equal(t, "x", TextOrPlaceholder("x"))
}
