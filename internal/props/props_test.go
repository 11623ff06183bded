package props

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/go-drift/docskit/pkg/widgets"
)

func TestExtract(t *testing.T) {
	got, err := Extract("testdata/sample", "Picker")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []widgets.PropDef{
		{Name: "Label", Type: "string", Description: "Label is the heading text.", Required: true},
		{Name: "Size", Type: "string", Default: "medium", Description: `Size of the control. Defaults to "medium".`},
		{Name: "Step", Type: "float64", Default: "1", Description: "Step between values."},
		{Name: "OnChange", Type: "func(value string)", Description: "OnChange receives edits."},
		{Name: "Now", Type: "func() time.Time"},
		{Name: "A", Type: "int"},
		{Name: "B", Type: "int"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractErrors(t *testing.T) {
	_, err := Extract("testdata/sample", "Missing")
	assert.ErrorContains(t, err, "not found")

	_, err = Extract("testdata/sample", "Mode")
	assert.ErrorContains(t, err, "not a struct")

	_, err = Extract("testdata/none", "Picker")
	assert.Error(t, err)
}

func TestExtractWidgets(t *testing.T) {
	got, err := Extract("../../pkg/widgets", "DateTimePicker")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.Name
	}
	assert.Contains(t, names, "Label")
	assert.Contains(t, names, "OnChange")
	assert.NotContains(t, names, "StatelessBase")
}
