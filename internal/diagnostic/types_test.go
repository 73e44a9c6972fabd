package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("UNRESOLVED_NAMED", "type Adress is not in this package", "Account", "home", "Address")
	assert.True(t, d.IsValid())

	d.AddError("DUPLICATE_FIELD", `field "id" declared twice`, "Session", "id")
	d.AddError("INVALID_IDENTIFIER", `record name "1x" is not a Go identifier`, "1x", "")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`Session.id: DUPLICATE_FIELD: field "id" declared twice; 1x: INVALID_IDENTIFIER: record name "1x" is not a Go identifier`,
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "suggestions",
			d: Diagnostic{
				Code:        "UNRESOLVED_NAMED",
				Message:     "type Adress is not in this package",
				Record:      "Account",
				Field:       "home",
				Suggestions: []string{"Address", "Addresses"},
			},
			want: "Account.home: UNRESOLVED_NAMED: type Adress is not in this package (did you mean Address, Addresses?)",
		},
		{name: "field only", d: Diagnostic{Code: "duplicate_pattern", Message: "dup", Field: "./a"}, want: "./a: duplicate_pattern: dup"},
		{name: "bare", d: Diagnostic{Message: "config file is nil"}, want: "config file is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("SIMILAR_FIELDS", "user_id and userId normalize alike", "User", "")
	b.AddError("INVALID_TYPE", "array without element", "User", "tags")
	b.AddWarning("OPTION_IGNORED", "omitempty has no effect", "User", "name")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
	assert.Equal(t, []string{"INVALID_TYPE", "OPTION_IGNORED", "SIMILAR_FIELDS"}, Codes(all))
	assert.Equal(t, "warning", all[1].Severity.String())
	assert.Equal(t, "unknown", Severity(7).String())
	assert.Nil(t, Codes(nil))
}
