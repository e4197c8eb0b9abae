package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaldon/taskdesk/pkg/types"
)

func TestTaskParams(t *testing.T) {
	categoryID := int64(2)

	tests := []struct {
		name      string
		params    types.TaskParams
		wantField string
	}{
		{
			name:   "title only is valid",
			params: types.TaskParams{Title: "Buy groceries"},
		},
		{
			name: "all fields valid",
			params: types.TaskParams{
				Title:       "Review report",
				Description: "Quarterly numbers",
				DueDate:     "2025-12-31",
				Priority:    types.PriorityHigh,
				CategoryID:  &categoryID,
			},
		},
		{
			name:      "empty title rejected",
			params:    types.TaskParams{Title: ""},
			wantField: "title",
		},
		{
			name:      "malformed due date rejected",
			params:    types.TaskParams{Title: "x", DueDate: "31/12/2025"},
			wantField: "due_date",
		},
		{
			name:      "impossible calendar date rejected",
			params:    types.TaskParams{Title: "x", DueDate: "2025-02-30"},
			wantField: "due_date",
		},
		{
			name:      "unknown priority rejected",
			params:    types.TaskParams{Title: "x", Priority: "urgent"},
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskParams(tt.params)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *types.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestTaskPatch(t *testing.T) {
	valid := types.StatusCompleted
	invalid := "archived"
	emptyDate := ""
	badDate := "someday"
	goodDate := "2025-06-01"
	badPriority := "urgent"

	tests := []struct {
		name      string
		patch     types.TaskPatch
		wantField string
	}{
		{
			name:  "empty patch passes",
			patch: types.TaskPatch{},
		},
		{
			name:  "valid status passes",
			patch: types.TaskPatch{Status: &valid},
		},
		{
			name:      "invalid status rejected",
			patch:     types.TaskPatch{Status: &invalid},
			wantField: "status",
		},
		{
			name:  "clearing due date passes",
			patch: types.TaskPatch{DueDate: &emptyDate},
		},
		{
			name:  "valid due date passes",
			patch: types.TaskPatch{DueDate: &goodDate},
		},
		{
			name:      "malformed due date rejected",
			patch:     types.TaskPatch{DueDate: &badDate},
			wantField: "due_date",
		},
		{
			name:      "invalid priority rejected",
			patch:     types.TaskPatch{Priority: &badPriority},
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskPatch(tt.patch)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *types.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidateTagColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{name: "default color valid", color: types.DefaultTagColor},
		{name: "uppercase hex valid", color: "#A3BE8C"},
		{name: "lowercase hex valid", color: "#a3be8c"},
		{name: "short form rejected", color: "#abc", wantErr: true},
		{name: "missing hash rejected", color: "88C0D0", wantErr: true},
		{name: "non-hex digits rejected", color: "#88C0ZZ", wantErr: true},
		{name: "empty rejected", color: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTagColor(tt.color)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStatusAndPriority(t *testing.T) {
	assert.NoError(t, ValidateStatus(types.StatusOverdue))
	assert.Error(t, ValidateStatus("archived"))
	assert.NoError(t, ValidatePriority(types.PriorityLow))
	assert.Error(t, ValidatePriority(""))
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  buy milk  ", want: "buy milk"},
		{name: "keeps newline and tab", input: "a\n\tb", want: "a\n\tb"},
		{name: "strips control characters", input: "a\x00b\x1bc", want: "abc"},
		{name: "empty stays empty", input: "", want: ""},
		{name: "whitespace only collapses to empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}
