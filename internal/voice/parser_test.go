// Tests for the dictation grammar and the spoken date conversion.
package voice

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var testVocabulary = []string{"Work", "Personal", "Home", "Study", "Health", "Finance"}

func TestParse(t *testing.T) {
	thisYear := time.Now().Year()

	tests := []struct {
		name string
		text string
		want types.VoiceDraft
	}{
		{
			name: "title only",
			text: "buy milk",
			want: types.VoiceDraft{Title: "buy milk"},
		},
		{
			name: "empty text",
			text: "   ",
			want: types.VoiceDraft{},
		},
		{
			name: "full dictation",
			text: "buy groceries detail weekly shopping run date fifteen december priority high category home finish",
			want: types.VoiceDraft{
				Title:       "buy groceries",
				Description: "weekly shopping run",
				DueDateText: fmt.Sprintf("%d-12-15", thisYear),
				Priority:    types.PriorityHigh,
				Category:    "Home",
				AutoSubmit:  true,
			},
		},
		{
			name: "finish truncates before field parsing",
			text: "call mom finish date ten january",
			want: types.VoiceDraft{Title: "call mom", AutoSubmit: true},
		},
		{
			name: "finish alone",
			text: "finish",
			want: types.VoiceDraft{AutoSubmit: true},
		},
		{
			name: "markers in any order",
			text: "pay rent priority low date three may",
			want: types.VoiceDraft{
				Title:       "pay rent",
				Priority:    types.PriorityLow,
				DueDateText: fmt.Sprintf("%d-05-03", thisYear),
			},
		},
		{
			name: "uppercase input is normalized",
			text: "  Buy Stamps DATE Ten May  ",
			want: types.VoiceDraft{
				Title:       "buy stamps",
				DueDateText: fmt.Sprintf("%d-05-10", thisYear),
			},
		},
		{
			name: "adjacent markers leave an empty field",
			text: "vague task date priority high",
			want: types.VoiceDraft{
				Title:    "vague task",
				Priority: types.PriorityHigh,
			},
		},
		{
			name: "priority words buried in chatter",
			text: "do taxes priority really high i think",
			want: types.VoiceDraft{Title: "do taxes", Priority: types.PriorityHigh},
		},
		{
			name: "unknown priority stays empty",
			text: "do taxes priority urgent",
			want: types.VoiceDraft{Title: "do taxes"},
		},
		{
			name: "category resolves to the canonical name",
			text: "book checkup category health stuff",
			want: types.VoiceDraft{Title: "book checkup", Category: "Health"},
		},
		{
			name: "unknown category stays empty",
			text: "fix bike category garage",
			want: types.VoiceDraft{Title: "fix bike"},
		},
		{
			name: "unparseable date text passes through raw",
			text: "water plants date sometime soon",
			want: types.VoiceDraft{Title: "water plants", DueDateText: "sometime soon"},
		},
	}

	p := NewParser(testVocabulary)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.text))
		})
	}
}

func TestConvertDate(t *testing.T) {
	thisYear := time.Now().Year()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "empty", text: "", want: ""},
		{name: "word day then month", text: "fifteen december", want: fmt.Sprintf("%d-12-15", thisYear)},
		{name: "month then word day", text: "december fifteen", want: fmt.Sprintf("%d-12-15", thisYear)},
		{name: "compound day word", text: "twenty one june", want: fmt.Sprintf("%d-06-21", thisYear)},
		{name: "thirty with following month", text: "thirty june 2027", want: "2027-06-30"},
		{name: "digits positional", text: "15 12 2025", want: "2025-12-15"},
		{name: "two digit year in this century", text: "3 7 25", want: "2025-07-03"},
		{name: "year alone", text: "2026", want: "2026-01-01"},
		{name: "month alone defaults the day", text: "march", want: fmt.Sprintf("%d-03-01", thisYear)},
		{name: "day alone defaults month and year", text: "ten", want: fmt.Sprintf("%d-01-10", thisYear)},
		{name: "filler words are skipped", text: "the fifth no wait ten of june", want: fmt.Sprintf("%d-06-10", thisYear)},
		{name: "hyphenated compound", text: "twenty-one june", want: fmt.Sprintf("%d-06-21", thisYear)},
		{name: "nothing recognizable", text: "whenever works", want: "whenever works"},
	}

	p := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.convertDate(tt.text))
		})
	}
}

func TestParseDraftFeedsCreateParams(t *testing.T) {
	// A dictated draft maps onto TaskParams without translation.
	p := NewParser(testVocabulary)
	draft := p.Parse("send invoice detail attach the hours sheet date ten march priority medium category work finish")

	params := types.TaskParams{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDateText,
		Priority:    draft.Priority,
	}
	assert.Equal(t, "send invoice", params.Title)
	assert.Equal(t, "attach the hours sheet", params.Description)
	assert.Equal(t, fmt.Sprintf("%d-03-10", time.Now().Year()), params.DueDate)
	assert.Equal(t, types.PriorityMedium, params.Priority)
	assert.True(t, draft.AutoSubmit)
}
