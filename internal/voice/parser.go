// Package voice turns transcribed dictation into task drafts. Speech
// engines stay outside the module; callers hand in text and get back a
// structured draft that feeds the normal create path.
//
// The grammar is marker based. The text before the first marker is the
// title; "detail", "date", "priority", and "category" introduce fields;
// "finish" anywhere ends the dictation and requests submission.
package voice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmaldon/taskdesk/pkg/types"
)

const (
	markerDetail   = "detail"
	markerDate     = "date"
	markerPriority = "priority"
	markerCategory = "category"
	markerFinish   = "finish"
)

var fieldMarkers = []string{markerDetail, markerDate, markerPriority, markerCategory}

// numberWords covers the day range of a calendar month. Compound words
// build from these ("twenty one").
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30,
}

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// Parser extracts drafts from transcripts. The category vocabulary comes
// from the store, so dictated names resolve against what actually exists.
type Parser struct {
	vocabulary []string
}

// NewParser returns a parser recognizing the given category names.
func NewParser(vocabulary []string) *Parser {
	return &Parser{vocabulary: append([]string(nil), vocabulary...)}
}

// Parse extracts a draft from a transcript. Parsing never fails; text
// that fits no field lands in the title or the raw date text, and the
// normal form validation decides what to do with it.
func (p *Parser) Parse(text string) types.VoiceDraft {
	var draft types.VoiceDraft
	text = strings.ToLower(strings.TrimSpace(text))

	if i := strings.Index(text, markerFinish); i >= 0 {
		draft.AutoSubmit = true
		text = strings.TrimSpace(text[:i])
	}

	type site struct {
		marker string
		start  int
		end    int
	}
	var sites []site
	for _, m := range fieldMarkers {
		if i := strings.Index(text, m); i >= 0 {
			sites = append(sites, site{marker: m, start: i, end: i + len(m)})
		}
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].start < sites[j].start })

	if len(sites) == 0 {
		draft.Title = text
		return draft
	}
	draft.Title = strings.TrimSpace(text[:sites[0].start])

	for i, s := range sites {
		stop := len(text)
		if i+1 < len(sites) {
			stop = sites[i+1].start
		}
		value := strings.TrimSpace(text[s.end:stop])
		switch s.marker {
		case markerDetail:
			draft.Description = value
		case markerDate:
			draft.DueDateText = p.convertDate(value)
		case markerPriority:
			draft.Priority = scanPriority(value)
		case markerCategory:
			draft.Category = p.scanCategory(value)
		}
	}

	return draft
}

// convertDate turns spoken date text into an ISO calendar date. Number
// words and month names map to day and month, digit runs fill day, month,
// then year positionally, four-digit runs are taken as the year, and
// two-digit years live in this century. Unstated parts default to day 1,
// month 1, and the current year. Text yielding no parts at all comes back
// unchanged for the form validation to reject.
func (p *Parser) convertDate(text string) string {
	if text == "" {
		return ""
	}

	var day, month, year int
	tokens := strings.Fields(strings.ReplaceAll(text, "-", " "))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if m, ok := monthNumbers[tok]; ok {
			if month == 0 {
				month = m
			}
			continue
		}

		if v, ok := numberWords[tok]; ok {
			if (v == 20 || v == 30) && i+1 < len(tokens) {
				if units, ok := numberWords[tokens[i+1]]; ok && units <= 9 {
					v += units
					i++
				}
			}
			switch {
			case day == 0 && v <= 31:
				day = v
			case month == 0 && v <= 12:
				month = v
			}
			continue
		}

		if isDigits(tok) {
			v, _ := strconv.Atoi(tok)
			if len(tok) == 4 {
				if year == 0 {
					year = v
				}
				continue
			}
			switch {
			case day == 0 && v <= 31:
				day = v
			case month == 0 && v <= 12:
				month = v
			case year == 0:
				year = 2000 + v
			}
		}
	}

	if day == 0 && month == 0 && year == 0 {
		return text
	}
	if year == 0 {
		year = time.Now().Year()
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// scanPriority finds a priority level in the field text, highest first.
func scanPriority(text string) string {
	for _, level := range []string{types.PriorityHigh, types.PriorityMedium, types.PriorityLow} {
		if strings.Contains(text, level) {
			return level
		}
	}
	return ""
}

// scanCategory resolves the field text against the vocabulary and
// returns the canonical name of the first category mentioned.
func (p *Parser) scanCategory(text string) string {
	for _, name := range p.vocabulary {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
