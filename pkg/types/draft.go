package types

// VoiceDraft is the structured result of parsing dictated task text. The
// fields hold raw heard text (the due date already converted to the ISO
// form when the grammar matched); validation happens on the normal create
// path, never in the parser.
type VoiceDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDateText string `json:"due_date_text,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
	AutoSubmit  bool   `json:"auto_submit"`
}
