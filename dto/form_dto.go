package dto

// FieldInput describes one desired field in a create or update request.
// ID is nil for new fields; update requests carry the persisted field's ID
// to keep its identity across edits. Order sent by the caller is ignored:
// the position in the Fields slice is authoritative.
type FieldInput struct {
	ID          *string  `json:"id"`
	Key         string   `json:"key" binding:"required"`
	Label       string   `json:"label" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
	Placeholder *string  `json:"placeholder"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
}

type FormInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Fields      []FieldInput `json:"fields"`
}
