package dto

// SubmissionInput carries a visitor's answers keyed by field key.
// Values are strings for text-like fields and booleans for checkboxes.
type SubmissionInput struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
