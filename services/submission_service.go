package services

import (
	"errors"

	"github.com/hallopetra/formbuilder-go/models"
	"github.com/hallopetra/formbuilder-go/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("Submission nicht gefunden")

// MissingFieldError names the first required field without an answer.
type MissingFieldError struct {
	Label string
}

func (e *MissingFieldError) Error() string {
	return e.Label + " ist ein Pflichtfeld"
}

type SubmissionService struct {
	repos *repositories.Repos
}

func NewSubmissionService(repos *repositories.Repos) *SubmissionService {
	return &SubmissionService{repos: repos}
}

// answered reports whether value counts as an answer for the given field
// type. The switch is exhaustive over the type enumeration so that a new
// field type cannot ship without a validation rule.
func answered(fieldType models.FieldType, value interface{}) bool {
	switch fieldType {
	case models.FieldTypeCheckbox:
		checked, ok := value.(bool)
		return ok && checked
	case models.FieldTypeText,
		models.FieldTypeEmail,
		models.FieldTypeNumber,
		models.FieldTypeDate,
		models.FieldTypeTextarea,
		models.FieldTypeSelect,
		models.FieldTypeRadio:
		switch v := value.(type) {
		case nil:
			return false
		case string:
			return v != ""
		case bool:
			return v
		case []interface{}:
			return len(v) > 0
		case []string:
			return len(v) > 0
		default:
			return true
		}
	}
	return false
}

// ValidateAnswers checks the required fields in display order and returns a
// MissingFieldError for the first one without an answer. It never inspects
// keys the form does not define; extra keys pass through untouched.
func ValidateAnswers(fields []models.FormField, data map[string]interface{}) error {
	for _, field := range fields {
		if field.Required && !answered(field.Type, data[field.Key]) {
			return &MissingFieldError{Label: field.Label}
		}
	}
	return nil
}

// Submit validates required answers against the form's current field list
// and stores the map as-is. Stored submissions are never re-validated when
// the form changes later.
func (s *SubmissionService) Submit(formID string, data map[string]interface{}) (*models.FormSubmission, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAnswers(form.Fields, data); err != nil {
		return nil, err
	}

	sub := &models.FormSubmission{
		FormID: form.ID,
		Data:   datatypes.JSONMap(data),
	}
	if err := s.repos.Submission.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetFormSubmissions returns the form (fields in order) together with its
// submissions, newest first.
func (s *SubmissionService) GetFormSubmissions(formID string) (*models.Form, []models.FormSubmission, error) {
	form, err := s.findForm(formID)
	if err != nil {
		return nil, nil, err
	}
	subs, err := s.repos.Submission.ListByFormID(formID)
	if err != nil {
		return nil, nil, err
	}
	return form, subs, nil
}

func (s *SubmissionService) DeleteSubmission(id string) error {
	err := s.repos.Submission.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubmissionNotFound
	}
	return err
}

func (s *SubmissionService) findForm(formID string) (*models.Form, error) {
	form, err := s.repos.Form.FindByID(formID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}
