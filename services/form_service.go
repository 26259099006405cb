package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hallopetra/formbuilder-go/dto"
	"github.com/hallopetra/formbuilder-go/models"
	"github.com/hallopetra/formbuilder-go/repositories"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired    = errors.New("Titel ist erforderlich")
	ErrNoFields         = errors.New("Mindestens ein Feld ist erforderlich")
	ErrDuplicateKeys    = errors.New("Alle Keys müssen eindeutig sein")
	ErrInvalidKey       = errors.New("Keys dürfen nur Kleinbuchstaben, Ziffern und Unterstriche enthalten")
	ErrInvalidFieldType = errors.New("Unbekannter Feldtyp")
	ErrOptionsRequired  = errors.New("Auswahl- und Radio-Felder benötigen mindestens eine Option")
	ErrFormNotFound     = errors.New("Formular nicht gefunden")
)

var keyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// IsValidationError reports whether err is a precondition failure that the
// caller should see as a 400, as opposed to a missing entity or a storage
// failure.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrTitleRequired,
		ErrNoFields,
		ErrDuplicateKeys,
		ErrInvalidKey,
		ErrInvalidFieldType,
		ErrOptionsRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	var missing *MissingFieldError
	return errors.As(err, &missing)
}

type FormService struct {
	repos *repositories.Repos
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{repos: repos}
}

// validateInput runs every precondition check before any database call.
// Key uniqueness is checked across the full desired list, not per item.
func validateInput(in dto.FormInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if len(in.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]struct{}, len(in.Fields))
	for _, f := range in.Fields {
		if !keyPattern.MatchString(f.Key) {
			return ErrInvalidKey
		}
		if _, dup := seen[f.Key]; dup {
			return ErrDuplicateKeys
		}
		seen[f.Key] = struct{}{}

		fieldType := models.FieldType(f.Type)
		if !fieldType.Valid() {
			return ErrInvalidFieldType
		}
		if fieldType.HasOptions() && len(f.Options) == 0 {
			return ErrOptionsRequired
		}
	}
	return nil
}

// buildField maps a desired field to a model row. Order always comes from
// the field's position in the request list. Options are dropped for types
// that do not carry any.
func buildField(in dto.FieldInput, order int) models.FormField {
	fieldType := models.FieldType(in.Type)

	field := models.FormField{
		Key:      in.Key,
		Label:    in.Label,
		Type:     fieldType,
		Required: in.Required,
		Order:    order,
	}
	if in.Description != "" {
		desc := in.Description
		field.Description = &desc
	}
	if fieldType.HasOptions() {
		field.Options = in.Options
	}
	field.Placeholder = in.Placeholder
	field.Min = in.Min
	field.Max = in.Max
	return field
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *FormService) CreateForm(in dto.FormInput) (*models.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	form := &models.Form{
		Title:       in.Title,
		Description: optionalString(in.Description),
	}
	for i, f := range in.Fields {
		form.Fields = append(form.Fields, buildField(f, i))
	}

	if err := s.repos.Form.CreateFormWithFields(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) GetForm(id string) (*models.Form, error) {
	form, err := s.repos.Form.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) ListForms() ([]repositories.FormWithCounts, error) {
	return s.repos.Form.ListWithCounts()
}

// UpdateForm reconciles the persisted field set against the desired list:
// persisted fields absent from the request are deleted, fields carrying an
// identity are updated in place, fields without one are inserted. The diff
// plus the title/description update run in a single transaction; a failing
// step leaves the previous state intact. Re-running with the same desired
// list is a no-op apart from bumping updated_at.
func (s *FormService) UpdateForm(id string, in dto.FormInput) error {
	if err := validateInput(in); err != nil {
		return err
	}

	existing, err := s.repos.Form.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	if err != nil {
		return err
	}

	desiredIDs := make(map[string]struct{})
	var toCreate []models.FormField
	var toUpdate []models.FormField
	for i, f := range in.Fields {
		field := buildField(f, i)
		if f.ID != nil && *f.ID != "" {
			field.ID = *f.ID
			desiredIDs[field.ID] = struct{}{}
			toUpdate = append(toUpdate, field)
		} else {
			toCreate = append(toCreate, field)
		}
	}

	var toDeleteIDs []string
	for _, persisted := range existing.Fields {
		if _, keep := desiredIDs[persisted.ID]; !keep {
			toDeleteIDs = append(toDeleteIDs, persisted.ID)
		}
	}

	form := &models.Form{
		ID:          id,
		Title:       in.Title,
		Description: optionalString(in.Description),
	}
	return s.repos.Form.SaveFormAndFields(form, toCreate, toUpdate, toDeleteIDs)
}

// DuplicateForm creates an independent copy: fresh form and field identities,
// identical field attributes and order, title marked as a copy. Submissions
// are not carried over.
func (s *FormService) DuplicateForm(id string) (*models.Form, error) {
	original, err := s.GetForm(id)
	if err != nil {
		return nil, err
	}

	copyForm := &models.Form{
		Title:       original.Title + " (Kopie)",
		Description: original.Description,
	}
	for _, f := range original.Fields {
		copyForm.Fields = append(copyForm.Fields, models.FormField{
			Key:         f.Key,
			Label:       f.Label,
			Description: f.Description,
			Type:        f.Type,
			Required:    f.Required,
			Options:     f.Options,
			Placeholder: f.Placeholder,
			Min:         f.Min,
			Max:         f.Max,
			Order:       f.Order,
		})
	}

	if err := s.repos.Form.CreateFormWithFields(copyForm); err != nil {
		return nil, err
	}
	return copyForm, nil
}

func (s *FormService) DeleteForm(id string) error {
	err := s.repos.Form.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFormNotFound
	}
	return err
}
