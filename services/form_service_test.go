package services_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hallopetra/formbuilder-go/dto"
	"github.com/hallopetra/formbuilder-go/models"
	"github.com/hallopetra/formbuilder-go/repositories"
	"github.com/hallopetra/formbuilder-go/repositories/mock_repositories"
	"github.com/hallopetra/formbuilder-go/services"
	"gorm.io/gorm"
)

func setupFormMocks(t *testing.T) (*services.FormService, *mock_repositories.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	repos := &repositories.Repos{Form: mockForm}

	return services.NewFormService(repos), mockForm
}

func strPtr(s string) *string { return &s }

func validFormInput() dto.FormInput {
	return dto.FormInput{
		Title: "Kontakt",
		Fields: []dto.FieldInput{
			{Key: "name", Label: "Name", Type: "TEXT", Required: true},
			{Key: "topic", Label: "Thema", Type: "SELECT", Options: []string{"A", "B"}},
		},
	}
}

func TestCreateFormValidation(t *testing.T) {
	svc, _ := setupFormMocks(t)

	cases := []struct {
		name    string
		mutate  func(*dto.FormInput)
		wantErr error
	}{
		{"blank title", func(in *dto.FormInput) { in.Title = "   " }, services.ErrTitleRequired},
		{"no fields", func(in *dto.FormInput) { in.Fields = nil }, services.ErrNoFields},
		{"uppercase key", func(in *dto.FormInput) { in.Fields[0].Key = "Name" }, services.ErrInvalidKey},
		{"key with space", func(in *dto.FormInput) { in.Fields[0].Key = "first name" }, services.ErrInvalidKey},
		{"empty key", func(in *dto.FormInput) { in.Fields[0].Key = "" }, services.ErrInvalidKey},
		{"duplicate keys", func(in *dto.FormInput) { in.Fields[1].Key = "name" }, services.ErrDuplicateKeys},
		{"unknown type", func(in *dto.FormInput) { in.Fields[0].Type = "COLOR" }, services.ErrInvalidFieldType},
		{"select without options", func(in *dto.FormInput) { in.Fields[1].Options = nil }, services.ErrOptionsRequired},
		{"radio without options", func(in *dto.FormInput) {
			in.Fields[1].Type = "RADIO"
			in.Fields[1].Options = []string{}
		}, services.ErrOptionsRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validFormInput()
			tc.mutate(&in)

			_, err := svc.CreateForm(in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateForm(t *testing.T) {
	svc, mockForm := setupFormMocks(t)

	t.Run("assigns order from position", func(t *testing.T) {
		in := dto.FormInput{
			Title: "Umfrage",
			Fields: []dto.FieldInput{
				{Key: "a", Label: "A", Type: "TEXT"},
				{Key: "b", Label: "B", Type: "TEXTAREA"},
				{Key: "c", Label: "C", Type: "CHECKBOX"},
			},
		}
		mockForm.EXPECT().CreateFormWithFields(gomock.Any()).Return(nil)

		form, err := svc.CreateForm(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, f := range form.Fields {
			if f.Order != i {
				t.Fatalf("field %s: expected order %d, got %d", f.Key, i, f.Order)
			}
		}
	})

	t.Run("drops options on non-choice types", func(t *testing.T) {
		in := dto.FormInput{
			Title: "Umfrage",
			Fields: []dto.FieldInput{
				{Key: "a", Label: "A", Type: "TEXT", Options: []string{"stray"}},
			},
		}
		mockForm.EXPECT().CreateFormWithFields(gomock.Any()).Return(nil)

		form, err := svc.CreateForm(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(form.Fields[0].Options) != 0 {
			t.Fatalf("expected options to be dropped, got %v", form.Fields[0].Options)
		}
	})

	t.Run("repo failure bubbles up", func(t *testing.T) {
		mockForm.EXPECT().CreateFormWithFields(gomock.Any()).Return(errors.New("db down"))

		_, err := svc.CreateForm(validFormInput())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if services.IsValidationError(err) {
			t.Fatalf("storage failure must not read as validation error: %v", err)
		}
	})
}

func TestUpdateFormDiff(t *testing.T) {
	svc, mockForm := setupFormMocks(t)

	existing := &models.Form{
		ID:    "form-1",
		Title: "Alt",
		Fields: []models.FormField{
			{ID: "field-a", FormID: "form-1", Key: "a", Label: "A", Type: models.FieldTypeText, Order: 0},
			{ID: "field-b", FormID: "form-1", Key: "b", Label: "B", Type: models.FieldTypeText, Order: 1},
		},
	}
	mockForm.EXPECT().FindByID("form-1").Return(existing, nil)

	in := dto.FormInput{
		Title: "Neu",
		Fields: []dto.FieldInput{
			{ID: strPtr("field-a"), Key: "a", Label: "A neu", Type: "TEXT"},
			{Key: "c", Label: "C", Type: "NUMBER"},
		},
	}

	mockForm.EXPECT().
		SaveFormAndFields(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(form *models.Form, toCreate, toUpdate []models.FormField, toDeleteIDs []string) error {
			if form.ID != "form-1" || form.Title != "Neu" {
				t.Fatalf("unexpected form row: %+v", form)
			}
			if len(toUpdate) != 1 || toUpdate[0].ID != "field-a" || toUpdate[0].Label != "A neu" {
				t.Fatalf("unexpected update set: %+v", toUpdate)
			}
			if toUpdate[0].Order != 0 {
				t.Fatalf("expected order 0 for kept field, got %d", toUpdate[0].Order)
			}
			if len(toCreate) != 1 || toCreate[0].Key != "c" || toCreate[0].Order != 1 {
				t.Fatalf("unexpected create set: %+v", toCreate)
			}
			if len(toDeleteIDs) != 1 || toDeleteIDs[0] != "field-b" {
				t.Fatalf("unexpected delete set: %v", toDeleteIDs)
			}
			return nil
		})

	if err := svc.UpdateForm("form-1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateFormNotFound(t *testing.T) {
	svc, mockForm := setupFormMocks(t)

	mockForm.EXPECT().FindByID("missing").Return(nil, gorm.ErrRecordNotFound)

	err := svc.UpdateForm("missing", validFormInput())
	if !errors.Is(err, services.ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestDuplicateForm(t *testing.T) {
	svc, mockForm := setupFormMocks(t)

	original := &models.Form{
		ID:          "form-1",
		Title:       "Kontakt",
		Description: strPtr("Beschreibung"),
		Fields: []models.FormField{
			{ID: "field-a", FormID: "form-1", Key: "a", Label: "A", Type: models.FieldTypeSelect, Options: []string{"x", "y"}, Order: 0},
			{ID: "field-b", FormID: "form-1", Key: "b", Label: "B", Type: models.FieldTypeText, Required: true, Order: 1},
		},
	}
	mockForm.EXPECT().FindByID("form-1").Return(original, nil)
	mockForm.EXPECT().CreateFormWithFields(gomock.Any()).Return(nil)

	copied, err := svc.DuplicateForm("form-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if copied.Title != "Kontakt (Kopie)" {
		t.Fatalf("expected copy suffix, got %q", copied.Title)
	}
	if len(copied.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(copied.Fields))
	}
	for i, f := range copied.Fields {
		if f.ID != "" {
			t.Fatalf("copied field must not carry the original identity, got %q", f.ID)
		}
		if f.Key != original.Fields[i].Key || f.Order != original.Fields[i].Order {
			t.Fatalf("field attributes diverged: %+v vs %+v", f, original.Fields[i])
		}
	}
	if copied.Fields[1].Required != true {
		t.Fatal("required flag lost in copy")
	}
}

func TestDeleteForm(t *testing.T) {
	svc, mockForm := setupFormMocks(t)

	t.Run("success", func(t *testing.T) {
		mockForm.EXPECT().Delete("form-1").Return(nil)
		if err := svc.DeleteForm("form-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mockForm.EXPECT().Delete("missing").Return(gorm.ErrRecordNotFound)
		err := svc.DeleteForm("missing")
		if !errors.Is(err, services.ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})
}
