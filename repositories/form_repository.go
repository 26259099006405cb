package repositories

import (
	"fmt"
	"time"

	"github.com/hallopetra/formbuilder-go/db"
	"github.com/hallopetra/formbuilder-go/models"
	"gorm.io/gorm"
)

// FormWithCounts is a list-view projection of a form plus how many fields
// and submissions it owns.
type FormWithCounts struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	FieldCount      int64     `json:"field_count"`
	SubmissionCount int64     `json:"submission_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type FormRepo interface {
	CreateFormWithFields(form *models.Form) error
	FindByID(id string) (*models.Form, error)
	ListWithCounts() ([]FormWithCounts, error)
	SaveFormAndFields(form *models.Form, toCreate []models.FormField, toUpdate []models.FormField, toDeleteIDs []string) error
	Delete(id string) error
}

type DBFormRepo struct{}

// CreateFormWithFields persists the form and its fields as one transaction;
// nothing is written when any insert fails.
func (r *DBFormRepo) CreateFormWithFields(form *models.Form) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(form).Error
	})
}

func (r *DBFormRepo) FindByID(id string) (*models.Form, error) {
	var form models.Form
	err := db.DB.Preload("Fields", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("field_order asc")
	}).First(&form, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *DBFormRepo) ListWithCounts() ([]FormWithCounts, error) {
	var results []FormWithCounts
	err := db.DB.Table("forms").
		Select(`forms.id, forms.title, forms.description, forms.created_at, forms.updated_at,
			(SELECT COUNT(*) FROM form_fields WHERE form_fields.form_id = forms.id) AS field_count,
			(SELECT COUNT(*) FROM form_submissions WHERE form_submissions.form_id = forms.id) AS submission_count`).
		Order("forms.created_at desc").
		Scan(&results).Error
	return results, err
}

// SaveFormAndFields applies a reconciled field diff in one transaction:
// the form row itself, deletes, in-place updates, and inserts. A failure at
// any step rolls the whole edit back.
func (r *DBFormRepo) SaveFormAndFields(form *models.Form, toCreate []models.FormField, toUpdate []models.FormField, toDeleteIDs []string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Form{}).Where("id = ?", form.ID).
			Updates(map[string]interface{}{
				"title":       form.Title,
				"description": form.Description,
			}).Error; err != nil {
			return err
		}

		if len(toDeleteIDs) > 0 {
			if err := tx.Where("form_id = ? AND id IN ?", form.ID, toDeleteIDs).
				Delete(&models.FormField{}).Error; err != nil {
				return err
			}
		}

		for i := range toUpdate {
			field := &toUpdate[i]
			res := tx.Model(&models.FormField{}).
				Where("id = ? AND form_id = ?", field.ID, form.ID).
				Updates(map[string]interface{}{
					"key":         field.Key,
					"label":       field.Label,
					"description": field.Description,
					"type":        field.Type,
					"required":    field.Required,
					"options":     field.Options,
					"placeholder": field.Placeholder,
					"min":         field.Min,
					"max":         field.Max,
					"field_order": field.Order,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("field %s does not belong to form %s", field.ID, form.ID)
			}
		}

		for i := range toCreate {
			toCreate[i].FormID = form.ID
			if err := tx.Create(&toCreate[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the form; fields and submissions go with it via the
// ON DELETE CASCADE foreign keys.
func (r *DBFormRepo) Delete(id string) error {
	res := db.DB.Delete(&models.Form{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
