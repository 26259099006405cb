package repositories

import (
	"github.com/hallopetra/formbuilder-go/db"
	"github.com/hallopetra/formbuilder-go/models"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(sub *models.FormSubmission) error
	ListByFormID(formID string) ([]models.FormSubmission, error)
	Delete(id string) error
}

type DBSubmissionRepo struct{}

func (r *DBSubmissionRepo) Create(sub *models.FormSubmission) error {
	return db.DB.Create(sub).Error
}

func (r *DBSubmissionRepo) ListByFormID(formID string) ([]models.FormSubmission, error) {
	var subs []models.FormSubmission
	err := db.DB.Where("form_id = ?", formID).Order("submitted_at desc").Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) Delete(id string) error {
	res := db.DB.Delete(&models.FormSubmission{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
