package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FormSubmission is append-only: rows are created by the public submit
// endpoint and never updated. Data is an opaque field-key -> answer map;
// it is not re-validated against the form's current fields after storage.
type FormSubmission struct {
	ID          string            `gorm:"primaryKey;size:36" json:"id"`
	FormID      string            `gorm:"size:36;not null;index" json:"form_id"`
	Form        *Form             `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"-"`
	Data        datatypes.JSONMap `gorm:"not null" json:"data"`
	SubmittedAt time.Time         `gorm:"autoCreateTime" json:"submitted_at"`
}

func (s *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
