package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldTypeText     FieldType = "TEXT"
	FieldTypeEmail    FieldType = "EMAIL"
	FieldTypeNumber   FieldType = "NUMBER"
	FieldTypeDate     FieldType = "DATE"
	FieldTypeTextarea FieldType = "TEXTAREA"
	FieldTypeSelect   FieldType = "SELECT"
	FieldTypeRadio    FieldType = "RADIO"
	FieldTypeCheckbox FieldType = "CHECKBOX"
)

// FieldTypes lists every supported field type, in no particular order.
var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeEmail,
	FieldTypeNumber,
	FieldTypeDate,
	FieldTypeTextarea,
	FieldTypeSelect,
	FieldTypeRadio,
	FieldTypeCheckbox,
}

func (t FieldType) Valid() bool {
	for _, known := range FieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether fields of this type carry an options list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

type Form struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description *string     `gorm:"size:1000" json:"description"`
	Fields      []FormField `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE" json:"fields"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type FormField struct {
	ID          string                      `gorm:"primaryKey;size:36" json:"id"`
	FormID      string                      `gorm:"size:36;not null;index;uniqueIndex:idx_form_field_key,composite:form_key" json:"form_id"`
	Key         string                      `gorm:"size:100;not null;uniqueIndex:idx_form_field_key,composite:form_key" json:"key"`
	Label       string                      `gorm:"size:255;not null" json:"label"`
	Description *string                     `gorm:"size:1000" json:"description"`
	Type        FieldType                   `gorm:"type:field_type;not null" json:"type"`
	Required    bool                        `gorm:"not null;default:false" json:"required"`
	Options     datatypes.JSONSlice[string] `json:"options"`
	Placeholder *string                     `gorm:"size:255" json:"placeholder"`
	Min         *float64                    `json:"min"`
	Max         *float64                    `json:"max"`
	Order       int                         `gorm:"column:field_order;not null" json:"order"`
}

func (f *FormField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
