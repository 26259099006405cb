package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/dto"
	"github.com/hallopetra/formbuilder-go/response"
	"github.com/hallopetra/formbuilder-go/services"
)

type FormHandler struct {
	service *services.FormService
}

func NewFormHandler(service *services.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// CreateForm godoc
// @Summary Create a form with its fields
// @Tags forms
// @Accept json
// @Produce json
// @Param input body dto.FormInput true "Form definition"
// @Success 201 {object} response.CreatedResponse "New form id"
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 500 {object} response.ErrorResponse "Persistence failure"
// @Router /api/forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	form, err := h.service.CreateForm(input)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error creating form: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Erstellen des Formulars"})
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: form.ID})
}

// GetForms godoc
// @Summary List all forms with field and submission counts
// @Tags forms
// @Produce json
// @Success 200 {array} repositories.FormWithCounts
// @Failure 500 {object} response.ErrorResponse "Persistence failure"
// @Router /api/forms [get]
func (h *FormHandler) GetForms(c *gin.Context) {
	forms, err := h.service.ListForms()
	if err != nil {
		log.Printf("Error fetching forms: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Laden der Formulare"})
		return
	}

	c.JSON(http.StatusOK, forms)
}

// GetFormByID godoc
// @Summary Fetch one form with its fields in display order
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	form, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error fetching form: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Laden des Formulars"})
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Reconcile a form's fields against the submitted definition
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body dto.FormInput true "Desired form definition"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Validation failure"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Persistence failure"
// @Router /api/forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	var input dto.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	err := h.service.UpdateForm(c.Param("id"), input)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			log.Printf("Error updating form: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Aktualisieren des Formulars"})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Formular aktualisiert"})
}

// DeleteForm godoc
// @Summary Delete a form including its fields and submissions
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	err := h.service.DeleteForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error deleting form: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Löschen des Formulars"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Formular gelöscht"})
}

// DuplicateForm godoc
// @Summary Duplicate a form without its submissions
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 201 {object} response.CreatedResponse "New form id"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id}/duplicate [post]
func (h *FormHandler) DuplicateForm(c *gin.Context) {
	form, err := h.service.DuplicateForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error duplicating form: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Duplizieren des Formulars"})
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: form.ID})
}
