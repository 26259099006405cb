package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/dto"
	"github.com/hallopetra/formbuilder-go/response"
	"github.com/hallopetra/formbuilder-go/services"
)

type SubmissionHandler struct {
	service *services.SubmissionService
}

func NewSubmissionHandler(service *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit godoc
// @Summary Submit answers to a public form
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body dto.SubmissionInput true "Answers keyed by field key"
// @Success 201 {object} response.CreatedResponse "New submission id"
// @Failure 400 {object} response.ErrorResponse "Missing required answer"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id}/submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input dto.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	sub, err := h.service.Submit(c.Param("id"), input.Data)
	if err != nil {
		switch {
		case services.IsValidationError(err):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			log.Printf("Error submitting form: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Speichern der Daten"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.CreatedResponse{ID: sub.ID})
}

// GetFormSubmissions godoc
// @Summary List a form's submissions, newest first
// @Tags submissions
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} map[string]interface{} "Form and submissions"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id}/submissions [get]
func (h *SubmissionHandler) GetFormSubmissions(c *gin.Context) {
	form, subs, err := h.service.GetFormSubmissions(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error fetching submissions: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Laden der Submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": form, "submissions": subs})
}

// DeleteSubmission godoc
// @Summary Delete one submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Router /api/submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	err := h.service.DeleteSubmission(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error deleting submission: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Löschen der Submission"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Submission gelöscht"})
}

// ExportSubmissions godoc
// @Summary Download a form's submissions as CSV
// @Tags submissions
// @Produce text/csv
// @Param id path string true "Form ID"
// @Success 200 {string} string "CSV blob with UTF-8 BOM"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /api/forms/{id}/export [get]
func (h *SubmissionHandler) ExportSubmissions(c *gin.Context) {
	formID := c.Param("id")
	csv, err := h.service.ExportCSV(formID)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("Error exporting submissions: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Fehler beim Exportieren der Submissions"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="submissions-%s.csv"`, formID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
