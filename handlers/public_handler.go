package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/models"
	"github.com/hallopetra/formbuilder-go/render"
	"github.com/hallopetra/formbuilder-go/services"
	"github.com/hallopetra/formbuilder-go/utils"
)

// PublicHandler serves the unauthenticated, server-rendered pages: the form
// itself, its browser submit target, and the login/admin chrome.
type PublicHandler struct {
	forms       *services.FormService
	submissions *services.SubmissionService
}

func NewPublicHandler(forms *services.FormService, submissions *services.SubmissionService) *PublicHandler {
	return &PublicHandler{forms: forms, submissions: submissions}
}

// fieldView pairs a field with its rendered control for the template.
// Checkboxes render their own label inline, so the template skips the
// outer label for them.
type fieldView struct {
	models.FormField
	Control    template.HTML
	IsCheckbox bool
}

func buildFieldViews(fields []models.FormField, values map[string]string) []fieldView {
	views := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		views = append(views, fieldView{
			FormField:  f,
			Control:    render.FieldControl(f, values[f.Key]),
			IsCheckbox: f.Type == models.FieldTypeCheckbox,
		})
	}
	return views
}

// ShowForm renders the public fill-out page. A missing form answers with a
// structured not-found page rather than a JSON error.
func (h *PublicHandler) ShowForm(c *gin.Context) {
	form, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		log.Printf("Error loading public form: %v", err)
		c.HTML(http.StatusInternalServerError, "notfound.html", nil)
		return
	}

	h.renderFormPage(c, http.StatusOK, form, map[string]string{}, "")
}

// SubmitForm handles the browser post. Checkbox answers become booleans,
// everything else stays a string; empty inputs are not stored at all. The
// first missing required field re-renders the page with that field's label
// in the error banner and the visitor's answers preserved; nothing is
// persisted in that case.
func (h *PublicHandler) SubmitForm(c *gin.Context) {
	form, err := h.forms.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		log.Printf("Error loading public form: %v", err)
		c.HTML(http.StatusInternalServerError, "notfound.html", nil)
		return
	}

	values := make(map[string]string)
	data := make(map[string]interface{})
	for _, field := range form.Fields {
		raw := c.PostForm(field.Key)
		if field.Type == models.FieldTypeCheckbox {
			checked := raw == "true"
			if checked {
				values[field.Key] = "true"
			}
			data[field.Key] = checked
			continue
		}
		if raw == "" {
			continue
		}
		values[field.Key] = raw
		data[field.Key] = raw
	}

	if _, err := h.submissions.Submit(form.ID, data); err != nil {
		var missing *services.MissingFieldError
		if errors.As(err, &missing) {
			h.renderFormPage(c, http.StatusBadRequest, form, values, missing.Error())
			return
		}
		log.Printf("Error storing submission: %v", err)
		h.renderFormPage(c, http.StatusInternalServerError, form, values, "Fehler beim Speichern der Daten")
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{"Title": form.Title})
}

func (h *PublicHandler) renderFormPage(c *gin.Context, status int, form *models.Form, values map[string]string, errMsg string) {
	c.HTML(status, "form.html", gin.H{
		"Form":   form,
		"Fields": buildFieldViews(form.Fields, values),
		"Error":  errMsg,
	})
}

// LoginPage renders the login form; next keeps the originally requested
// path across the round trip.
func (h *PublicHandler) LoginPage(c *gin.Context) {
	next := c.Query("next")
	if next == "" || next[0] != '/' {
		next = "/admin"
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Next": next, "Email": ""})
}

// AdminPage lists all forms with their field and submission counts.
func (h *PublicHandler) AdminPage(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	forms, err := h.forms.ListForms()
	if err != nil {
		log.Printf("Error loading admin page: %v", err)
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{"Error": "Fehler beim Laden der Formulare", "Email": claims.Email})
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{"Forms": forms, "Email": claims.Email})
}
