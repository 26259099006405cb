package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/hallopetra/formbuilder-go/models"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	token := loginAdmin(t)
	require.NotEmpty(t, token)

	body := map[string]string{"email": "admin@formbuilder.local", "password": "wrong"}
	doRequest(t, "POST", "/api/login", "", body, http.StatusUnauthorized)
}

func TestAPIRequiresAuth(t *testing.T) {
	doRequest(t, "GET", "/api/forms", "", nil, http.StatusUnauthorized)
	doRequest(t, "POST", "/api/forms", "", contactFormBody("Unauthenticated"), http.StatusUnauthorized)
}

func TestFormValidationRejections(t *testing.T) {
	token := loginAdmin(t)

	body := contactFormBody("Kaputt")
	body["fields"] = []map[string]interface{}{
		{"key": "Name", "label": "Name", "type": "TEXT"},
	}
	resp := doRequest(t, "POST", "/api/forms", token, body, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Kleinbuchstaben")

	body = contactFormBody("Kaputt")
	body["fields"] = []map[string]interface{}{
		{"key": "a", "label": "A", "type": "TEXT"},
		{"key": "a", "label": "B", "type": "TEXT"},
	}
	resp = doRequest(t, "POST", "/api/forms", token, body, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "eindeutig")

	body = contactFormBody("Kaputt")
	body["fields"] = []map[string]interface{}{
		{"key": "pick", "label": "Auswahl", "type": "RADIO"},
	}
	resp = doRequest(t, "POST", "/api/forms", token, body, http.StatusBadRequest)
	require.Contains(t, resp.Body.String(), "Option")
}

func TestFormLifecycle(t *testing.T) {
	token := loginAdmin(t)
	id := createForm(t, token, contactFormBody("Kontaktformular"))

	// Fetch: fields come back in display order.
	resp := doRequest(t, "GET", "/api/forms/"+id, token, nil, http.StatusOK)
	var form models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &form))
	require.Equal(t, "Kontaktformular", form.Title)
	require.Len(t, form.Fields, 4)
	for i, f := range form.Fields {
		require.Equal(t, i, f.Order)
	}

	// Reconcile: keep name (renamed), drop the rest, add a new field.
	update := map[string]interface{}{
		"title": "Kontakt neu",
		"fields": []map[string]interface{}{
			{"id": form.Fields[0].ID, "key": "name", "label": "Voller Name", "type": "TEXT", "required": true},
			{"key": "phone", "label": "Telefon", "type": "TEXT"},
		},
	}
	doRequest(t, "PUT", "/api/forms/"+id, token, update, http.StatusOK)

	resp = doRequest(t, "GET", "/api/forms/"+id, token, nil, http.StatusOK)
	var updated models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "Kontakt neu", updated.Title)
	require.Len(t, updated.Fields, 2)
	require.Equal(t, form.Fields[0].ID, updated.Fields[0].ID, "kept field keeps its identity")
	require.Equal(t, "Voller Name", updated.Fields[0].Label)
	require.Equal(t, "phone", updated.Fields[1].Key)
	require.NotEmpty(t, updated.Fields[1].ID)

	// A stale field id must roll the whole edit back.
	stale := map[string]interface{}{
		"title": "Darf nicht ankommen",
		"fields": []map[string]interface{}{
			{"id": "00000000-0000-0000-0000-000000000000", "key": "name", "label": "X", "type": "TEXT"},
		},
	}
	doRequest(t, "PUT", "/api/forms/"+id, token, stale, http.StatusInternalServerError)

	resp = doRequest(t, "GET", "/api/forms/"+id, token, nil, http.StatusOK)
	var unchanged models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &unchanged))
	require.Equal(t, "Kontakt neu", unchanged.Title)
	require.Len(t, unchanged.Fields, 2)

	// Delete.
	doRequest(t, "DELETE", "/api/forms/"+id, token, nil, http.StatusOK)
	doRequest(t, "GET", "/api/forms/"+id, token, nil, http.StatusNotFound)
	doRequest(t, "DELETE", "/api/forms/"+id, token, nil, http.StatusNotFound)
}

func TestDuplicateFormEndpoint(t *testing.T) {
	token := loginAdmin(t)
	id := createForm(t, token, contactFormBody("Original"))

	// Seed a submission so we can prove it is not carried over.
	sub := map[string]interface{}{
		"data": map[string]interface{}{"name": "Ann", "email": "a@b.de", "agb": true},
	}
	doRequest(t, "POST", fmt.Sprintf("/api/forms/%s/submissions", id), "", sub, http.StatusCreated)

	resp := doRequest(t, "POST", fmt.Sprintf("/api/forms/%s/duplicate", id), token, nil, http.StatusCreated)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotEqual(t, id, created.ID)

	resp = doRequest(t, "GET", "/api/forms/"+created.ID, token, nil, http.StatusOK)
	var duplicated models.Form
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &duplicated))
	require.Equal(t, "Original (Kopie)", duplicated.Title)
	require.Len(t, duplicated.Fields, 4)

	resp = doRequest(t, "GET", fmt.Sprintf("/api/forms/%s/submissions", created.ID), token, nil, http.StatusOK)
	var listing struct {
		Submissions []models.FormSubmission `json:"submissions"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))
	require.Empty(t, listing.Submissions)
}

func TestListFormsWithCounts(t *testing.T) {
	token := loginAdmin(t)
	id := createForm(t, token, contactFormBody("Zählung"))

	sub := map[string]interface{}{
		"data": map[string]interface{}{"name": "Ann", "email": "a@b.de", "agb": true},
	}
	doRequest(t, "POST", fmt.Sprintf("/api/forms/%s/submissions", id), "", sub, http.StatusCreated)

	resp := doRequest(t, "GET", "/api/forms", token, nil, http.StatusOK)
	var listing []struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		FieldCount      int64  `json:"field_count"`
		SubmissionCount int64  `json:"submission_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listing))

	var found bool
	for _, entry := range listing {
		if entry.ID == id {
			found = true
			require.Equal(t, "Zählung", entry.Title)
			require.EqualValues(t, 4, entry.FieldCount)
			require.EqualValues(t, 1, entry.SubmissionCount)
		}
	}
	require.True(t, found, "created form missing from listing")
}
