package render_test

import (
	"strings"
	"testing"

	"github.com/hallopetra/formbuilder-go/models"
	"github.com/hallopetra/formbuilder-go/render"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func control(f models.FormField, value string) string {
	return string(render.FieldControl(f, value))
}

func mustContain(t *testing.T, html string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in %q", want, html)
		}
	}
}

func TestTextInput(t *testing.T) {
	f := models.FormField{Key: "name", Label: "Ihr Name", Type: models.FieldTypeText, Required: true}

	html := control(f, "")
	mustContain(t, html, `type="text"`, `name="name"`, `id="name"`, ` required`)
	// Without an explicit placeholder the label stands in.
	mustContain(t, html, `placeholder="Ihr Name"`)

	f.Placeholder = strPtr("Max Mustermann")
	mustContain(t, control(f, ""), `placeholder="Max Mustermann"`)

	mustContain(t, control(f, "Ann"), `value="Ann"`)
}

func TestEmailInput(t *testing.T) {
	f := models.FormField{Key: "mail", Label: "E-Mail", Type: models.FieldTypeEmail}
	mustContain(t, control(f, ""), `type="email"`, `placeholder="beispiel@email.de"`)
	if strings.Contains(control(f, ""), " required") {
		t.Fatal("optional field must not carry the required attribute")
	}
}

func TestNumberInput(t *testing.T) {
	f := models.FormField{
		Key:   "age",
		Label: "Alter",
		Type:  models.FieldTypeNumber,
		Min:   floatPtr(18),
		Max:   floatPtr(99.5),
	}
	html := control(f, "")
	mustContain(t, html, `type="number"`, `placeholder="0"`, `min="18"`, `max="99.5"`)
}

func TestDateInput(t *testing.T) {
	html := control(models.FormField{Key: "when", Label: "Datum", Type: models.FieldTypeDate}, "")
	mustContain(t, html, `type="date"`)
	if strings.Contains(html, "placeholder") {
		t.Fatalf("date inputs carry no placeholder: %q", html)
	}
}

func TestTextarea(t *testing.T) {
	f := models.FormField{Key: "msg", Label: "Nachricht", Type: models.FieldTypeTextarea}
	html := control(f, "Hallo\nWelt")
	mustContain(t, html, `<textarea`, `placeholder="Nachricht"`, `</textarea>`)
	mustContain(t, html, "Hallo\nWelt")
}

func TestSelectControl(t *testing.T) {
	f := models.FormField{
		Key:     "topic",
		Label:   "Thema",
		Type:    models.FieldTypeSelect,
		Options: []string{"Go", "SQL"},
	}
	html := control(f, "SQL")

	// The empty prompt option always comes first.
	promptIdx := strings.Index(html, `<option value="">Bitte wählen...</option>`)
	firstOptIdx := strings.Index(html, `<option value="Go">`)
	if promptIdx == -1 || firstOptIdx == -1 || promptIdx > firstOptIdx {
		t.Fatalf("prompt option missing or out of place: %q", html)
	}
	mustContain(t, html, `<option value="SQL" selected>SQL</option>`)
}

func TestRadioGroup(t *testing.T) {
	f := models.FormField{
		Key:     "pick",
		Label:   "Auswahl",
		Type:    models.FieldTypeRadio,
		Options: []string{"Ja", "Nein"},
	}
	html := control(f, "Nein")
	mustContain(t, html, `type="radio"`, `value="Ja"`, `value="Nein" checked`)
}

func TestCheckbox(t *testing.T) {
	f := models.FormField{Key: "agb", Label: "AGB", Type: models.FieldTypeCheckbox}

	html := control(f, "")
	mustContain(t, html, `type="checkbox"`, `value="true"`, `> AGB</label>`)
	if strings.Contains(html, " checked") {
		t.Fatalf("unticked checkbox must not render checked: %q", html)
	}

	mustContain(t, control(f, "true"), ` checked`)

	// The description, when present, replaces the label next to the box.
	f.Description = strPtr("Ich akzeptiere die AGB")
	mustContain(t, control(f, ""), "> Ich akzeptiere die AGB</label>")
}

func TestAttributeEscaping(t *testing.T) {
	f := models.FormField{
		Key:         "name",
		Label:       "Name",
		Type:        models.FieldTypeText,
		Placeholder: strPtr(`"><script>`),
	}
	html := control(f, "")
	if strings.Contains(html, "<script>") {
		t.Fatalf("placeholder not escaped: %q", html)
	}
}

func TestUnknownType(t *testing.T) {
	html := control(models.FormField{Key: "x", Label: "X", Type: models.FieldType("COLOR")}, "")
	if !strings.HasPrefix(html, "<!--") {
		t.Fatalf("unknown type should render as a comment, got %q", html)
	}
}
