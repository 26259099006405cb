package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/hallopetra/formbuilder-go/models"
)

// FieldControl renders the input control for a single field. The switch is
// exhaustive over the field type enumeration; a type without a branch falls
// through to an HTML comment so broken data stays visible in markup review
// instead of silently dropping the field.
//
// value is the visitor's previously entered answer, used when a page is
// re-rendered after a validation failure. For checkboxes it is "true" when
// the box was ticked.
func FieldControl(f models.FormField, value string) template.HTML {
	switch f.Type {
	case models.FieldTypeText:
		return textInput("text", f, placeholderOr(f, f.Label), value)
	case models.FieldTypeEmail:
		return textInput("email", f, placeholderOr(f, "beispiel@email.de"), value)
	case models.FieldTypeNumber:
		return numberInput(f, value)
	case models.FieldTypeDate:
		return textInput("date", f, "", value)
	case models.FieldTypeTextarea:
		return textarea(f, value)
	case models.FieldTypeSelect:
		return selectControl(f, value)
	case models.FieldTypeRadio:
		return radioGroup(f, value)
	case models.FieldTypeCheckbox:
		return checkbox(f, value)
	}
	return template.HTML(fmt.Sprintf("<!-- unknown field type %q -->", string(f.Type)))
}

func placeholderOr(f models.FormField, fallback string) string {
	if f.Placeholder != nil && *f.Placeholder != "" {
		return *f.Placeholder
	}
	return fallback
}

func attr(name, value string) string {
	return fmt.Sprintf(` %s="%s"`, name, template.HTMLEscapeString(value))
}

func requiredAttr(f models.FormField) string {
	if f.Required {
		return " required"
	}
	return ""
}

func textInput(inputType string, f models.FormField, placeholder, value string) template.HTML {
	var b strings.Builder
	b.WriteString(`<input`)
	b.WriteString(attr("type", inputType))
	b.WriteString(attr("name", f.Key))
	b.WriteString(attr("id", f.Key))
	if value != "" {
		b.WriteString(attr("value", value))
	}
	if placeholder != "" {
		b.WriteString(attr("placeholder", placeholder))
	}
	b.WriteString(requiredAttr(f))
	b.WriteString(`>`)
	return template.HTML(b.String())
}

func numberInput(f models.FormField, value string) template.HTML {
	var b strings.Builder
	b.WriteString(`<input`)
	b.WriteString(attr("type", "number"))
	b.WriteString(attr("name", f.Key))
	b.WriteString(attr("id", f.Key))
	if value != "" {
		b.WriteString(attr("value", value))
	}
	b.WriteString(attr("placeholder", placeholderOr(f, "0")))
	if f.Min != nil {
		b.WriteString(attr("min", formatBound(*f.Min)))
	}
	if f.Max != nil {
		b.WriteString(attr("max", formatBound(*f.Max)))
	}
	b.WriteString(requiredAttr(f))
	b.WriteString(`>`)
	return template.HTML(b.String())
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func textarea(f models.FormField, value string) template.HTML {
	var b strings.Builder
	b.WriteString(`<textarea rows="4"`)
	b.WriteString(attr("name", f.Key))
	b.WriteString(attr("id", f.Key))
	b.WriteString(attr("placeholder", placeholderOr(f, f.Label)))
	b.WriteString(requiredAttr(f))
	b.WriteString(`>`)
	b.WriteString(template.HTMLEscapeString(value))
	b.WriteString(`</textarea>`)
	return template.HTML(b.String())
}

func selectControl(f models.FormField, value string) template.HTML {
	var b strings.Builder
	b.WriteString(`<select`)
	b.WriteString(attr("name", f.Key))
	b.WriteString(attr("id", f.Key))
	b.WriteString(requiredAttr(f))
	b.WriteString(`>`)
	// The empty placeholder option always comes first.
	b.WriteString(`<option value="">Bitte wählen...</option>`)
	for _, option := range f.Options {
		b.WriteString(`<option`)
		b.WriteString(attr("value", option))
		if option == value {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(template.HTMLEscapeString(option))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)
	return template.HTML(b.String())
}

func radioGroup(f models.FormField, value string) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="radio-group">`)
	for _, option := range f.Options {
		b.WriteString(`<label><input type="radio"`)
		b.WriteString(attr("name", f.Key))
		b.WriteString(attr("value", option))
		if option == value {
			b.WriteString(` checked`)
		}
		b.WriteString(requiredAttr(f))
		b.WriteString(`> `)
		b.WriteString(template.HTMLEscapeString(option))
		b.WriteString(`</label>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func checkbox(f models.FormField, value string) template.HTML {
	label := f.Label
	if f.Description != nil && *f.Description != "" {
		label = *f.Description
	}

	var b strings.Builder
	b.WriteString(`<label><input type="checkbox" value="true"`)
	b.WriteString(attr("name", f.Key))
	b.WriteString(attr("id", f.Key))
	if value == "true" {
		b.WriteString(` checked`)
	}
	b.WriteString(requiredAttr(f))
	b.WriteString(`> `)
	b.WriteString(template.HTMLEscapeString(label))
	b.WriteString(`</label>`)
	return template.HTML(b.String())
}
