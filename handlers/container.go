package handlers

import "github.com/hallopetra/formbuilder-go/services"

type Handlers struct {
	Auth       *AuthHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Public     *PublicHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Form:       NewFormHandler(svc.Form),
		Submission: NewSubmissionHandler(svc.Submission),
		Public:     NewPublicHandler(svc.Form, svc.Submission),
	}
}
