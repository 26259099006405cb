package services

import "github.com/hallopetra/formbuilder-go/repositories"

type Services struct {
	Auth       *AuthService
	Form       *FormService
	Submission *SubmissionService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Auth:       NewAuthService(),
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos),
	}
}
