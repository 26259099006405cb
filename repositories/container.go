package repositories

type Repos struct {
	Form       FormRepo
	Submission SubmissionRepo
}

func New() *Repos {
	return &Repos{
		Form:       &DBFormRepo{},
		Submission: &DBSubmissionRepo{},
	}
}
