package validator

import (
	"strings"
	"time"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Minimum list sizes and item lengths for the bullet-list fields.
const (
	minResponsibilities  = 3
	minRequiredQuals     = 2
	responsibilityMinLen = 20
	qualificationMinLen  = 15
)

// Result is the aggregate verdict for a form. Errors block persistence of a
// published record; Warnings are advisory and never affect Valid.
type Result struct {
	Valid    bool                `json:"valid"`
	Errors   map[string][]string `json:"errors"`
	Warnings map[string][]string `json:"warnings"`
}

// ValidateJobForm runs every field validator against the form, using the
// current time for deadline checks.
func ValidateJobForm(form domain.JobForm) Result {
	return ValidateJobFormAt(form, time.Now())
}

// ValidateJobFormAt is ValidateJobForm with an injectable clock.
func ValidateJobFormAt(form domain.JobForm, now time.Time) Result {
	errors := make(map[string][]string)
	warnings := make(map[string][]string)

	if ok, errs := ValidateJobTitle(form.Title); !ok {
		errors["title"] = errs
	}

	if strings.TrimSpace(form.CompanyName) == "" {
		errors["companyName"] = []string{"company name is required"}
	}

	if form.Occupation == nil || strings.TrimSpace(form.Occupation.Code) == "" {
		errors["occupation"] = []string{"occupation is required"}
	}

	if ok, errs := ValidateJobOverview(form.JobOverview); !ok {
		errors["jobOverview"] = errs
	}

	if ok, errs := ValidateBulletList(form.Responsibilities, minResponsibilities, responsibilityMinLen); !ok {
		errors["responsibilities"] = errs
	}

	if ok, errs := ValidateBulletList(form.RequiredQualifications, minRequiredQuals, qualificationMinLen); !ok {
		errors["requiredQualifications"] = errs
	}

	// Preferred qualifications are optional, but listed items still have to
	// be meaningful.
	if ok, errs := ValidateBulletList(form.PreferredQualifications, 0, qualificationMinLen); !ok {
		errors["preferredQualifications"] = errs
	}

	if form.TechnologyStack.TotalItems() == 0 {
		warnings["technologyStack"] = []string{"adding a technology stack helps candidates judge fit"}
	} else {
		var items []domain.TechnologyItem
		items = append(items, form.TechnologyStack.Languages...)
		items = append(items, form.TechnologyStack.Frameworks...)
		items = append(items, form.TechnologyStack.Databases...)
		items = append(items, form.TechnologyStack.Tools...)
		if ok, errs := ValidateTechnologyItems(items); !ok {
			errors["technologyStack"] = errs
		}
	}

	if ok, errs := ValidateLanguageRequirements(form.LanguageRequirements); !ok {
		errors["languageRequirements"] = errs
	}

	if ok, errs := ValidateSalary(form.Salary); !ok {
		errors["salary"] = errs
	}

	if ok, msg := ValidateApplicationDeadline(form.ApplicationDeadline, form.JobStatus, now); !ok {
		errors["applicationDeadline"] = []string{msg}
	}

	if ok, errs := ValidateApplicationMethod(form.ApplyMethod, form.ApplyEmail, form.ApplyLink); !ok {
		errors["applyMethod"] = errs
	}

	if form.NumberOfHires < 1 {
		errors["numberOfHires"] = []string{"number of hires must be at least 1"}
	}

	if form.RequiredExperience < 0 {
		errors["requiredExperience"] = []string{"required experience must not be negative"}
	}

	return Result{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
