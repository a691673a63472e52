package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

func TestValidateBulletItem(t *testing.T) {
	ok, msg := ValidateBulletItem("Short", 20)
	if ok {
		t.Fatal("expected short item to be invalid")
	}
	if !strings.Contains(msg, "at least 20 characters") {
		t.Errorf("expected length message, got %q", msg)
	}

	// Long enough but too few letters: the letter rule fires, not the
	// symbols rule.
	ok, msg = ValidateBulletItem("12345678901234567890 - 123", 20)
	if ok {
		t.Fatal("expected numeric item to be invalid")
	}
	if msg != "must contain meaningful text" {
		t.Errorf("expected letter-count message, got %q", msg)
	}

	ok, msg = ValidateBulletItem("Design and maintain backend APIs", 20)
	if !ok {
		t.Errorf("expected valid item, got error %q", msg)
	}
}

func TestValidateBulletList(t *testing.T) {
	items := []string{"Design and maintain backend APIs", "x"}
	ok, errs := ValidateBulletList(items, 3, 20)
	if ok {
		t.Fatal("expected list to be invalid")
	}
	// One count-shortfall message plus one for the failing second item.
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[1], "item 2:") {
		t.Errorf("expected 1-indexed item message, got %q", errs[1])
	}
}

func TestValidateJobTitle(t *testing.T) {
	if ok, _ := ValidateJobTitle("123456789012"); ok {
		t.Error("expected all-digit title to be rejected")
	}
	if ok, errs := ValidateJobTitle("Senior Backend Developer"); !ok {
		t.Errorf("expected title to be accepted, got %v", errs)
	}
	if ok, _ := ValidateJobTitle("Too short"); ok {
		t.Error("expected 9-character title to be rejected")
	}
}

func TestValidateJobTitleCountsRunes(t *testing.T) {
	// 9 characters but 12 bytes; the minimum is per character.
	if ok, errs := ValidateJobTitle("Lập trình"); ok || len(errs) == 0 {
		t.Error("expected 9-character accented title to be rejected")
	}

	if ok, errs := ValidateJobTitle("Lập trình viên Java"); !ok {
		t.Errorf("expected accented title to be accepted, got %v", errs)
	}

	// 119 characters, well over 120 bytes.
	long := strings.TrimSpace(strings.Repeat("Lập trình viên phần mềm ", 5))
	if ok, errs := ValidateJobTitle(long); !ok {
		t.Errorf("expected long accented title under the character cap to pass, got %v", errs)
	}
}

func TestValidateBulletItemCountsRunes(t *testing.T) {
	// 18 characters but 25 bytes.
	ok, msg := ValidateBulletItem("Lập trình hệ thống", 20)
	if ok {
		t.Fatal("expected 18-character accented item to fail the 20-character minimum")
	}
	if !strings.Contains(msg, "at least 20 characters") {
		t.Errorf("expected length message, got %q", msg)
	}
}

func TestValidateJobOverview(t *testing.T) {
	repeated := strings.TrimSpace(strings.Repeat("test ", 17))
	if ok, _ := ValidateJobOverview(repeated); ok {
		t.Error("expected repetitive overview to be rejected")
	}

	good := "We are building the payments backbone for Vietnamese marketplaces and need an engineer who enjoys owning services end to end."
	if ok, errs := ValidateJobOverview(good); !ok {
		t.Errorf("expected overview to be accepted, got %v", errs)
	}
}

func TestValidateSalary(t *testing.T) {
	ok, errs := ValidateSalary(domain.SalaryInput{Min: "20000000", Max: "10000000", Currency: "VND"})
	if ok {
		t.Fatal("expected inverted range to be invalid")
	}
	if len(errs) != 1 {
		t.Errorf("expected exactly the max-below-min error, got %v", errs)
	}

	if ok, _ := ValidateSalary(domain.SalaryInput{Min: "10", Max: "20"}); ok {
		t.Error("expected missing currency to be invalid")
	}

	if ok, errs := ValidateSalary(domain.SalaryInput{Negotiable: true}); !ok {
		t.Errorf("expected negotiable salary with no bounds to be valid, got %v", errs)
	}

	// Unparseable bounds degrade to 0 and trip the >0 rules.
	if ok, _ := ValidateSalary(domain.SalaryInput{Min: "abc", Max: "def", Currency: "VND"}); ok {
		t.Error("expected unparseable bounds to be invalid")
	}
}

func TestValidateApplicationDeadline(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	yesterday := "2026-03-09"
	if ok, _ := ValidateApplicationDeadline(yesterday, domain.StatusPublished, now); ok {
		t.Error("expected past deadline to fail for published job")
	}
	if ok, msg := ValidateApplicationDeadline(yesterday, domain.StatusDraft, now); !ok {
		t.Errorf("expected past deadline to pass for draft, got %q", msg)
	}

	if ok, _ := ValidateApplicationDeadline("", domain.StatusPublished, now); ok {
		t.Error("expected empty deadline to fail for published job")
	}
	if ok, _ := ValidateApplicationDeadline("", domain.StatusDraft, now); !ok {
		t.Error("expected empty deadline to pass for draft")
	}

	if ok, msg := ValidateApplicationDeadline("2026-03-15", domain.StatusPublished, now); !ok {
		t.Errorf("expected future deadline to pass, got %q", msg)
	}

	if ok, _ := ValidateApplicationDeadline("15/03/2026", domain.StatusPublished, now); ok {
		t.Error("expected malformed date to fail")
	}
}

func TestValidateApplicationMethod(t *testing.T) {
	if ok, _ := ValidateApplicationMethod(domain.ApplyEmail, "not-an-email", ""); ok {
		t.Error("expected invalid email to fail")
	}
	if ok, errs := ValidateApplicationMethod(domain.ApplyEmail, "hr@company.vn", ""); !ok {
		t.Errorf("expected valid email to pass, got %v", errs)
	}
	if ok, _ := ValidateApplicationMethod(domain.ApplyLink, "", "careers/apply"); ok {
		t.Error("expected relative URL to fail")
	}
	if ok, errs := ValidateApplicationMethod(domain.ApplyLink, "", "https://careers.company.vn/apply"); !ok {
		t.Errorf("expected absolute URL to pass, got %v", errs)
	}
	if ok, errs := ValidateApplicationMethod(domain.ApplyPlatform, "", ""); !ok {
		t.Errorf("expected platform method to pass, got %v", errs)
	}
	if ok, _ := ValidateApplicationMethod("FAX", "", ""); ok {
		t.Error("expected unknown method to fail")
	}
}

func TestValidateLanguageRequirements(t *testing.T) {
	reqs := []domain.LanguageRequirement{
		{Language: "English", LanguageCode: "en", Proficiency: "ADVANCED"},
		{Language: "Japanese", LanguageCode: "ja", Proficiency: "INTERMEDIATE",
			Certificate: &domain.LanguageCertificate{Type: "JLPT", Score: ""}},
	}
	ok, errs := ValidateLanguageRequirements(reqs)
	if ok {
		t.Fatal("expected missing certificate score to fail")
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "entry 2") {
		t.Errorf("expected one error for entry 2, got %v", errs)
	}
}

func TestValidateJobFormWarningsDoNotBlock(t *testing.T) {
	form := validForm()
	form.TechnologyStack = domain.TechnologyStack{}

	res := ValidateJobFormAt(form, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	if !res.Valid {
		t.Fatalf("expected form to be valid, errors: %v", res.Errors)
	}
	if len(res.Warnings["technologyStack"]) == 0 {
		t.Error("expected empty tech stack to produce a warning")
	}
}

func TestValidateJobFormBlocksOnErrors(t *testing.T) {
	form := validForm()
	form.Occupation = nil

	res := ValidateJobFormAt(form, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	if res.Valid {
		t.Fatal("expected form without occupation to be invalid")
	}
	if len(res.Errors["occupation"]) == 0 {
		t.Error("expected occupation error to be keyed by field")
	}
}

// validForm builds a form that passes every validator as of 2026-03-10.
func validForm() domain.JobForm {
	return domain.JobForm{
		Title:          "Senior Backend Developer",
		CompanyName:    "Match Made AI",
		Occupation:     &domain.TaxonomyRef{Code: "2512", Label: "Software Developer"},
		JobLevel:       domain.LevelSenior,
		EmploymentType: domain.EmploymentFullTime,
		WorkMode:       domain.WorkModeHybrid,
		Location:       domain.LocationInfo{Province: "Hồ Chí Minh", Country: "Vietnam"},
		Salary:         domain.SalaryInput{Min: "25000000", Max: "45000000", Currency: "VND"},
		JobOverview:    "We are building the payments backbone for Vietnamese marketplaces and need an engineer who enjoys owning services end to end.",
		Responsibilities: []string{
			"Design and maintain backend APIs for payment flows",
			"Own the reliability of settlement batch processing",
			"Review designs and mentor junior engineers on the team",
		},
		RequiredQualifications: []string{
			"Three years building production Go services",
			"Solid understanding of relational databases",
		},
		TechnologyStack: domain.TechnologyStack{
			Languages: []domain.TechnologyItem{{Name: "Go"}},
			Databases: []domain.TechnologyItem{{Name: "PostgreSQL"}},
		},
		ApplicationDeadline: "2026-04-01",
		NumberOfHires:       1,
		ApplyMethod:         domain.ApplyPlatform,
		JobStatus:           domain.StatusPublished,
	}
}
