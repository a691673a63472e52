package validator

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/textcheck"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// All deadline comparisons happen in the platform's reference timezone.
var refZone = time.FixedZone("UTC+7", 7*60*60)

const deadlineLayout = "2006-01-02"

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidateJobTitle checks the job title: 10-120 characters, at least two
// letters, not gibberish.
func ValidateJobTitle(title string) (bool, []string) {
	var errs []string
	trimmed := strings.TrimSpace(title)

	// Character counts, not bytes: Vietnamese titles carry multi-byte
	// diacritics.
	if n := utf8.RuneCountInString(trimmed); n < 10 || n > 120 {
		errs = append(errs, "title must be between 10 and 120 characters")
	}
	if textcheck.CountLetters(trimmed) < 2 {
		errs = append(errs, "title must contain at least 2 letters")
	}
	if textcheck.IsGibberish(trimmed) {
		errs = append(errs, "title looks like placeholder or gibberish text")
	}

	return len(errs) == 0, errs
}

// ValidateJobOverview checks the free-text overview: length, letter count,
// gibberish and word repetition.
func ValidateJobOverview(overview string) (bool, []string) {
	var errs []string
	trimmed := strings.TrimSpace(overview)

	if utf8.RuneCountInString(trimmed) < 80 {
		errs = append(errs, "overview must be at least 80 characters")
	}
	if textcheck.CountLetters(trimmed) < 20 {
		errs = append(errs, "overview must contain at least 20 letters")
	}
	if textcheck.IsGibberish(trimmed) {
		errs = append(errs, "overview looks like placeholder or gibberish text")
	}
	if len(trimmed) > 0 && textcheck.UniqueWordRatio(trimmed) <= 0.5 {
		errs = append(errs, "overview repeats the same words too often")
	}

	return len(errs) == 0, errs
}

// ValidateTechnologyItems checks technology names across a flattened stack.
func ValidateTechnologyItems(items []domain.TechnologyItem) (bool, []string) {
	var errs []string

	for i, item := range items {
		name := strings.TrimSpace(item.Name)
		switch {
		case textcheck.IsPlaceholderToken(name):
			errs = append(errs, fmt.Sprintf("item %d: %q is not a real technology name", i+1, name))
		case len(name) < 2:
			errs = append(errs, fmt.Sprintf("item %d: technology name must be at least 2 characters", i+1))
		case textcheck.IsGibberish(name):
			errs = append(errs, fmt.Sprintf("item %d: technology name looks like gibberish", i+1))
		}
	}

	return len(errs) == 0, errs
}

// ValidateLanguageRequirements checks every entry of the ordered language
// list. A present certificate must carry both type and score.
func ValidateLanguageRequirements(reqs []domain.LanguageRequirement) (bool, []string) {
	var errs []string

	for i, req := range reqs {
		if strings.TrimSpace(req.Language) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: language is required", i+1))
		}
		if strings.TrimSpace(req.LanguageCode) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: language code is required", i+1))
		}
		if strings.TrimSpace(req.Proficiency) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: proficiency is required", i+1))
		}
		if req.Certificate != nil {
			if strings.TrimSpace(req.Certificate.Type) == "" {
				errs = append(errs, fmt.Sprintf("entry %d: certificate type is required", i+1))
			}
			if strings.TrimSpace(req.Certificate.Score) == "" {
				errs = append(errs, fmt.Sprintf("entry %d: certificate score is required", i+1))
			}
		}
	}

	return len(errs) == 0, errs
}

// ValidateSalary checks the salary block. Unparseable bounds count as 0
// rather than failing the parse itself.
func ValidateSalary(salary domain.SalaryInput) (bool, []string) {
	var errs []string

	min := numberToInt(salary.Min)
	max := numberToInt(salary.Max)

	if !salary.Negotiable {
		if min <= 0 {
			errs = append(errs, "minimum salary must be greater than 0")
		}
		if max <= 0 {
			errs = append(errs, "maximum salary must be greater than 0")
		}
		if min > 0 && max > 0 && max < min {
			errs = append(errs, "maximum salary must not be below minimum salary")
		}
	}

	if (min > 0 || max > 0) && strings.TrimSpace(salary.Currency) == "" {
		errs = append(errs, "currency is required when a salary range is set")
	}

	return len(errs) == 0, errs
}

// ValidateApplicationDeadline checks the deadline against the record status.
// An empty deadline is only an error for published jobs; a non-empty deadline
// must be strictly in the future (evaluated in UTC+7) when publishing.
func ValidateApplicationDeadline(deadline, status string, now time.Time) (bool, string) {
	trimmed := strings.TrimSpace(deadline)

	if trimmed == "" {
		if status == domain.StatusPublished {
			return false, "application deadline is required for published jobs"
		}
		return true, ""
	}

	parsed, err := time.ParseInLocation(deadlineLayout, trimmed, refZone)
	if err != nil {
		return false, "application deadline must be a valid date (YYYY-MM-DD)"
	}

	if status == domain.StatusPublished && !parsed.After(now.In(refZone)) {
		return false, "application deadline must be in the future"
	}

	return true, ""
}

// ValidateApplicationMethod checks the apply method and its method-specific
// required field.
func ValidateApplicationMethod(method, email, link string) (bool, []string) {
	var errs []string

	if !domain.IsValidApplyMethod(method) {
		return false, []string{"application method must be platform, email or link"}
	}

	switch method {
	case domain.ApplyEmail:
		if !emailRe.MatchString(strings.TrimSpace(email)) {
			errs = append(errs, "a valid application email is required")
		}
	case domain.ApplyLink:
		u, err := url.Parse(strings.TrimSpace(link))
		if err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, "a valid absolute application URL is required")
		}
	}

	return len(errs) == 0, errs
}

// numberToInt degrades unparseable bounds to 0 instead of erroring, so a
// malformed form input reads as "not set".
func numberToInt(n json.Number) int {
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}
