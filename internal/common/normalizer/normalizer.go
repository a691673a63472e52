// Package normalizer turns a raw HR-authored form into its canonical shape:
// trimmed text, upper-cased enums, de-duplicated lists, integer salary
// bounds. Every transform is deterministic, order-preserving and idempotent.
package normalizer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/cleaner"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Leading list markers authors paste in: "1. ", "2) ", "- ", "• ", "* ".
var listPrefixRe = regexp.MustCompile(`^\s*(?:[0-9]+[.)]|[-•*])\s+`)

// Normalizer normalizes job forms before validation and persistence.
type Normalizer struct {
	cleaner *cleaner.Cleaner
}

// New creates a normalizer with a strict markup cleaner.
func New() *Normalizer {
	return &Normalizer{cleaner: cleaner.New()}
}

// StripListPrefix removes a single leading list marker from an item.
func StripListPrefix(item string) string {
	return strings.TrimSpace(listPrefixRe.ReplaceAllString(item, ""))
}

// NormalizeStringArray strips list prefixes, drops empty results and
// de-duplicates case-insensitively, preserving first-seen order and the
// original casing of the first occurrence.
func NormalizeStringArray(items []string) []string {
	if items == nil {
		return nil
	}

	var out []string
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		stripped := StripListPrefix(strings.TrimSpace(item))
		if stripped == "" {
			continue
		}
		key := strings.ToLower(stripped)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, stripped)
	}
	return out
}

// DedupTechnologyItems drops empty-named items and de-duplicates on the
// lower-cased name, preserving first-seen order.
func DedupTechnologyItems(items []domain.TechnologyItem) []domain.TechnologyItem {
	if items == nil {
		return nil
	}

	var out []domain.TechnologyItem
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			continue
		}
		key := strings.ToLower(item.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		item.Proficiency = strings.ToUpper(strings.TrimSpace(item.Proficiency))
		item.Certificate = strings.TrimSpace(item.Certificate)
		out = append(out, item)
	}
	return out
}

// NormalizeEnum upper-cases an enum value; the empty string passes through.
func NormalizeEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeSalary coerces string-typed bounds to integers. Unparseable
// bounds become 0 so malformed input degrades instead of failing.
func NormalizeSalary(salary domain.SalaryInput) domain.SalaryInput {
	return domain.SalaryInput{
		Min:        json.Number(strconv.Itoa(numberToInt(salary.Min))),
		Max:        json.Number(strconv.Itoa(numberToInt(salary.Max))),
		Currency:   NormalizeEnum(salary.Currency),
		Negotiable: salary.Negotiable,
	}
}

// NormalizeJobForm is the composition entry point: it returns a normalized
// copy of the form and never mutates its input.
func (n *Normalizer) NormalizeJobForm(form domain.JobForm) domain.JobForm {
	out := form

	out.Title = n.cleaner.CleanText(form.Title)
	out.CompanyName = n.cleaner.CleanText(form.CompanyName)
	out.JobOverview = n.cleaner.CleanText(form.JobOverview)
	out.WorkingTime = n.cleaner.CleanText(form.WorkingTime)

	out.JobLevel = NormalizeEnum(form.JobLevel)
	out.EmploymentType = NormalizeEnum(form.EmploymentType)
	out.EducationLevel = NormalizeEnum(form.EducationLevel)
	out.WorkMode = NormalizeEnum(form.WorkMode)
	out.ApplyMethod = NormalizeEnum(form.ApplyMethod)
	out.JobStatus = NormalizeEnum(form.JobStatus)

	out.Responsibilities = NormalizeStringArray(n.cleaner.CleanAll(form.Responsibilities))
	out.RequiredQualifications = NormalizeStringArray(n.cleaner.CleanAll(form.RequiredQualifications))
	out.PreferredQualifications = NormalizeStringArray(n.cleaner.CleanAll(form.PreferredQualifications))

	out.TechnologyStack = domain.TechnologyStack{
		Languages:  DedupTechnologyItems(form.TechnologyStack.Languages),
		Frameworks: DedupTechnologyItems(form.TechnologyStack.Frameworks),
		Databases:  DedupTechnologyItems(form.TechnologyStack.Databases),
		Tools:      DedupTechnologyItems(form.TechnologyStack.Tools),
	}

	out.Benefits = domain.BenefitSelection{
		IDs:    NormalizeStringArray(form.Benefits.IDs),
		Custom: NormalizeStringArray(n.cleaner.CleanAll(form.Benefits.Custom)),
	}

	out.Salary = NormalizeSalary(form.Salary)
	out.LanguageRequirements = normalizeLanguageRequirements(form.LanguageRequirements)

	out.Location = domain.LocationInfo{
		FullAddress: strings.TrimSpace(form.Location.FullAddress),
		Street:      strings.TrimSpace(form.Location.Street),
		District:    strings.TrimSpace(form.Location.District),
		Province:    strings.TrimSpace(form.Location.Province),
		Country:     strings.TrimSpace(form.Location.Country),
	}

	if form.Occupation != nil {
		occ := domain.TaxonomyRef{
			Code:  strings.TrimSpace(form.Occupation.Code),
			Label: strings.TrimSpace(form.Occupation.Label),
		}
		out.Occupation = &occ
	}
	out.Industries = dedupTaxonomyRefs(form.Industries)

	out.ApplyEmail = strings.TrimSpace(form.ApplyEmail)
	out.ApplyLink = strings.TrimSpace(form.ApplyLink)
	out.ApplicationDeadline = strings.TrimSpace(form.ApplicationDeadline)

	return out
}

// normalizeLanguageRequirements trims every sub-field of every entry,
// including the optional certificate.
func normalizeLanguageRequirements(reqs []domain.LanguageRequirement) []domain.LanguageRequirement {
	if reqs == nil {
		return nil
	}

	out := make([]domain.LanguageRequirement, len(reqs))
	for i, req := range reqs {
		req.Language = strings.TrimSpace(req.Language)
		req.LanguageCode = strings.ToLower(strings.TrimSpace(req.LanguageCode))
		req.Proficiency = NormalizeEnum(req.Proficiency)
		if req.Certificate != nil {
			cert := domain.LanguageCertificate{
				Type:  strings.TrimSpace(req.Certificate.Type),
				Score: strings.TrimSpace(req.Certificate.Score),
			}
			req.Certificate = &cert
		}
		out[i] = req
	}
	return out
}

// dedupTaxonomyRefs de-duplicates industry selections on their code.
func dedupTaxonomyRefs(refs []domain.TaxonomyRef) []domain.TaxonomyRef {
	if refs == nil {
		return nil
	}

	var out []domain.TaxonomyRef
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		ref.Code = strings.TrimSpace(ref.Code)
		ref.Label = strings.TrimSpace(ref.Label)
		if ref.Code == "" {
			continue
		}
		if seen[ref.Code] {
			continue
		}
		seen[ref.Code] = true
		out = append(out, ref)
	}
	return out
}

func numberToInt(n json.Number) int {
	if n == "" {
		return 0
	}
	if i, err := strconv.Atoi(string(n)); err == nil {
		return i
	}
	// Form inputs sometimes carry decimal strings ("15.0").
	if f, err := n.Float64(); err == nil {
		return int(f)
	}
	return 0
}
