// Package enricher upgrades legacy job records into the AI-enhanced shape
// consumed by the matching engine. Every function here is total: no input
// record shape may cause a panic, because enrichment also runs over bulk
// historical data.
package enricher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Default weight vector applied when a record carries none. Part of the
// matching contract.
var defaultScoringWeights = domain.ScoringWeights{
	Required:       1.0,
	Preferred:      0.4,
	TechStack:      0.8,
	ExtractedCore:  1.0,
	ExtractedTools: 0.8,
}

// Seniority vocabulary scanned for in titles and overviews.
var seniorityKeywords = map[string]bool{
	"senior":      true,
	"lead":        true,
	"principal":   true,
	"staff":       true,
	"architect":   true,
	"head":        true,
	"expert":      true,
	"experienced": true,
	"manager":     true,
}

var yearsPatternRe = regexp.MustCompile(`(?i)\b([0-9]{1,2})\s*\+\s*years?\b`)

// FromLegacy wraps a legacy record and fills every enhanced-shape default.
func FromLegacy(legacy domain.LegacyJobRecord) domain.AIEnhancedJobRecord {
	return MigrateToAIEnhanced(domain.AIEnhancedJobRecord{LegacyJobRecord: legacy})
}

// MigrateToAIEnhanced back-fills defaults for every enhanced field that is
// absent. It never mutates its input and is idempotent: defaults only fill
// nil fields, so running it twice equals running it once.
func MigrateToAIEnhanced(job domain.AIEnhancedJobRecord) domain.AIEnhancedJobRecord {
	out := job

	if out.ExtractedSkills == nil {
		out.ExtractedSkills = &domain.ExtractedSkills{
			Core:   []string{},
			Tools:  []string{},
			Domain: []string{},
			Soft:   []string{},
		}
	}
	if out.ScoringWeights == nil {
		weights := defaultScoringWeights
		out.ScoringWeights = &weights
	}
	// ExtractionMetadata and JobTextForMatching stay nil until an extraction
	// or text build actually runs; nil is their documented default.

	// Language requirements already carry required=false unless previously
	// set; copy the slice so later marking never touches the input record.
	if len(out.LanguageRequirements) > 0 {
		reqs := make([]domain.LanguageRequirement, len(out.LanguageRequirements))
		copy(reqs, out.LanguageRequirements)
		out.LanguageRequirements = reqs
	}

	return out
}

// PopulateExperienceFromLegacy derives experience.min from the legacy
// minYearsExperience field. A pre-set non-nil min is never overwritten.
func PopulateExperienceFromLegacy(job domain.AIEnhancedJobRecord) domain.AIEnhancedJobRecord {
	out := job

	if out.Experience == nil {
		min := out.MinYearsExperience
		out.Experience = &domain.ExperienceRange{
			Min:              &min,
			SenioritySignals: []string{},
		}
		return out
	}

	exp := *out.Experience
	if exp.Min == nil {
		min := out.MinYearsExperience
		exp.Min = &min
	}
	out.Experience = &exp
	return out
}

// ExtractSenioritySignals scans the title and overview (title first) for
// seniority keywords and "N+ years" mentions, appending de-duplicated
// matches to experience.senioritySignals in order of first occurrence.
func ExtractSenioritySignals(job domain.AIEnhancedJobRecord) domain.AIEnhancedJobRecord {
	out := PopulateExperienceFromLegacy(job)

	exp := *out.Experience
	signals := append([]string{}, exp.SenioritySignals...)
	seen := make(map[string]bool, len(signals))
	for _, s := range signals {
		seen[s] = true
	}

	for _, text := range []string{out.Title, out.JobOverview} {
		for _, signal := range scanSeniority(text) {
			if seen[signal] {
				continue
			}
			seen[signal] = true
			signals = append(signals, signal)
		}
	}

	exp.SenioritySignals = signals
	out.Experience = &exp
	return out
}

// scanSeniority returns the seniority signals of one text in occurrence order.
func scanSeniority(text string) []string {
	lower := strings.ToLower(text)

	var signals []string
	seen := make(map[string]bool)
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	}) {
		if seniorityKeywords[word] && !seen[word] {
			seen[word] = true
			signals = append(signals, word)
		}
	}

	for _, match := range yearsPatternRe.FindAllStringSubmatch(lower, -1) {
		signal := match[1] + "+ years"
		if !seen[signal] {
			seen[signal] = true
			signals = append(signals, signal)
		}
	}

	return signals
}

// MarkRequiredLanguages flags a language as required when a certificate is
// attached. Already-required languages are left untouched.
func MarkRequiredLanguages(job domain.AIEnhancedJobRecord) domain.AIEnhancedJobRecord {
	out := job
	if len(out.LanguageRequirements) == 0 {
		return out
	}

	reqs := make([]domain.LanguageRequirement, len(out.LanguageRequirements))
	copy(reqs, out.LanguageRequirements)
	for i := range reqs {
		if reqs[i].Certificate != nil && !reqs[i].Required {
			reqs[i].Required = true
		}
	}
	out.LanguageRequirements = reqs
	return out
}

// GenerateJobTextForMatching builds the single text blob fed to the
// embedding service. Field order and separators are part of the matching
// contract: changing them silently changes downstream similarity scores.
func GenerateJobTextForMatching(job domain.AIEnhancedJobRecord) string {
	var lines []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			lines = append(lines, strings.TrimSpace(s))
		}
	}

	add(job.Title)
	add(job.CompanyName)
	add(job.JobOverview)
	for _, r := range job.Responsibilities {
		add(r)
	}
	for _, q := range job.Requirements.Required {
		add(q)
	}

	if job.ExtractedSkills != nil && len(job.ExtractedSkills.Core) > 0 {
		add("Core skills: " + strings.Join(job.ExtractedSkills.Core, ", "))
	} else if names := job.TechnologyStack.AllNames(); len(names) > 0 {
		add("Technologies: " + strings.Join(names, ", "))
	}

	if job.ExtractedSkills != nil && len(job.ExtractedSkills.Tools) > 0 {
		add("Tools: " + strings.Join(job.ExtractedSkills.Tools, ", "))
	}

	// Only the author's own phrasing appears in the blob; the structured
	// min/max stays a queryable index field.
	if job.Experience != nil && job.Experience.Raw != "" {
		add("Experience: " + job.Experience.Raw)
	}

	for _, req := range job.LanguageRequirements {
		if req.Language != "" {
			add(fmt.Sprintf("%s (%s)", req.Language, req.Proficiency))
		}
	}

	return strings.Join(lines, "\n")
}

// Enrich runs the full enrichment chain over a legacy record and stamps the
// matching text. This is what the worker applies to every consumed record.
func Enrich(legacy domain.LegacyJobRecord) domain.AIEnhancedJobRecord {
	job := FromLegacy(legacy)
	job = PopulateExperienceFromLegacy(job)
	job = ExtractSenioritySignals(job)
	job = MarkRequiredLanguages(job)

	text := GenerateJobTextForMatching(job)
	job.JobTextForMatching = &text

	return job
}

// HasAIEnhancements reports whether the record carries any enhanced fields.
func HasAIEnhancements(job domain.AIEnhancedJobRecord) bool {
	return job.ExtractedSkills != nil || job.ScoringWeights != nil
}

// HasExtractedSkills reports whether any skill category is non-empty.
func HasExtractedSkills(job domain.AIEnhancedJobRecord) bool {
	return job.ExtractedSkills != nil && !job.ExtractedSkills.IsEmpty()
}

// ValidateScoringWeights checks that every declared weight lies in [0, 1].
func ValidateScoringWeights(w domain.ScoringWeights) error {
	check := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("scoring weight %s out of range [0,1]: %g", name, v)
		}
		return nil
	}

	for _, pair := range []struct {
		name  string
		value float64
	}{
		{"required", w.Required},
		{"preferred", w.Preferred},
		{"techStack", w.TechStack},
		{"extractedCore", w.ExtractedCore},
		{"extractedTools", w.ExtractedTools},
	} {
		if err := check(pair.name, pair.value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateExperienceRange checks experience bounds: non-negative, min below
// max when both set, and neither above 50 years.
func ValidateExperienceRange(e domain.ExperienceRange) error {
	const maxYears = 50

	if e.Min != nil {
		if *e.Min < 0 {
			return fmt.Errorf("experience min must not be negative: %d", *e.Min)
		}
		if *e.Min > maxYears {
			return fmt.Errorf("experience min exceeds %d years: %d", maxYears, *e.Min)
		}
	}
	if e.Max != nil {
		if *e.Max < 0 {
			return fmt.Errorf("experience max must not be negative: %d", *e.Max)
		}
		if *e.Max > maxYears {
			return fmt.Errorf("experience max exceeds %d years: %d", maxYears, *e.Max)
		}
	}
	if e.Min != nil && e.Max != nil && *e.Min > *e.Max {
		return fmt.Errorf("experience min %d exceeds max %d", *e.Min, *e.Max)
	}
	return nil
}
