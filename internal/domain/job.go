package domain

import (
	"encoding/json"
	"time"
)

// JobForm is the HR-authored draft exactly as the authoring UI submits it.
// Free-text fields are untrusted and unnormalized; salary bounds may arrive
// as string-typed form inputs.
type JobForm struct {
	Title                   string                `json:"title"`
	CompanyName             string                `json:"companyName"`
	Occupation              *TaxonomyRef          `json:"occupation"`
	Industries              []TaxonomyRef         `json:"industries"`
	JobLevel                string                `json:"jobLevel"`
	EmploymentType          string                `json:"employmentType"`
	RequiredExperience      int                   `json:"requiredExperience"` // years
	EducationLevel          string                `json:"educationLevel"`
	LanguageRequirements    []LanguageRequirement `json:"languageRequirements"`
	WorkMode                string                `json:"workMode"`
	Location                LocationInfo          `json:"location"`
	Salary                  SalaryInput           `json:"salary"`
	JobOverview             string                `json:"jobOverview"`
	Responsibilities        []string              `json:"responsibilities"`
	RequiredQualifications  []string              `json:"requiredQualifications"`
	PreferredQualifications []string              `json:"preferredQualifications"`
	TechnologyStack         TechnologyStack       `json:"technologyStack"`
	Benefits                BenefitSelection      `json:"benefits"`
	WorkingTime             string                `json:"workingTime"`
	ApplicationDeadline     string                `json:"applicationDeadline"` // YYYY-MM-DD
	NumberOfHires           int                   `json:"numberOfHires"`
	ApplyMethod             string                `json:"applyMethod"`
	ApplyEmail              string                `json:"applyEmail"`
	ApplyLink               string                `json:"applyLink"`
	JobStatus               string                `json:"jobStatus"`
}

// TaxonomyRef is a resolved selection from one of the taxonomy searches.
type TaxonomyRef struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// LocationInfo holds job location details.
type LocationInfo struct {
	FullAddress string `json:"fullAddress"`
	Street      string `json:"street"`
	District    string `json:"district"`
	Province    string `json:"province"`
	Country     string `json:"country"`
}

// SalaryInput is the raw salary block from the form. Min and Max use
// json.Number because the UI sends either numbers or string-typed inputs.
type SalaryInput struct {
	Min        json.Number `json:"min"`
	Max        json.Number `json:"max"`
	Currency   string      `json:"currency"`
	Negotiable bool        `json:"negotiable"`
}

// SalaryRange is the canonical salary block on persisted records.
type SalaryRange struct {
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	Currency   string `json:"currency"`
	Negotiable bool   `json:"negotiable"`
}

// LanguageRequirement is one entry of the ordered language list. Required is
// only meaningful on AI-enhanced records; on forms and legacy records it
// defaults to false.
type LanguageRequirement struct {
	Language     string               `json:"language"`
	LanguageCode string               `json:"languageCode"`
	Proficiency  string               `json:"proficiency"`
	Certificate  *LanguageCertificate `json:"certificate,omitempty"`
	Required     bool                 `json:"required"`
}

// LanguageCertificate is an optional attached certificate (e.g. IELTS 6.5).
type LanguageCertificate struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

// TechnologyStack groups technology items into the four fixed buckets.
type TechnologyStack struct {
	Languages  []TechnologyItem `json:"languages"`
	Frameworks []TechnologyItem `json:"frameworks"`
	Databases  []TechnologyItem `json:"databases"`
	Tools      []TechnologyItem `json:"tools"`
}

// TechnologyItem is a single named technology with optional metadata.
type TechnologyItem struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
	Certificate string `json:"certificate,omitempty"`
}

// TotalItems counts items across all four buckets.
func (s TechnologyStack) TotalItems() int {
	return len(s.Languages) + len(s.Frameworks) + len(s.Databases) + len(s.Tools)
}

// AllNames flattens the four buckets into one name list, bucket order preserved.
func (s TechnologyStack) AllNames() []string {
	var names []string
	for _, bucket := range [][]TechnologyItem{s.Languages, s.Frameworks, s.Databases, s.Tools} {
		for _, item := range bucket {
			names = append(names, item.Name)
		}
	}
	return names
}

// BenefitSelection combines predefined benefit ids with custom free-text entries.
type BenefitSelection struct {
	IDs    []string `json:"ids"`
	Custom []string `json:"custom"`
}

// Count returns the total number of selected benefits.
func (b BenefitSelection) Count() int {
	return len(b.IDs) + len(b.Custom)
}

// Requirements splits qualifications into required and preferred lists.
type Requirements struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// RecordMetadata carries persistence timestamps.
type RecordMetadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LegacyJobRecord is the persisted record shape: a normalized superset of
// JobForm with canonical field names.
type LegacyJobRecord struct {
	ID                   string                `json:"id"`
	Title                string                `json:"title"`
	CompanyName          string                `json:"companyName"`
	Occupation           *TaxonomyRef          `json:"occupation"`
	Industries           []TaxonomyRef         `json:"industries"`
	JobLevel             string                `json:"jobLevel"`
	EmploymentType       string                `json:"employmentType"`
	MinYearsExperience   int                   `json:"minYearsExperience"`
	EducationLevel       string                `json:"educationLevel"`
	LanguageRequirements []LanguageRequirement `json:"languageRequirements"`
	WorkMode             string                `json:"workMode"`
	LocationDetails      LocationInfo          `json:"locationDetails"`
	Salary               SalaryRange           `json:"salary"`
	JobOverview          string                `json:"jobOverview"`
	Responsibilities     []string              `json:"responsibilities"`
	Requirements         Requirements          `json:"requirements"`
	TechnologyStack      TechnologyStack       `json:"technologyStack"`
	Benefits             BenefitSelection      `json:"benefits"`
	WorkingTime          string                `json:"workingTime"`
	ApplicationDeadline  string                `json:"applicationDeadline"`
	NumberOfHires        int                   `json:"numberOfHires"`
	ApplyMethod          string                `json:"applyMethod"`
	ApplyEmail           string                `json:"applyEmail,omitempty"`
	ApplyLink            string                `json:"applyLink,omitempty"`
	Status               string                `json:"status"`
	Metadata             RecordMetadata        `json:"metadata"`
}

// ExperienceRange is the derived experience block on enhanced records.
type ExperienceRange struct {
	Min              *int     `json:"min"`
	Max              *int     `json:"max"`
	Raw              string   `json:"raw,omitempty"`
	SenioritySignals []string `json:"senioritySignals"`
}

// ExtractedSkills holds skills pulled out of free text, grouped by kind.
type ExtractedSkills struct {
	Core     []string            `json:"core"`
	Tools    []string            `json:"tools"`
	Domain   []string            `json:"domain"`
	Soft     []string            `json:"soft"`
	Synonyms map[string][]string `json:"synonyms,omitempty"`
	Source   string              `json:"source,omitempty"`
}

// IsEmpty reports whether all four skill categories are empty.
func (s ExtractedSkills) IsEmpty() bool {
	return len(s.Core) == 0 && len(s.Tools) == 0 && len(s.Domain) == 0 && len(s.Soft) == 0
}

// ScoringWeights are the per-signal weights the matching engine applies.
type ScoringWeights struct {
	Required       float64 `json:"required"`
	Preferred      float64 `json:"preferred"`
	TechStack      float64 `json:"techStack"`
	ExtractedCore  float64 `json:"extractedCore"`
	ExtractedTools float64 `json:"extractedTools"`
}

// ExtractionMetadata describes how extractedSkills were produced.
type ExtractionMetadata struct {
	Source      string    `json:"source"`
	Version     string    `json:"version"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// AIEnhancedJobRecord is the derived, AI-matchable record. It is regenerated
// from its legacy source and never hand-edited.
type AIEnhancedJobRecord struct {
	LegacyJobRecord

	Experience         *ExperienceRange    `json:"experience,omitempty"`
	ExtractedSkills    *ExtractedSkills    `json:"extractedSkills,omitempty"`
	ScoringWeights     *ScoringWeights     `json:"scoringWeights,omitempty"`
	ExtractionMetadata *ExtractionMetadata `json:"extractionMetadata"`
	JobTextForMatching *string             `json:"jobTextForMatching"`
}

// BuildLegacyRecord converts a normalized form into the persisted record shape.
func BuildLegacyRecord(form JobForm, id string, now time.Time) LegacyJobRecord {
	min, _ := form.Salary.Min.Int64()
	max, _ := form.Salary.Max.Int64()

	return LegacyJobRecord{
		ID:                   id,
		Title:                form.Title,
		CompanyName:          form.CompanyName,
		Occupation:           form.Occupation,
		Industries:           form.Industries,
		JobLevel:             form.JobLevel,
		EmploymentType:       form.EmploymentType,
		MinYearsExperience:   form.RequiredExperience,
		EducationLevel:       form.EducationLevel,
		LanguageRequirements: form.LanguageRequirements,
		WorkMode:             form.WorkMode,
		LocationDetails:      form.Location,
		Salary: SalaryRange{
			Min:        int(min),
			Max:        int(max),
			Currency:   form.Salary.Currency,
			Negotiable: form.Salary.Negotiable,
		},
		JobOverview:      form.JobOverview,
		Responsibilities: form.Responsibilities,
		Requirements: Requirements{
			Required:  form.RequiredQualifications,
			Preferred: form.PreferredQualifications,
		},
		TechnologyStack:     form.TechnologyStack,
		Benefits:            form.Benefits,
		WorkingTime:         form.WorkingTime,
		ApplicationDeadline: form.ApplicationDeadline,
		NumberOfHires:       form.NumberOfHires,
		ApplyMethod:         form.ApplyMethod,
		ApplyEmail:          form.ApplyEmail,
		ApplyLink:           form.ApplyLink,
		Status:              form.JobStatus,
		Metadata: RecordMetadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
