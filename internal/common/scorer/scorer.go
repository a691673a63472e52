// Package scorer computes an advisory 0-100 quality score for a job form.
// It never rejects input and is independent of validation: an invalid form
// can still score well and vice versa.
package scorer

import (
	"math"
	"strings"

	"github.com/zafkielzz/match-made-ai-pipeline/internal/common/textcheck"
	"github.com/zafkielzz/match-made-ai-pipeline/internal/domain"
)

// Category maximums. They sum to 100 but the total is still normalized
// against the sum so the categories can be retuned independently.
const (
	maxBasicInfo        = 15
	maxOverview         = 20
	maxResponsibilities = 15
	maxRequirements     = 15
	maxTechStack        = 15
	maxLanguages        = 10
	maxCompensation     = 10
)

// Banner thresholds and wording are part of the contract with the authoring
// UI; do not reword without coordinating.
const (
	bannerLow        = "Low quality: this posting needs significant improvement before publishing"
	bannerAcceptable = "Acceptable quality: fill in the weaker sections to attract more candidates"
	bannerGood       = "Good quality: a few refinements would make this posting stand out"
	bannerExcellent  = "Excellent quality: this posting is ready to publish"
)

// CategoryScore is one row of the quality breakdown.
type CategoryScore struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// QualityReport is the full advisory scoring result.
type QualityReport struct {
	TotalScore         int             `json:"totalScore"`
	Breakdown          []CategoryScore `json:"breakdown"`
	OverallSuggestions []string        `json:"overallSuggestions"`
}

// CalculateQualityScore scores a form across seven capped categories and
// returns the weighted total with a per-category breakdown.
func CalculateQualityScore(form domain.JobForm) QualityReport {
	breakdown := []CategoryScore{
		scoreBasicInfo(form),
		scoreOverview(form.JobOverview),
		scoreResponsibilities(form.Responsibilities),
		scoreRequirements(form.RequiredQualifications, form.PreferredQualifications),
		scoreTechStack(form.TechnologyStack),
		scoreLanguages(form.LanguageRequirements),
		scoreCompensation(form.Salary, form.Benefits),
	}

	sum, max := 0, 0
	for _, cat := range breakdown {
		sum += cat.Score
		max += cat.MaxScore
	}

	total := 0
	if max > 0 {
		total = int(math.Round(100 * float64(sum) / float64(max)))
	}

	return QualityReport{
		TotalScore:         total,
		Breakdown:          breakdown,
		OverallSuggestions: []string{bannerFor(total)},
	}
}

func bannerFor(total int) string {
	switch {
	case total < 50:
		return bannerLow
	case total < 70:
		return bannerAcceptable
	case total < 85:
		return bannerGood
	default:
		return bannerExcellent
	}
}

func scoreBasicInfo(form domain.JobForm) CategoryScore {
	cat := CategoryScore{Name: "Basic Information", MaxScore: maxBasicInfo}

	titleLen := len(strings.TrimSpace(form.Title))
	if titleLen >= 10 && titleLen <= 120 {
		cat.Score += 3
	} else {
		cat.Suggestions = append(cat.Suggestions, "use a descriptive title between 10 and 120 characters")
	}
	if strings.TrimSpace(form.CompanyName) != "" {
		cat.Score += 2
	}
	if form.Occupation != nil && form.Occupation.Code != "" {
		cat.Score += 3
	} else {
		cat.Suggestions = append(cat.Suggestions, "select an occupation so matching can classify the role")
	}
	if form.JobLevel != "" {
		cat.Score += 2
	}
	if form.WorkMode != "" {
		cat.Score += 2
	}
	if form.Location.Province != "" || form.Location.FullAddress != "" {
		cat.Score += 3
	} else {
		cat.Suggestions = append(cat.Suggestions, "add a work location")
	}

	return cat
}

func scoreOverview(overview string) CategoryScore {
	cat := CategoryScore{Name: "Job Overview", MaxScore: maxOverview}

	richness := textRichness(overview)
	cat.Score = int(math.Round(float64(maxOverview) * richness / 100))

	if richness < 60 {
		cat.Suggestions = append(cat.Suggestions, "expand the overview: describe the team, the product and the day-to-day work")
	}

	return cat
}

// textRichness blends three sub-scores: length ratio (35), word count (35)
// and vocabulary diversity (30). Each sub-score is capped independently, so
// the blend does not always reach 100 even for long texts; the per-branch
// arithmetic is deliberate.
func textRichness(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	const (
		idealLength = 600.0
		idealWords  = 100.0
	)

	lengthScore := math.Min(35, 35*float64(len(trimmed))/idealLength)
	wordScore := math.Min(35, 35*float64(len(strings.Fields(trimmed)))/idealWords)
	diversityScore := 30 * textcheck.UniqueWordRatio(trimmed)

	return math.Min(100, lengthScore+wordScore+diversityScore)
}

func scoreResponsibilities(items []string) CategoryScore {
	cat := CategoryScore{Name: "Responsibilities", MaxScore: maxResponsibilities}

	switch {
	case len(items) >= 5:
		cat.Score = 15
	case len(items) >= 3:
		cat.Score = 10
	case len(items) >= 1:
		cat.Score = 5
	}

	if len(items) < 5 {
		cat.Suggestions = append(cat.Suggestions, "list at least 5 concrete responsibilities")
	}

	return cat
}

func scoreRequirements(required, preferred []string) CategoryScore {
	cat := CategoryScore{Name: "Requirements", MaxScore: maxRequirements}

	switch {
	case len(required) >= 4:
		cat.Score += 10
	case len(required) >= 2:
		cat.Score += 7
	case len(required) >= 1:
		cat.Score += 4
	}

	switch {
	case len(preferred) >= 3:
		cat.Score += 5
	case len(preferred) >= 1:
		cat.Score += 3
	}

	if len(required) < 4 {
		cat.Suggestions = append(cat.Suggestions, "list at least 4 required qualifications")
	}
	if len(preferred) == 0 {
		cat.Suggestions = append(cat.Suggestions, "preferred qualifications help candidates self-select")
	}

	return cat
}

func scoreTechStack(stack domain.TechnologyStack) CategoryScore {
	cat := CategoryScore{Name: "Technology Stack", MaxScore: maxTechStack}

	switch total := stack.TotalItems(); {
	case total >= 8:
		cat.Score = 15
	case total >= 5:
		cat.Score = 12
	case total >= 3:
		cat.Score = 9
	case total >= 1:
		cat.Score = 5
	default:
		cat.Suggestions = append(cat.Suggestions, "add the technologies used on this team")
	}

	return cat
}

func scoreLanguages(reqs []domain.LanguageRequirement) CategoryScore {
	cat := CategoryScore{Name: "Language Requirements", MaxScore: maxLanguages}

	switch {
	case len(reqs) >= 2:
		cat.Score = 10
	case len(reqs) == 1:
		cat.Score = 7
	default:
		cat.Suggestions = append(cat.Suggestions, "state the working languages for the role")
		return cat
	}

	hasCertificate := false
	for _, req := range reqs {
		if req.Certificate != nil {
			hasCertificate = true
			break
		}
	}
	if !hasCertificate {
		cat.Suggestions = append(cat.Suggestions, "attach expected language certificates to make requirements concrete")
	}

	return cat
}

func scoreCompensation(salary domain.SalaryInput, benefits domain.BenefitSelection) CategoryScore {
	cat := CategoryScore{Name: "Compensation & Benefits", MaxScore: maxCompensation}

	min, _ := salary.Min.Int64()
	max, _ := salary.Max.Int64()
	if salary.Negotiable || min > 0 || max > 0 {
		cat.Score += 5
	} else {
		cat.Suggestions = append(cat.Suggestions, "state a salary range or mark the salary negotiable")
	}

	switch count := benefits.Count(); {
	case count >= 5:
		cat.Score += 5
	case count >= 3:
		cat.Score += 4
	case count >= 1:
		cat.Score += 2
	default:
		cat.Suggestions = append(cat.Suggestions, "list the benefits that come with this role")
	}

	return cat
}
