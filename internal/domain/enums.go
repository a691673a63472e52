package domain

// Job record status. Forms carry the same values in jobStatus.
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
)

// Application methods after enum normalization.
const (
	ApplyPlatform = "PLATFORM"
	ApplyEmail    = "EMAIL"
	ApplyLink     = "LINK"
)

// Work modes after enum normalization.
const (
	WorkModeOnsite = "ONSITE"
	WorkModeRemote = "REMOTE"
	WorkModeHybrid = "HYBRID"
)

// Employment types after enum normalization.
const (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentInternship = "INTERNSHIP"
	EmploymentFreelance  = "FREELANCE"
)

// Job levels after enum normalization.
const (
	LevelIntern   = "INTERN"
	LevelFresher  = "FRESHER"
	LevelJunior   = "JUNIOR"
	LevelMiddle   = "MIDDLE"
	LevelSenior   = "SENIOR"
	LevelLead     = "LEAD"
	LevelManager  = "MANAGER"
	LevelDirector = "DIRECTOR"
)

// FormatStatus returns the display label for a record status.
func FormatStatus(status string) string {
	switch status {
	case StatusDraft:
		return "Draft"
	case StatusPublished:
		return "Published"
	default:
		return "Unknown"
	}
}

// FormatApplyMethod returns the display label for an application method.
func FormatApplyMethod(method string) string {
	switch method {
	case ApplyPlatform:
		return "Apply via platform"
	case ApplyEmail:
		return "Apply by email"
	case ApplyLink:
		return "Apply via external link"
	default:
		return "Unknown"
	}
}

// FormatWorkMode returns the display label for a work mode.
func FormatWorkMode(mode string) string {
	switch mode {
	case WorkModeOnsite:
		return "On-site"
	case WorkModeRemote:
		return "Remote"
	case WorkModeHybrid:
		return "Hybrid"
	default:
		return "Unknown"
	}
}

// FormatEmploymentType returns the display label for an employment type.
func FormatEmploymentType(t string) string {
	switch t {
	case EmploymentFullTime:
		return "Full-time"
	case EmploymentPartTime:
		return "Part-time"
	case EmploymentContract:
		return "Contract"
	case EmploymentInternship:
		return "Internship"
	case EmploymentFreelance:
		return "Freelance"
	default:
		return "Unknown"
	}
}

// FormatJobLevel returns the display label for a job level.
func FormatJobLevel(level string) string {
	switch level {
	case LevelIntern:
		return "Intern"
	case LevelFresher:
		return "Fresher"
	case LevelJunior:
		return "Junior"
	case LevelMiddle:
		return "Middle"
	case LevelSenior:
		return "Senior"
	case LevelLead:
		return "Team Lead"
	case LevelManager:
		return "Manager"
	case LevelDirector:
		return "Director"
	default:
		return "Unknown"
	}
}

// IsValidApplyMethod reports whether method is one of the closed set.
func IsValidApplyMethod(method string) bool {
	switch method {
	case ApplyPlatform, ApplyEmail, ApplyLink:
		return true
	}
	return false
}
