package domain

import "testing"

func TestFormatHelpers(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{FormatStatus(StatusPublished), "Published"},
		{FormatStatus("BOGUS"), "Unknown"},
		{FormatApplyMethod(ApplyEmail), "Apply by email"},
		{FormatWorkMode(WorkModeHybrid), "Hybrid"},
		{FormatEmploymentType(EmploymentFullTime), "Full-time"},
		{FormatJobLevel(LevelLead), "Team Lead"},
		{FormatJobLevel(""), "Unknown"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestIsValidApplyMethod(t *testing.T) {
	for _, m := range []string{ApplyPlatform, ApplyEmail, ApplyLink} {
		if !IsValidApplyMethod(m) {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if IsValidApplyMethod("FAX") || IsValidApplyMethod("") {
		t.Error("expected unknown methods to be invalid")
	}
}
