package strength

import (
	"strings"
	"testing"
)

func TestCheckPersonalDataName(t *testing.T) {
	issues := CheckPersonalData("john99", Profile{FullName: "John Smith"})
	if len(issues) != 1 {
		t.Fatalf("want exactly one issue, got %d: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], "john") {
		t.Errorf("issue should mention the matched name token, got %q", issues[0])
	}
}

func TestCheckPersonalDataNameReversed(t *testing.T) {
	issues := CheckPersonalData("aninerak7", Profile{FullName: "Anna Karenina"})
	if len(issues) != 1 {
		t.Fatalf("want exactly one issue, got %d: %v", len(issues), issues)
	}
	if !strings.Contains(issues[0], "backwards") {
		t.Errorf("issue should flag the reversed token, got %q", issues[0])
	}
}

func TestCheckPersonalDataClean(t *testing.T) {
	issues := CheckPersonalData("Xk9#mQ2!vL", Profile{
		FullName: "John Smith",
		Email:    "j@example.com",
	})
	if len(issues) != 0 {
		t.Errorf("want no issues for an unrelated password, got %v", issues)
	}
}

func TestCheckPersonalDataEmail(t *testing.T) {
	cases := []struct {
		password string
		email    string
		fragment string
	}{
		{"alice2024!", "alice.w@example.com", "alice"},
		{"gadgetron99", "bob@gadgetron.io", "gadgetron"},
	}

	for _, tc := range cases {
		issues := CheckPersonalData(tc.password, Profile{Email: tc.email})
		if len(issues) != 1 {
			t.Fatalf("CheckPersonalData(%q): want one issue, got %v", tc.password, issues)
		}
		if !strings.Contains(issues[0], tc.fragment) {
			t.Errorf("issue %q should mention %q", issues[0], tc.fragment)
		}
	}
}

func TestCheckPersonalDataBirthDate(t *testing.T) {
	cases := []struct {
		password string
		fragment string
	}{
		{"july1990x", "1990"},
		{"x07-24y", "07-24"},
		{"mq2407vp", "2407"},
	}

	for _, tc := range cases {
		issues := CheckPersonalData(tc.password, Profile{DateOfBirth: "1990-07-24"})
		if len(issues) != 1 {
			t.Fatalf("CheckPersonalData(%q): want one issue, got %v", tc.password, issues)
		}
		if !strings.Contains(issues[0], tc.fragment) {
			t.Errorf("issue %q should mention %q", issues[0], tc.fragment)
		}
	}
}

func TestCheckPersonalDataInvalidBirthDate(t *testing.T) {
	// Unparseable dates silently disable the birth date checks.
	issues := CheckPersonalData("24/07/1990born", Profile{DateOfBirth: "24/07/1990"})
	if len(issues) != 0 {
		t.Errorf("want no issues for malformed date of birth, got %v", issues)
	}
}

func TestCheckPersonalDataLeaked(t *testing.T) {
	cases := []struct {
		password string
		fragment string
	}{
		{"letmein", "letmein"},
		{"dragon123x", "dragon"},
		{"xxtrustno1", "trustno1"},
	}

	for _, tc := range cases {
		issues := CheckPersonalData(tc.password, Profile{})
		if len(issues) != 1 {
			t.Fatalf("CheckPersonalData(%q): want one leak issue, got %v", tc.password, issues)
		}
		if !strings.Contains(issues[0], tc.fragment) {
			t.Errorf("issue %q should mention %q", issues[0], tc.fragment)
		}
	}
}

func TestCheckPersonalDataMultipleCategories(t *testing.T) {
	// One issue per matching category, never more.
	issues := CheckPersonalData("johnmonkey", Profile{FullName: "John Smith"})
	if len(issues) != 2 {
		t.Fatalf("want name + leak issues, got %v", issues)
	}
}

func TestCheckPersonalDataEmptyPassword(t *testing.T) {
	issues := CheckPersonalData("", Profile{FullName: "John Smith", Email: "j@example.com"})
	if len(issues) != 0 {
		t.Errorf("want no issues for empty password, got %v", issues)
	}
}
