package strength

import (
	"fmt"
	"strings"
	"time"
)

// Profile is the personal data a registration form collects. All fields are
// optional; empty fields simply disable their checks. The engine only ever
// reads it, nothing is persisted.
type Profile struct {
	FullName    string
	Email       string
	DateOfBirth string // ISO date, e.g. 1990-07-24
}

// dobLayout is the only accepted date format. Anything else silently
// disables the birth date checks.
const dobLayout = "2006-01-02"

// CheckPersonalData cross references a password against the profile and the
// embedded leaked password sample. Comparison is case-insensitive. Each
// category (name, email, birth date, leaks) reports at most its first match,
// but all categories are evaluated, so the result can carry several issues.
func CheckPersonalData(password string, profile Profile) []string {
	if password == "" {
		return nil
	}

	lower := strings.ToLower(password)
	var issues []string

	if issue := checkName(lower, profile.FullName); issue != "" {
		issues = append(issues, issue)
	}
	if issue := checkEmail(lower, profile.Email); issue != "" {
		issues = append(issues, issue)
	}
	if issue := checkBirthDate(lower, profile.DateOfBirth); issue != "" {
		issues = append(issues, issue)
	}
	if issue := checkLeaked(lower); issue != "" {
		issues = append(issues, issue)
	}

	return issues
}

func checkName(lower, fullName string) string {
	for _, token := range strings.Fields(strings.ToLower(fullName)) {
		if len(token) <= 2 {
			continue
		}
		if strings.Contains(lower, token) {
			return fmt.Sprintf("Password contains part of your name (%q)", token)
		}
		if rev := reverse(token); strings.Contains(lower, rev) {
			return fmt.Sprintf("Password contains part of your name spelled backwards (%q)", rev)
		}
	}
	return ""
}

func checkEmail(lower, email string) string {
	if email == "" {
		return ""
	}

	local, domain, _ := strings.Cut(strings.ToLower(email), "@")

	// The whole local part first, then its dot-separated pieces. Tokens of
	// one or two characters match almost anything, skip those.
	tokens := append([]string{local}, strings.Split(local, ".")...)
	for _, token := range tokens {
		if len(token) > 2 && strings.Contains(lower, token) {
			return fmt.Sprintf("Password contains part of your email address (%q)", token)
		}
	}

	if label, _, _ := strings.Cut(domain, "."); len(label) > 3 {
		if strings.Contains(lower, label) {
			return fmt.Sprintf("Password contains your email domain (%q)", label)
		}
	}
	return ""
}

func checkBirthDate(lower, dob string) string {
	if dob == "" {
		return ""
	}
	parsed, err := time.Parse(dobLayout, dob)
	if err != nil {
		return ""
	}

	year := fmt.Sprintf("%04d", parsed.Year())
	yy := year[2:]
	mm := fmt.Sprintf("%02d", int(parsed.Month()))
	dd := fmt.Sprintf("%02d", parsed.Day())

	if strings.Contains(lower, year) {
		return fmt.Sprintf("Password contains your birth year (%s)", year)
	}
	if strings.Contains(lower, yy) {
		return fmt.Sprintf("Password contains your two-digit birth year (%s)", yy)
	}

	dayMonth := []string{
		mm + dd, dd + mm,
		mm + "-" + dd, dd + "-" + mm,
		mm + "/" + dd, dd + "/" + mm,
		mm + "." + dd, dd + "." + mm,
	}
	for _, combo := range dayMonth {
		if strings.Contains(lower, combo) {
			return fmt.Sprintf("Password contains your birth day and month (%s)", combo)
		}
	}

	for _, full := range []string{year + mm + dd, dd + mm + year} {
		if strings.Contains(lower, full) {
			return fmt.Sprintf("Password contains your full date of birth (%s)", full)
		}
	}
	return ""
}

func checkLeaked(lower string) string {
	for _, entry := range leakedPasswords {
		if lower == entry {
			return fmt.Sprintf("Password matches a known leaked password (%q)", entry)
		}
		if len(entry) > 4 && strings.Contains(lower, entry) {
			return fmt.Sprintf("Password contains a known leaked password (%q)", entry)
		}
	}
	return ""
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
