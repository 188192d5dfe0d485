package workbook

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/etnz/workbook/date"
)

var (
	// German phone numbers: 0 or +49, then a non zero digit and 1 to 14 digits.
	phoneRE = regexp.MustCompile(`^((\+49)|0)[1-9]\d{1,14}$`)
	// letters, digits and ._%+- before the @, a dotted domain and a 2+ letters tld.
	emailRE    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// requireNonBlank rejects the empty string and strings made only of white
// spaces.
func requireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidf("%s should not be empty", field)
	}
	return nil
}

// stripSpaces removes every white space, not only the surrounding ones.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func validatePhoneNumber(phone string) error {
	if phone == "" {
		return invalidf("phone number should not be empty")
	}
	if !phoneRE.MatchString(stripSpaces(phone)) {
		return invalidf("phone number %q must be a valid german phone number", phone)
	}
	return nil
}

func validateEmail(email string) error {
	if err := requireNonBlank("email", email); err != nil {
		return err
	}
	if !emailRE.MatchString(strings.TrimSpace(email)) {
		return invalidf("email %q must be valid", email)
	}
	return nil
}

func validateUsername(username string) error {
	if err := requireNonBlank("username", username); err != nil {
		return err
	}
	if !usernameRE.MatchString(username) {
		return invalidf("username %q should only contain letters and digits", username)
	}
	return nil
}

// validateBirthday requires a day strictly before today.
func validateBirthday(birthday date.Date) error {
	today := date.Today()
	switch {
	case birthday.IsZero():
		return invalidf("birthday should not be empty")
	case birthday.After(today):
		return invalidf("birthday %s cannot be in the future", birthday)
	case birthday == today:
		return invalidf("birthday cannot be the current date")
	}
	return nil
}

// validateDueDate requires a due day that is not before today. The time of
// day is not checked: a task due earlier today is still valid.
func validateDueDate(due time.Time) error {
	if due.IsZero() {
		return invalidf("due date should not be empty")
	}
	if date.Of(due).Before(date.Today()) {
		return invalidf("due date %s cannot be in the past", due.Format(DueDateFormat))
	}
	return nil
}
