package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func ValidateRegister(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidateProfile checks the one-time profile submission. Website is the
// only optional field.
func ValidateProfile(username, fullName, bio, experience, skills, education, achievements, designation, company, location, website string) ValidationErrors {
	errs := make(ValidationErrors)

	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	required := map[string]string{
		"full_name":    fullName,
		"bio":          bio,
		"experience":   experience,
		"skills":       skills,
		"education":    education,
		"achievements": achievements,
		"designation":  designation,
		"company":      company,
		"location":     location,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs.Add(field, fieldLabel(field)+" is required")
		}
	}

	if website = strings.TrimSpace(website); website != "" {
		if _, err := url.ParseRequestURI(website); err != nil {
			errs.Add("website", "Invalid website URL")
		}
	}

	return errs
}

func ValidatePost(privacy, content string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Post content is required")
	}

	if privacy != "public" && privacy != "private" {
		errs.Add("privacy", "Privacy must be public or private")
	}

	return errs
}

func ValidateProject(concept string) ValidationErrors {
	errs := make(ValidationErrors)

	concept = strings.TrimSpace(concept)
	if concept == "" {
		errs.Add("concept", "Concept is required")
	} else if len(concept) > 500 {
		errs.Add("concept", "Concept is too long")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}

	if len(missing) > 0 {
		errs.Add("password", fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}

func fieldLabel(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
