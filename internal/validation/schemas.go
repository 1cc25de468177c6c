// Package validation holds the request validators that guard every write
// path. Validators are pure: they inspect the input, return the normalized
// value plus a list of field errors, and never touch the database.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	// Unicode letters and spaces only. Digits and punctuation, including
	// hyphens, are rejected.
	nameRe = regexp.MustCompile(`^[\p{L} ]+$`)

	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

func isValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// runeLen counts characters, not bytes, so multi-byte names are not
// penalized by length rules.
func runeLen(s string) int {
	return len([]rune(s))
}

type SignupInput struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Company  *string `json:"company"`
}

// ValidateSignup trims the name before any length or pattern check, then
// reports the first violated rule per field, collected across all fields.
func ValidateSignup(input SignupInput) (SignupInput, []FieldError) {
	var errs []FieldError

	input.Name = strings.TrimSpace(input.Name)

	switch {
	case runeLen(input.Name) < 2:
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	case runeLen(input.Name) > 60:
		errs = append(errs, FieldError{Field: "name", Message: "Name cannot be more than 60 characters"})
	case !nameRe.MatchString(input.Name):
		errs = append(errs, FieldError{Field: "name", Message: "Name cannot contain numbers or special characters"})
	}

	if !isValidEmail(input.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	if runeLen(input.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}

	if input.Company != nil && runeLen(*input.Company) > 100 {
		errs = append(errs, FieldError{Field: "company", Message: "Company cannot be more than 100 characters"})
	}

	return input, errs
}

type TestimonialInput struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Rating      int     `json:"rating"`
	Testimonial string  `json:"testimonial"`
	Photo       *string `json:"photo"`
	Video       *string `json:"video"`
}

func ValidateTestimonial(input TestimonialInput) (TestimonialInput, []FieldError) {
	var errs []FieldError

	switch {
	case runeLen(input.Name) < 2:
		errs = append(errs, FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	case runeLen(input.Name) > 100:
		errs = append(errs, FieldError{Field: "name", Message: "Name cannot be more than 100 characters"})
	}

	if !isValidEmail(input.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}

	if input.Company != nil && runeLen(*input.Company) > 100 {
		errs = append(errs, FieldError{Field: "company", Message: "Company cannot be more than 100 characters"})
	}

	if input.Position != nil && runeLen(*input.Position) > 100 {
		errs = append(errs, FieldError{Field: "position", Message: "Position cannot be more than 100 characters"})
	}

	if input.Rating < 1 || input.Rating > 5 {
		errs = append(errs, FieldError{Field: "rating", Message: "Rating must be between 1 and 5"})
	}

	switch {
	case runeLen(input.Testimonial) < 10:
		errs = append(errs, FieldError{Field: "testimonial", Message: "Testimonial must be at least 10 characters"})
	case runeLen(input.Testimonial) > 1000:
		errs = append(errs, FieldError{Field: "testimonial", Message: "Testimonial cannot be more than 1000 characters"})
	}

	if input.Photo != nil && *input.Photo != "" && !isValidURL(*input.Photo) {
		errs = append(errs, FieldError{Field: "photo", Message: "Invalid URL"})
	}

	if input.Video != nil && *input.Video != "" && !isValidURL(*input.Video) {
		errs = append(errs, FieldError{Field: "video", Message: "Invalid URL"})
	}

	return input, errs
}

type ProjectInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
}

// WordCount counts whitespace-delimited non-empty tokens, so any run of
// consecutive spaces separates exactly one word from the next.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func ValidateProject(input ProjectInput) (ProjectInput, []FieldError) {
	var errs []FieldError

	input.Name = strings.TrimSpace(input.Name)

	switch {
	case input.Name == "":
		errs = append(errs, FieldError{Field: "name", Message: "Project name is required"})
	case WordCount(input.Name) < 5:
		errs = append(errs, FieldError{Field: "name", Message: "Project name must contain at least 5 words"})
	case runeLen(input.Name) > 100:
		errs = append(errs, FieldError{Field: "name", Message: "Project name cannot be more than 100 characters"})
	}

	if input.Description != nil && runeLen(*input.Description) > 500 {
		errs = append(errs, FieldError{Field: "description", Message: "Description cannot be more than 500 characters"})
	}

	if input.Website != nil && *input.Website != "" && !isValidURL(*input.Website) {
		errs = append(errs, FieldError{Field: "website", Message: "Invalid URL"})
	}

	return input, errs
}

var widgetLayouts = map[string]bool{
	"carousel": true,
	"grid":     true,
	"cards":    true,
	"list":     true,
}

type WidgetSettingsInput struct {
	Layout string `json:"layout"`
	Theme  struct {
		PrimaryColor    string `json:"primaryColor"`
		BackgroundColor string `json:"backgroundColor"`
		TextColor       string `json:"textColor"`
		FontFamily      string `json:"fontFamily"`
	} `json:"theme"`
	ShowRatings     bool `json:"showRatings"`
	ShowPhotos      bool `json:"showPhotos"`
	ShowCompany     bool `json:"showCompany"`
	MaxTestimonials int  `json:"maxTestimonials"`
}

func ValidateWidgetSettings(input WidgetSettingsInput) (WidgetSettingsInput, []FieldError) {
	var errs []FieldError

	if !widgetLayouts[input.Layout] {
		errs = append(errs, FieldError{Field: "layout", Message: "Layout must be one of carousel, grid, cards, list"})
	}

	colors := []struct {
		field string
		value string
	}{
		{"theme.primaryColor", input.Theme.PrimaryColor},
		{"theme.backgroundColor", input.Theme.BackgroundColor},
		{"theme.textColor", input.Theme.TextColor},
	}

	for _, color := range colors {
		if !hexColorRe.MatchString(color.value) {
			errs = append(errs, FieldError{Field: color.field, Message: "Invalid color format"})
		}
	}

	if input.MaxTestimonials < 1 || input.MaxTestimonials > 50 {
		errs = append(errs, FieldError{Field: "maxTestimonials", Message: "Max testimonials must be between 1 and 50"})
	}

	return input, errs
}
