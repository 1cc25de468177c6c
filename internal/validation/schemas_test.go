package validation

import (
	"strings"
	"testing"
)

func fieldMessage(errs []FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func validSignup() SignupInput {
	return SignupInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	}
}

func TestValidateSignupAccepted(t *testing.T) {
	_, errs := ValidateSignup(validSignup())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSignupNameRejectsDigitsAndPunctuation(t *testing.T) {
	bad := []string{"Jane1", "Jane Doe 2", "Jane-Doe", "Jane_Doe", "J@ne", "Jane!", "O'Brien"}

	for _, name := range bad {
		input := validSignup()
		input.Name = name

		_, errs := ValidateSignup(input)

		msg := fieldMessage(errs, "name")
		if msg != "Name cannot contain numbers or special characters" {
			t.Errorf("name %q: expected special-character message, got %q", name, msg)
		}
	}
}

func TestValidateSignupNameAllowsUnicodeLetters(t *testing.T) {
	good := []string{"José García", "Zoë", "Łukasz Nowak", "李 明"}

	for _, name := range good {
		input := validSignup()
		input.Name = name

		_, errs := ValidateSignup(input)
		if len(errs) != 0 {
			t.Errorf("name %q: expected no errors, got %v", name, errs)
		}
	}
}

func TestValidateSignupNameTrimsBeforeLengthCheck(t *testing.T) {
	input := validSignup()
	input.Name = "   Jo   "

	normalized, errs := ValidateSignup(input)
	if len(errs) != 0 {
		t.Fatalf("two visible characters should pass after trim, got %v", errs)
	}
	if normalized.Name != "Jo" {
		t.Errorf("expected trimmed name %q, got %q", "Jo", normalized.Name)
	}

	input.Name = "   J   "

	_, errs = ValidateSignup(input)
	if fieldMessage(errs, "name") != "Name must be at least 2 characters" {
		t.Errorf("one visible character should fail the minimum, got %v", errs)
	}
}

func TestValidateSignupNameMaxLength(t *testing.T) {
	input := validSignup()
	input.Name = strings.Repeat("a", 61)

	_, errs := ValidateSignup(input)
	if fieldMessage(errs, "name") != "Name cannot be more than 60 characters" {
		t.Errorf("expected max-length message, got %v", errs)
	}

	input.Name = strings.Repeat("a", 60)

	_, errs = ValidateSignup(input)
	if len(errs) != 0 {
		t.Errorf("60 characters should pass, got %v", errs)
	}
}

func TestValidateSignupEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", ""} {
		input := validSignup()
		input.Email = email

		_, errs := ValidateSignup(input)
		if fieldMessage(errs, "email") != "Invalid email address" {
			t.Errorf("email %q: expected invalid email error, got %v", email, errs)
		}
	}
}

func TestValidateSignupPassword(t *testing.T) {
	input := validSignup()
	input.Password = "12345"

	_, errs := ValidateSignup(input)
	if fieldMessage(errs, "password") != "Password must be at least 6 characters" {
		t.Errorf("expected password error, got %v", errs)
	}

	input.Password = "123456"

	_, errs = ValidateSignup(input)
	if len(errs) != 0 {
		t.Errorf("6 characters should pass, got %v", errs)
	}
}

func TestValidateSignupCollectsAllFieldErrors(t *testing.T) {
	input := SignupInput{
		Name:     "J4ne",
		Email:    "nope",
		Password: "123",
	}

	_, errs := ValidateSignup(input)
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateSignupCompanyOptional(t *testing.T) {
	input := validSignup()

	long := strings.Repeat("c", 101)
	input.Company = &long

	_, errs := ValidateSignup(input)
	if fieldMessage(errs, "company") == "" {
		t.Errorf("expected company error, got %v", errs)
	}

	ok := strings.Repeat("c", 100)
	input.Company = &ok

	_, errs = ValidateSignup(input)
	if len(errs) != 0 {
		t.Errorf("100 characters should pass, got %v", errs)
	}
}

func validTestimonial() TestimonialInput {
	return TestimonialInput{
		Name:        "Happy Customer",
		Email:       "customer@example.com",
		Rating:      5,
		Testimonial: "This product changed how we work.",
	}
}

func TestValidateTestimonialRatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6, -1, 100} {
		input := validTestimonial()
		input.Rating = rating

		_, errs := ValidateTestimonial(input)
		if fieldMessage(errs, "rating") == "" {
			t.Errorf("rating %d: expected error, got none", rating)
		}
	}

	for _, rating := range []int{1, 5} {
		input := validTestimonial()
		input.Rating = rating

		_, errs := ValidateTestimonial(input)
		if len(errs) != 0 {
			t.Errorf("rating %d: expected no errors, got %v", rating, errs)
		}
	}
}

func TestValidateTestimonialTextBounds(t *testing.T) {
	cases := []struct {
		length int
		ok     bool
	}{
		{9, false},
		{10, true},
		{1000, true},
		{1001, false},
	}

	for _, tc := range cases {
		input := validTestimonial()
		input.Testimonial = strings.Repeat("x", tc.length)

		_, errs := ValidateTestimonial(input)
		if tc.ok && len(errs) != 0 {
			t.Errorf("length %d: expected pass, got %v", tc.length, errs)
		}
		if !tc.ok && fieldMessage(errs, "testimonial") == "" {
			t.Errorf("length %d: expected error, got none", tc.length)
		}
	}
}

func TestValidateTestimonialMediaURLs(t *testing.T) {
	input := validTestimonial()

	bad := "not a url"
	input.Photo = &bad

	_, errs := ValidateTestimonial(input)
	if fieldMessage(errs, "photo") != "Invalid URL" {
		t.Errorf("expected photo URL error, got %v", errs)
	}

	good := "https://example.com/photo.jpg"
	input.Photo = &good
	input.Video = &good

	_, errs = ValidateTestimonial(input)
	if len(errs) != 0 {
		t.Errorf("valid URLs should pass, got %v", errs)
	}
}

func TestValidateProjectWordCount(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"One  Two   Three    Four     Five", true},
		{"My Project", false},
		{"My Awesome Project For Testing", true},
		{"  Five words here exactly now  ", true},
		{"one two three four", false},
	}

	for _, tc := range cases {
		_, errs := ValidateProject(ProjectInput{Name: tc.name})

		if tc.ok && len(errs) != 0 {
			t.Errorf("name %q: expected pass, got %v", tc.name, errs)
		}
		if !tc.ok && fieldMessage(errs, "name") != "Project name must contain at least 5 words" {
			t.Errorf("name %q: expected word-count error, got %v", tc.name, errs)
		}
	}
}

func TestValidateProjectNameRequired(t *testing.T) {
	for _, name := range []string{"", "    "} {
		_, errs := ValidateProject(ProjectInput{Name: name})
		if fieldMessage(errs, "name") != "Project name is required" {
			t.Errorf("name %q: expected required error, got %v", name, errs)
		}
	}
}

func TestValidateProjectNameMaxLength(t *testing.T) {
	name := "word word word word " + strings.Repeat("a", 100)

	_, errs := ValidateProject(ProjectInput{Name: name})
	if fieldMessage(errs, "name") != "Project name cannot be more than 100 characters" {
		t.Errorf("expected max-length error, got %v", errs)
	}
}

func TestValidateProjectWebsite(t *testing.T) {
	empty := ""
	_, errs := ValidateProject(ProjectInput{Name: "My Awesome Project For Testing", Website: &empty})
	if len(errs) != 0 {
		t.Errorf("empty website should pass, got %v", errs)
	}

	bad := "nope"
	_, errs = ValidateProject(ProjectInput{Name: "My Awesome Project For Testing", Website: &bad})
	if fieldMessage(errs, "website") != "Invalid URL" {
		t.Errorf("expected website error, got %v", errs)
	}
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"One  Two   Three    Four     Five", 5},
		{"a\tb\nc", 3},
	}

	for _, tc := range cases {
		if got := WordCount(tc.in); got != tc.want {
			t.Errorf("WordCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func validWidgetSettings() WidgetSettingsInput {
	input := WidgetSettingsInput{
		Layout:          "carousel",
		ShowRatings:     true,
		ShowPhotos:      true,
		ShowCompany:     true,
		MaxTestimonials: 10,
	}
	input.Theme.PrimaryColor = "#0ea5e9"
	input.Theme.BackgroundColor = "#ffffff"
	input.Theme.TextColor = "#1f2937"
	input.Theme.FontFamily = "Inter, sans-serif"
	return input
}

func TestValidateWidgetSettingsLayout(t *testing.T) {
	for _, layout := range []string{"carousel", "grid", "cards", "list"} {
		input := validWidgetSettings()
		input.Layout = layout

		_, errs := ValidateWidgetSettings(input)
		if len(errs) != 0 {
			t.Errorf("layout %q: expected pass, got %v", layout, errs)
		}
	}

	input := validWidgetSettings()
	input.Layout = "masonry"

	_, errs := ValidateWidgetSettings(input)
	if fieldMessage(errs, "layout") == "" {
		t.Errorf("expected layout error, got %v", errs)
	}
}

func TestValidateWidgetSettingsColors(t *testing.T) {
	input := validWidgetSettings()
	input.Theme.PrimaryColor = "#0ea5e"

	_, errs := ValidateWidgetSettings(input)
	if fieldMessage(errs, "theme.primaryColor") != "Invalid color format" {
		t.Errorf("5 hex digits should fail, got %v", errs)
	}

	input = validWidgetSettings()
	input.Theme.PrimaryColor = "#AbCdEf"

	_, errs = ValidateWidgetSettings(input)
	if len(errs) != 0 {
		t.Errorf("mixed-case hex should pass, got %v", errs)
	}

	input = validWidgetSettings()
	input.Theme.BackgroundColor = "ffffff"

	_, errs = ValidateWidgetSettings(input)
	if fieldMessage(errs, "theme.backgroundColor") != "Invalid color format" {
		t.Errorf("missing # should fail, got %v", errs)
	}
}

func TestValidateWidgetSettingsMaxTestimonials(t *testing.T) {
	for _, n := range []int{0, 51, -5} {
		input := validWidgetSettings()
		input.MaxTestimonials = n

		_, errs := ValidateWidgetSettings(input)
		if fieldMessage(errs, "maxTestimonials") == "" {
			t.Errorf("maxTestimonials %d: expected error, got none", n)
		}
	}

	for _, n := range []int{1, 50} {
		input := validWidgetSettings()
		input.MaxTestimonials = n

		_, errs := ValidateWidgetSettings(input)
		if len(errs) != 0 {
			t.Errorf("maxTestimonials %d: expected pass, got %v", n, errs)
		}
	}
}
