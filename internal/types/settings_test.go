package types

import "testing"

func TestDefaultWidgetSettings(t *testing.T) {
	settings := DefaultWidgetSettings()

	if settings.Layout != "carousel" {
		t.Errorf("expected default layout carousel, got %q", settings.Layout)
	}

	if settings.Theme.PrimaryColor != "#0ea5e9" {
		t.Errorf("expected default primary color #0ea5e9, got %q", settings.Theme.PrimaryColor)
	}

	if settings.Theme.BackgroundColor != "#ffffff" {
		t.Errorf("expected default background color #ffffff, got %q", settings.Theme.BackgroundColor)
	}

	if settings.Theme.TextColor != "#1f2937" {
		t.Errorf("expected default text color #1f2937, got %q", settings.Theme.TextColor)
	}

	if settings.MaxTestimonials != 10 {
		t.Errorf("expected default max testimonials 10, got %d", settings.MaxTestimonials)
	}

	if !settings.ShowRatings || !settings.ShowPhotos || !settings.ShowCompany {
		t.Error("expected all display toggles on by default")
	}
}

func TestDefaultFormSettings(t *testing.T) {
	settings := DefaultFormSettings()

	if !settings.RequireApproval {
		t.Error("expected approval to be required by default")
	}

	if !settings.CollectEmail || !settings.CollectCompany || !settings.CollectPosition {
		t.Error("expected all collection toggles on by default")
	}

	if !settings.AllowVideo || !settings.AllowPhoto {
		t.Error("expected media uploads allowed by default")
	}

	if settings.CustomQuestions == nil {
		t.Error("expected custom questions to default to an empty list, not nil")
	}
}

func TestDefaultNotificationSettings(t *testing.T) {
	settings := DefaultNotificationSettings()

	if !settings.EmailOnNewTestimonial {
		t.Error("expected new-testimonial notifications on by default")
	}

	if settings.EmailOnApproval {
		t.Error("expected approval notifications off by default")
	}

	if !settings.EmailWeeklyReport {
		t.Error("expected weekly reports on by default")
	}

	if settings.EmailMonthlyReport {
		t.Error("expected monthly reports off by default")
	}
}
