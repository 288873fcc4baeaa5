package campaign

import (
	"math/rand"
	"strings"
	"testing"
)

func seededPlanner() *Planner {
	return NewPlanner(rand.New(rand.NewSource(1)))
}

func TestGenerateEshotPromotional(t *testing.T) {
	eshot := seededPlanner().GenerateEshot(EshotRequest{
		Products: []string{"Honda EU22i Generator", "Hilti TE 1000 Breaker"},
		Type:     "promotional",
		Urgency:  "medium",
	})

	if eshot.CampaignType != "promotional" {
		t.Errorf("Unexpected campaign type: %q", eshot.CampaignType)
	}
	if !strings.Contains(eshot.Content, "- Honda EU22i Generator") {
		t.Errorf("Products should render as a bullet list, got %q", eshot.Content)
	}
	if !strings.Contains(eshot.Content, "Don't miss out") {
		t.Errorf("Expected medium urgency phrase, got %q", eshot.Content)
	}
	if !strings.Contains(eshot.SubjectLine, "Honda EU22i Generator") {
		t.Errorf("Subject should name the lead product, got %q", eshot.SubjectLine)
	}
	if eshot.Footer == "" {
		t.Error("Expected a footer")
	}
}

func TestGenerateEshotWeatherIncludesContext(t *testing.T) {
	eshot := seededPlanner().GenerateEshot(EshotRequest{
		Products:       []string{"Water Pumps"},
		Type:           "weather",
		Urgency:        "high",
		WeatherContext: "Heavy rain forecast across London this week.",
	})

	if !strings.Contains(eshot.Content, "Heavy rain forecast across London this week.") {
		t.Errorf("Weather context missing from content: %q", eshot.Content)
	}
	if !strings.Contains(eshot.Content, "Act now") {
		t.Errorf("Expected high urgency phrase, got %q", eshot.Content)
	}
}

func TestGenerateEshotDefaults(t *testing.T) {
	eshot := seededPlanner().GenerateEshot(EshotRequest{})

	if eshot.CampaignType != "promotional" {
		t.Errorf("Empty type should default to promotional, got %q", eshot.CampaignType)
	}
	if !strings.Contains(eshot.Content, "- Quality equipment available") {
		t.Errorf("Empty products should use the default line, got %q", eshot.Content)
	}
}

func TestSubjectLineDeterministicWithSeed(t *testing.T) {
	first := seededPlanner().GenerateEshot(EshotRequest{Products: []string{"Generators"}, Type: "seasonal", Urgency: "low"})
	second := seededPlanner().GenerateEshot(EshotRequest{Products: []string{"Generators"}, Type: "seasonal", Urgency: "low"})

	if first.SubjectLine != second.SubjectLine {
		t.Errorf("Same seed should give the same subject: %q vs %q", first.SubjectLine, second.SubjectLine)
	}
}

func TestGenerateSocialPost(t *testing.T) {
	post := seededPlanner().GenerateSocialPost(SocialRequest{
		Platform: "linkedin",
		Type:     "product_showcase",
		Products: []string{"Generators", "Breakers", "Pumps"},
		Hashtags: []string{"EquipmentHire", "London"},
	})

	if post.Platform != "linkedin" {
		t.Errorf("Unexpected platform: %q", post.Platform)
	}
	if !strings.Contains(post.Content, "Generators, Breakers, and Pumps") {
		t.Errorf("Products should join into prose, got %q", post.Content)
	}
	if !strings.Contains(post.Content, "#EquipmentHire #London") {
		t.Errorf("Hashtags missing: %q", post.Content)
	}
	if post.CharacterCount != len(post.Content) {
		t.Errorf("Character count should match content length: %d vs %d", post.CharacterCount, len(post.Content))
	}
}

func TestGenerateSocialPostWeatherAlert(t *testing.T) {
	post := seededPlanner().GenerateSocialPost(SocialRequest{
		Platform:       "linkedin",
		Type:           "weather_alert",
		Products:       []string{"water pumps"},
		WeatherContext: "Flood warnings issued for the Thames valley.",
	})

	if !strings.Contains(post.Content, "Flood warnings issued for the Thames valley.") {
		t.Errorf("Weather context missing: %q", post.Content)
	}
	if !strings.Contains(post.Content, "water pumps") {
		t.Errorf("Products missing: %q", post.Content)
	}
}

func TestFormatProductsForSocial(t *testing.T) {
	tests := []struct {
		products []string
		want     string
	}{
		{nil, "Quality equipment"},
		{[]string{"Generators"}, "Generators"},
		{[]string{"Generators", "Pumps"}, "Generators and Pumps"},
		{[]string{"Generators", "Pumps", "Heaters"}, "Generators, Pumps, and Heaters"},
	}
	for _, tt := range tests {
		if got := formatProductsForSocial(tt.products); got != tt.want {
			t.Errorf("formatProductsForSocial(%v) = %q, want %q", tt.products, got, tt.want)
		}
	}
}

func TestCalendar(t *testing.T) {
	entries := Calendar(2026)

	if len(entries) != 16 {
		t.Fatalf("Expected 12 seasonal plus 4 weather campaigns, got %d", len(entries))
	}

	first := entries[0]
	if first.ID != "2026_01_new_year_construction_prep" {
		t.Errorf("Unexpected first ID: %q", first.ID)
	}
	if first.SuggestedStart != "2026-01-01" {
		t.Errorf("Unexpected suggested start: %q", first.SuggestedStart)
	}

	weather := entries[12]
	if weather.Type != "weather_triggered" {
		t.Errorf("Expected weather campaign after seasonal block, got %q", weather.Type)
	}
	if !weather.FlexibleTiming || weather.Priority != "high" {
		t.Errorf("Weather campaigns should be flexible and high priority, got %+v", weather)
	}
	if weather.TriggerCondition != "heavy_rain" {
		t.Errorf("Unexpected trigger: %q", weather.TriggerCondition)
	}
}

func TestCalendarZeroYearUsesCurrentYear(t *testing.T) {
	entries := Calendar(0)
	if entries[0].Year == 0 {
		t.Error("Zero year should be replaced with the current year")
	}
}
