package campaign

import (
	"fmt"
	"strings"
	"time"
)

type seasonalCampaign struct {
	month int
	name  string
	kind  string
	focus string
}

var seasonalCampaigns = []seasonalCampaign{
	{1, "New Year Construction Prep", "seasonal", "construction equipment"},
	{2, "Winter Heating Solutions", "weather", "heating equipment"},
	{3, "Spring Garden Ready", "seasonal", "garden equipment"},
	{4, "Easter DIY Projects", "event", "diy tools"},
	{5, "Summer Event Prep", "seasonal", "event equipment"},
	{6, "Wedding Season Specials", "event", "event equipment"},
	{7, "Summer Construction Peak", "seasonal", "construction equipment"},
	{8, "Festival Equipment Hire", "event", "event equipment"},
	{9, "Back to Business", "seasonal", "commercial equipment"},
	{10, "Autumn Maintenance", "seasonal", "maintenance equipment"},
	{11, "Winter Preparation", "weather", "winter equipment"},
	{12, "Christmas Event Solutions", "event", "event equipment"},
}

type weatherCampaign struct {
	name     string
	trigger  string
	products []string
}

var weatherCampaigns = []weatherCampaign{
	{"Heavy Rain Alert - Water Management", "heavy_rain", []string{"water pumps", "dehumidifiers"}},
	{"Cold Snap Special - Heating Equipment", "cold_weather", []string{"heaters", "thermal equipment"}},
	{"High Winds Warning - Safety Equipment", "high_winds", []string{"safety barriers", "secure storage"}},
	{"Heatwave Solutions - Cooling Equipment", "hot_weather", []string{"cooling fans", "air conditioning"}},
}

// Calendar builds the annual campaign plan: one seasonal or event campaign
// per month, plus flexible weather-triggered campaigns. A zero year uses the
// current year.
func Calendar(year int) []CalendarEntry {
	if year == 0 {
		year = time.Now().Year()
	}

	entries := make([]CalendarEntry, 0, len(seasonalCampaigns)+len(weatherCampaigns))
	for _, campaign := range seasonalCampaigns {
		entries = append(entries, CalendarEntry{
			ID:             fmt.Sprintf("%d_%02d_%s", year, campaign.month, slugify(campaign.name)),
			Name:           campaign.name,
			Month:          campaign.month,
			Year:           year,
			Type:           campaign.kind,
			FocusCategory:  campaign.focus,
			SuggestedStart: fmt.Sprintf("%d-%02d-01", year, campaign.month),
			DurationWeeks:  2,
			Priority:       "medium",
			AutoGenerated:  true,
		})
	}

	for _, campaign := range weatherCampaigns {
		entries = append(entries, CalendarEntry{
			ID:               "weather_" + slugify(campaign.name),
			Name:             campaign.name,
			Type:             "weather_triggered",
			TriggerCondition: campaign.trigger,
			TargetProducts:   campaign.products,
			Priority:         "high",
			AutoGenerated:    true,
			FlexibleTiming:   true,
		})
	}

	return entries
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
