// Package campaign produces e-shot emails, social posts, and an annual
// campaign calendar from canned templates.
package campaign

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// EshotRequest describes the campaign email to generate.
type EshotRequest struct {
	Products       []string `json:"products"`
	Type           string   `json:"type"`    // "weather", "promotional", "seasonal"
	Urgency        string   `json:"urgency"` // "high", "medium", "low"
	WeatherContext string   `json:"weather_context,omitempty"`
}

// Eshot is a generated campaign email.
type Eshot struct {
	SubjectLine  string    `json:"subject_line"`
	Content      string    `json:"content"`
	Footer       string    `json:"footer"`
	CampaignType string    `json:"campaign_type"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// SocialRequest describes the social media post to generate.
type SocialRequest struct {
	Platform       string   `json:"platform"` // "linkedin", "facebook"
	Type           string   `json:"type"`     // "product_showcase", "promotional", "weather_alert"
	Products       []string `json:"products"`
	Hashtags       []string `json:"hashtags"`
	WeatherContext string   `json:"weather_context,omitempty"`
}

// SocialPost is a generated social media post.
type SocialPost struct {
	Content        string    `json:"content"`
	Platform       string    `json:"platform"`
	PostType       string    `json:"post_type"`
	CharacterCount int       `json:"character_count"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// CalendarEntry is one planned campaign in the annual calendar.
type CalendarEntry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Month            int      `json:"month,omitempty"`
	Year             int      `json:"year,omitempty"`
	Type             string   `json:"type"`
	FocusCategory    string   `json:"focus_category,omitempty"`
	SuggestedStart   string   `json:"suggested_start,omitempty"`
	DurationWeeks    int      `json:"duration_weeks,omitempty"`
	Priority         string   `json:"priority"`
	AutoGenerated    bool     `json:"auto_generated"`
	TriggerCondition string   `json:"trigger_condition,omitempty"`
	TargetProducts   []string `json:"target_products,omitempty"`
	FlexibleTiming   bool     `json:"flexible_timing,omitempty"`
}

// Planner generates campaign content. Subject-line prefix selection is
// randomized through the injected source so tests can seed it.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner creates a planner; a nil random source is seeded from the clock.
func NewPlanner(rng *rand.Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{rng: rng}
}

type eshotTemplate struct {
	campaignType string
	urgency      string
	content      string
	cta          string
}

var eshotTemplates = []eshotTemplate{
	{
		campaignType: "weather",
		urgency:      "high",
		content: `WEATHER ALERT

%s

Don't let the weather catch you unprepared. We have the equipment you need:

%s

%s

%s`,
		cta: "Call us now for immediate availability.",
	},
	{
		campaignType: "promotional",
		urgency:      "medium",
		content: `SPECIAL OFFER - Equipment Hire

Take advantage of our latest promotions on quality equipment hire:

%s

%s

%s`,
		cta: "Contact us today to secure your equipment.",
	},
	{
		campaignType: "seasonal",
		urgency:      "low",
		content: `Seasonal Equipment Solutions

As the season changes, make sure you have the right equipment for your projects:

%s

Our experienced team is ready to help you choose the right equipment for your needs.

%s`,
		cta: "Get in touch for expert advice and competitive rates.",
	},
}

var urgencyPrefixes = map[string][]string{
	"high":   {"URGENT:", "ALERT:", "IMMEDIATE:"},
	"medium": {"OFFER:", "SPECIAL:", "NOTICE:"},
	"low":    {"UPDATE:", "INFO:", ""},
}

var urgencyPhrases = map[string]string{
	"high":   "Act now - limited availability.",
	"medium": "Don't miss out on this opportunity.",
	"low":    "Contact us when you're ready.",
}

var subjectTemplates = map[string]string{
	"weather":     "%s Weather Alert - %s Available Now",
	"promotional": "%s Special Offer on %s",
	"seasonal":    "%s Seasonal Equipment - %s",
}

const emailFooter = `---
Professional Equipment Hire
Phone: [Your Phone Number]
Email: [Your Email]
Website: [Your Website]
Serving London and surrounding areas

Quality equipment | Expert advice | Competitive rates`

// GenerateEshot renders a campaign email from the template matching the
// requested type and urgency.
func (p *Planner) GenerateEshot(req EshotRequest) Eshot {
	if req.Type == "" {
		req.Type = "promotional"
	}
	if req.Urgency == "" {
		req.Urgency = "medium"
	}

	template := selectEshotTemplate(req.Type, req.Urgency)
	urgencyPhrase := urgencyPhrase(req.Urgency)
	productsList := formatProductsList(req.Products)

	var content string
	switch template.campaignType {
	case "weather":
		content = fmt.Sprintf(template.content, req.WeatherContext, productsList, urgencyPhrase, template.cta)
	case "seasonal":
		content = fmt.Sprintf(template.content, productsList, template.cta)
	default:
		content = fmt.Sprintf(template.content, productsList, urgencyPhrase, template.cta)
	}

	return Eshot{
		SubjectLine:  p.subjectLine(req.Products, req.Type, req.Urgency),
		Content:      content,
		Footer:       emailFooter,
		CampaignType: req.Type,
		GeneratedAt:  time.Now().UTC(),
	}
}

func selectEshotTemplate(campaignType, urgency string) eshotTemplate {
	for _, template := range eshotTemplates {
		if template.campaignType == campaignType && template.urgency == urgency {
			return template
		}
	}
	for _, template := range eshotTemplates {
		if template.campaignType == campaignType {
			return template
		}
	}
	return eshotTemplates[0]
}

func (p *Planner) subjectLine(products []string, campaignType, urgency string) string {
	prefixes, ok := urgencyPrefixes[urgency]
	if !ok {
		prefixes = []string{""}
	}
	prefix := prefixes[p.rng.Intn(len(prefixes))]

	productsText := "Quality Equipment"
	if len(products) > 0 {
		productsText = products[0]
	}

	template, ok := subjectTemplates[campaignType]
	if !ok {
		return strings.TrimSpace(fmt.Sprintf("%s %s - Equipment Hire", prefix, productsText))
	}
	return strings.TrimSpace(fmt.Sprintf(template, prefix, productsText))
}

func urgencyPhrase(urgency string) string {
	if phrase, ok := urgencyPhrases[urgency]; ok {
		return phrase
	}
	return urgencyPhrases["medium"]
}

func formatProductsList(products []string) string {
	if len(products) == 0 {
		return "- Quality equipment available"
	}
	lines := make([]string, len(products))
	for i, product := range products {
		lines[i] = "- " + product
	}
	return strings.Join(lines, "\n")
}

type socialTemplate struct {
	platform string
	postType string
	content  string
	cta      string
}

var socialTemplates = []socialTemplate{
	{
		platform: "linkedin",
		postType: "product_showcase",
		content: `Professional Equipment Hire in London

%s - delivering reliable solutions for your projects.

%s

- Competitive rates
- Expert advice included
- Same-day availability
- Delivery across London`,
		cta: "Get in touch today.",
	},
	{
		platform: "facebook",
		postType: "promotional",
		content: `Great deals on equipment hire.

%s - a strong fit for your next project.

%s

Why choose us? Because we care about your success.`,
		cta: "Message us for instant quotes.",
	},
	{
		platform: "linkedin",
		postType: "weather_alert",
		content: `Weather Update for London

%s

Stay prepared with our %s.

Be ready, not reactive. Our team is standing by to help.`,
		cta: "Contact us for immediate equipment availability.",
	},
}

// GenerateSocialPost renders a post for the requested platform and type,
// appending the call to action and hashtags.
func (p *Planner) GenerateSocialPost(req SocialRequest) SocialPost {
	if req.Platform == "" {
		req.Platform = "linkedin"
	}
	if req.Type == "" {
		req.Type = "product_showcase"
	}

	template := selectSocialTemplate(req.Platform, req.Type)
	products := formatProductsForSocial(req.Products)

	var content string
	if template.postType == "weather_alert" {
		content = fmt.Sprintf(template.content, req.WeatherContext, products)
	} else {
		content = fmt.Sprintf(template.content, products, req.WeatherContext)
	}

	var hashtags []string
	for _, tag := range req.Hashtags {
		hashtags = append(hashtags, "#"+tag)
	}

	full := strings.TrimSpace(content) + "\n\n" + template.cta
	if len(hashtags) > 0 {
		full += "\n\n" + strings.Join(hashtags, " ")
	}

	return SocialPost{
		Content:        full,
		Platform:       req.Platform,
		PostType:       req.Type,
		CharacterCount: len(full),
		GeneratedAt:    time.Now().UTC(),
	}
}

func selectSocialTemplate(platform, postType string) socialTemplate {
	for _, template := range socialTemplates {
		if template.platform == platform && template.postType == postType {
			return template
		}
	}
	for _, template := range socialTemplates {
		if template.platform == platform {
			return template
		}
	}
	return socialTemplates[0]
}

// formatProductsForSocial joins product names into readable prose.
func formatProductsForSocial(products []string) string {
	switch len(products) {
	case 0:
		return "Quality equipment"
	case 1:
		return products[0]
	case 2:
		return products[0] + " and " + products[1]
	default:
		return strings.Join(products[:len(products)-1], ", ") + ", and " + products[len(products)-1]
	}
}
