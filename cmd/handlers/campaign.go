package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hiregen/internal/campaign"
)

// NewCampaignCmd creates the campaign command.
func NewCampaignCmd() *cobra.Command {
	campaignCmd := &cobra.Command{
		Use:   "campaign",
		Short: "Generate campaign emails, social posts, and the annual calendar",
		Long: `Generate marketing campaign assets: eshot emails, social media posts,
and the full-year campaign calendar with seasonal and weather entries.

Examples:
  hiregen campaign eshot --products "Water Pumps,Dehumidifiers" --type weather --urgency high --weather "Heavy rain forecast"
  hiregen campaign social --platform linkedin --products "Honda EU22i Generator" --hashtags "EquipmentHire,Construction"
  hiregen campaign calendar --year 2026`,
	}

	campaignCmd.AddCommand(newCampaignEshotCmd())
	campaignCmd.AddCommand(newCampaignSocialCmd())
	campaignCmd.AddCommand(newCampaignCalendarCmd())

	return campaignCmd
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func newCampaignEshotCmd() *cobra.Command {
	eshotCmd := &cobra.Command{
		Use:   "eshot",
		Short: "Generate a campaign email",
		Run: func(cmd *cobra.Command, args []string) {
			products, _ := cmd.Flags().GetStringSlice("products")
			campaignType, _ := cmd.Flags().GetString("type")
			urgency, _ := cmd.Flags().GetString("urgency")
			weather, _ := cmd.Flags().GetString("weather")

			planner := campaign.NewPlanner(nil)
			eshot := planner.GenerateEshot(campaign.EshotRequest{
				Products:       products,
				Type:           campaignType,
				Urgency:        urgency,
				WeatherContext: weather,
			})
			printJSON(eshot)
		},
	}
	eshotCmd.Flags().StringSlice("products", nil, "Products to feature, comma separated")
	eshotCmd.Flags().String("type", "promotional", "Campaign type: weather, promotional, seasonal")
	eshotCmd.Flags().String("urgency", "medium", "Urgency: high, medium, low")
	eshotCmd.Flags().String("weather", "", "Weather context for weather campaigns")
	return eshotCmd
}

func newCampaignSocialCmd() *cobra.Command {
	socialCmd := &cobra.Command{
		Use:   "social",
		Short: "Generate a social media post",
		Run: func(cmd *cobra.Command, args []string) {
			platform, _ := cmd.Flags().GetString("platform")
			postType, _ := cmd.Flags().GetString("type")
			products, _ := cmd.Flags().GetStringSlice("products")
			hashtags, _ := cmd.Flags().GetStringSlice("hashtags")
			weather, _ := cmd.Flags().GetString("weather")

			planner := campaign.NewPlanner(nil)
			post := planner.GenerateSocialPost(campaign.SocialRequest{
				Platform:       platform,
				Type:           postType,
				Products:       products,
				Hashtags:       hashtags,
				WeatherContext: weather,
			})
			printJSON(post)
		},
	}
	socialCmd.Flags().String("platform", "linkedin", "Platform: linkedin, facebook")
	socialCmd.Flags().String("type", "product_showcase", "Post type: product_showcase, promotional, weather_alert")
	socialCmd.Flags().StringSlice("products", nil, "Products to feature, comma separated")
	socialCmd.Flags().StringSlice("hashtags", nil, "Hashtags without the # prefix")
	socialCmd.Flags().String("weather", "", "Weather context for weather alerts")
	return socialCmd
}

func newCampaignCalendarCmd() *cobra.Command {
	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Generate the annual campaign calendar",
		Run: func(cmd *cobra.Command, args []string) {
			year, _ := cmd.Flags().GetInt("year")
			printJSON(campaign.Calendar(year))
		},
	}
	calendarCmd.Flags().Int("year", 0, "Calendar year (defaults to the current year)")
	return calendarCmd
}
