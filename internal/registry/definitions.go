package registry

import "github.com/bremenlabs/agentops/internal/schema"

// businessIntel monitors Thai Tone Trainer business KPIs.
var businessIntel = schema.Definition{
	ID:          "business-intel",
	Name:        "Business Monitor",
	Description: "Daily briefings, anomaly detection, and budget tracking for Thai Tone Trainer",
	Category:    schema.CategoryBusiness,
	WebhookRef:  "business-intel",
	Route:       schema.Route{Source: "KPIs", Destination: "Alerts"},
	Fields: []schema.Field{
		{
			Key:          "briefing_time",
			Label:        "Daily Briefing Time",
			Type:         schema.FieldText,
			Description:  "Time for daily kickoff report (CET)",
			DefaultValue: "09:00",
		},
		{
			Key:          "anomaly_threshold",
			Label:        "Anomaly Threshold (%)",
			Type:         schema.FieldSlider,
			Description:  "Traffic spike/drop trigger percentage",
			Min:          5,
			Max:          50,
			Step:         5,
			DefaultValue: float64(20),
		},
		{
			Key:          "budget_limit",
			Label:        "Monthly Budget (€)",
			Type:         schema.FieldText,
			Description:  "Maximum monthly spend cap",
			DefaultValue: "500",
		},
		{
			Key:          "budget_alert_threshold",
			Label:        "Budget Alert (%)",
			Type:         schema.FieldSlider,
			Description:  "Alert when spend reaches this percentage",
			Min:          50,
			Max:          95,
			Step:         5,
			DefaultValue: float64(90),
		},
	},
}

// careerScout watches EMEA job boards with geographic guardrails.
var careerScout = schema.Definition{
	ID:          "career-scout",
	Name:        "Career Portfolio Scout",
	Description: "EMEA-focused job monitoring with geographic and timezone guardrails",
	Category:    schema.CategoryCareer,
	WebhookRef:  "career-scout",
	Route:       schema.Route{Source: "Jobs", Destination: "Matches"},
	Fields: []schema.Field{
		{
			Key:         "regions_include",
			Label:       "Include Regions",
			Type:        schema.FieldMultiSelect,
			Description: "Regions to actively monitor",
			Options: []schema.Option{
				{Value: "EMEA", Label: "EMEA"},
				{Value: "UK", Label: "United Kingdom"},
				{Value: "DE", Label: "Germany"},
				{Value: "NL", Label: "Netherlands"},
			},
			DefaultValue: []string{"EMEA"},
		},
		{
			Key:         "regions_exclude",
			Label:       "Exclude Regions",
			Type:        schema.FieldMultiSelect,
			Description: "Regions to filter out",
			Options: []schema.Option{
				{Value: "US", Label: "United States"},
				{Value: "AU", Label: "Australia"},
				{Value: "APAC", Label: "Asia-Pacific"},
			},
			DefaultValue: []string{"US", "AU"},
		},
		{
			Key:          "bangkok_observatory",
			Label:        "Bangkok Observatory Mode",
			Type:         schema.FieldToggle,
			Description:  "Save Bangkok roles without applying",
			DefaultValue: true,
		},
		{
			Key:          "language_priority",
			Label:        "English Priority",
			Type:         schema.FieldSlider,
			Description:  "Weight towards English vs German roles",
			Min:          0,
			Max:          100,
			Step:         10,
			DefaultValue: float64(80),
		},
		{
			Key:   "engagement_types",
			Label: "Engagement Types",
			Type:  schema.FieldMultiSelect,
			Options: []schema.Option{
				{Value: "full-time", Label: "Full-time"},
				{Value: "part-time", Label: "Part-time"},
				{Value: "contract", Label: "Contract"},
				{Value: "fractional", Label: "Fractional"},
			},
			DefaultValue: []string{"full-time", "contract", "fractional"},
		},
		{
			Key:          "auto_apply",
			Label:        "Auto Easy Apply",
			Type:         schema.FieldToggle,
			Description:  "Automatically apply to Tier-1 matches",
			DefaultValue: true,
		},
	},
}

// linkedinResearcher tracks AI topics and drafts persona content.
var linkedinResearcher = schema.Definition{
	ID:          "linkedin-researcher",
	Name:        "LinkedIn Researcher",
	Description: "AI topic tracking and multi-persona content generation",
	Category:    schema.CategoryCareer,
	WebhookRef:  "linkedin-researcher",
	Route:       schema.Route{Source: "Sources", Destination: "Summaries"},
	Fields: []schema.Field{
		{
			Key:          "topics",
			Label:        "Topics of Interest",
			Type:         schema.FieldTags,
			Description:  "Keywords to track",
			DefaultValue: []string{"Frontier AI", "RAG", "Agentic AI", "AI Business Trends"},
		},
		{
			Key:   "personas",
			Label: "Content Personas",
			Type:  schema.FieldMultiSelect,
			Options: []schema.Option{
				{Value: "eu-regulation", Label: "EU Regulation (AI Act)"},
				{Value: "mittelstand", Label: "German Mittelstand"},
				{Value: "cto-bizdev", Label: "CTO/BizDev"},
			},
			DefaultValue: []string{"eu-regulation", "mittelstand", "cto-bizdev"},
		},
		{
			Key:   "output_format",
			Label: "Output Format",
			Type:  schema.FieldSelect,
			Options: []schema.Option{
				{Value: "review-deck", Label: "Review Deck (summaries + sources)"},
				{Value: "linkedin-posts", Label: "LinkedIn Posts"},
				{Value: "both", Label: "Both"},
			},
			DefaultValue: "both",
		},
	},
}
