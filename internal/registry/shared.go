package registry

import "github.com/bremenlabs/agentops/internal/schema"

// SharedKey identifies the cross-agent configuration section.
const SharedKey = "bremen-protocol"

// sharedFields are the Bremen Protocol settings applied across every
// agent: protected focus time, mobility, and guardrails.
var sharedFields = []schema.Field{
	{
		Key:          "deep_work_start",
		Label:        "Deep Work Start",
		Type:         schema.FieldText,
		Description:  "Start of protected focus time",
		DefaultValue: "09:00",
	},
	{
		Key:          "deep_work_end",
		Label:        "Deep Work End",
		Type:         schema.FieldText,
		Description:  "End of protected focus time",
		DefaultValue: "12:00",
	},
	{
		Key:          "high_status_whitelist",
		Label:        "High-Status Whitelist",
		Type:         schema.FieldTextarea,
		Description:  "Domains/names that bypass Deep Work silence (one per line)",
		DefaultValue: "",
	},
	{
		Key:   "mobility_mode",
		Label: "Mobility Mode",
		Type:  schema.FieldSelect,
		Options: []schema.Option{
			{Value: "ebike", Label: "E-Bike First"},
			{Value: "transit", Label: "Transit Only"},
			{Value: "auto", Label: "Auto (weather-based)"},
		},
		DefaultValue: "auto",
	},
	{
		Key:          "weather_override",
		Label:        "Rain → Transit Override",
		Type:         schema.FieldToggle,
		Description:  "Automatically switch to transit in rain/ice",
		DefaultValue: true,
	},
	{
		Key:          "toddler_buffer",
		Label:        "Toddler Buffer (minutes)",
		Type:         schema.FieldSlider,
		Description:  "Extra time added for appointments with children",
		Min:          0,
		Max:          30,
		Step:         5,
		DefaultValue: float64(15),
	},
}
