package plans

/*
Selectors names the CSS selectors the Extractor walks. Item selectors are
resolved inside the matching row, item or group; all others are resolved
against the whole document and only the first match is read.
*/
type Selectors struct {
	Summary    SummarySelectors    `mapstructure:"summary"`
	Metrics    MetricsSelectors    `mapstructure:"metrics"`
	Difficulty DifficultySelectors `mapstructure:"difficulty"`
	Pace       PaceSelectors       `mapstructure:"pace"`
	Checkpoint CheckpointSelectors `mapstructure:"checkpoint"`
}

type SummarySelectors struct {
	Row   string `mapstructure:"row"`
	Title string `mapstructure:"title"`
	Text  string `mapstructure:"text"`
}

type MetricsSelectors struct {
	Item  string `mapstructure:"item"`
	Label string `mapstructure:"label"`
	Score string `mapstructure:"score"`
}

type DifficultySelectors struct {
	Heading string `mapstructure:"heading"`
	Level   string `mapstructure:"level"`
	Value   string `mapstructure:"value"`
}

type PaceSelectors struct {
	Heading string `mapstructure:"heading"`
	Label   string `mapstructure:"label"`
	Value   string `mapstructure:"value"`
}

type CheckpointSelectors struct {
	Group         string `mapstructure:"group"`
	Date          string `mapstructure:"date"`
	SunriseSunset string `mapstructure:"sunrise_sunset"`
	Item          string `mapstructure:"item"`
	Time          string `mapstructure:"time"`
	Name          string `mapstructure:"name"`
	Lodging       string `mapstructure:"lodging"`
}

// DefaultSelectors matches the markup of the YAMAP plan printing page.
func DefaultSelectors() Selectors {
	return Selectors{
		Summary: SummarySelectors{
			Row:   ".PlanSummaryTable__Row",
			Title: ".PlanSummaryTable__Title",
			Text:  ".PlanSummaryTable__Text",
		},
		Metrics: MetricsSelectors{
			Item:  ".PlanDataList__Item",
			Label: ".PlanDataList__Label",
			Score: ".PlanDataList__Score",
		},
		Difficulty: DifficultySelectors{
			Heading: ".CourseDifficulty__Heading",
			Level:   ".CourseDifficulty__Level",
			Value:   ".CourseDifficulty__Value",
		},
		Pace: PaceSelectors{
			Heading: ".CoursePace__Heading",
			Label:   ".CoursePace__Label",
			Value:   ".CoursePace__Value",
		},
		Checkpoint: CheckpointSelectors{
			Group:         ".CheckpointGroup",
			Date:          ".CheckpointGroup__Heading",
			SunriseSunset: ".CheckpointGroup__SunriseSunset",
			Item:          ".Checkpoint",
			Time:          ".Checkpoint__Time",
			Name:          ".Checkpoint__Name",
			Lodging:       ".Checkpoint__Lodging",
		},
	}
}
