package prompts

import (
	_ "embed"
)

//go:embed news_analyst.txt
var NewsAnalystInstructions string

//go:embed data_analyst.txt
var DataAnalystInstructions string

//go:embed policy_reviewer.txt
var PolicyReviewerInstructions string

//go:embed innovations_scout.txt
var InnovationsScoutInstructions string

//go:embed team_synthesis.txt
var TeamSynthesisInstructions string
