package config

type Opportunity string

const (
	OpportunityStart      Opportunity = "START"
	OpportunityTrajectory Opportunity = "TRAJECTORY"
	OpportunitySummary    Opportunity = "SUMMARY"
	OpportunityEnd        Opportunity = "END"
)

func (o Opportunity) Valid() bool {
	switch o {
	case OpportunityStart, OpportunityTrajectory, OpportunitySummary, OpportunityEnd:
		return true
	}
	return false
}

type AchievementsConfig struct {
	Achievements []Achievement `yaml:"achievements"`
}

type Achievement struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Grade       int         `yaml:"grade" json:"grade"`
	Hide        bool        `yaml:"hide" json:"hide,omitempty"`
	Opportunity Opportunity `yaml:"opportunity" json:"opportunity"`
	Condition   string      `yaml:"condition" json:"condition"`
}
