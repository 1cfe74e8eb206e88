package entity

import "fmt"

// AgentKind is the closed set of research personas. Adding a kind means
// adding a profile, an instruction template and a toolset in one place.
type AgentKind string

const (
	AgentNewsAnalyst      AgentKind = "news_analyst"
	AgentDataAnalyst      AgentKind = "data_analyst"
	AgentPolicyReviewer   AgentKind = "policy_reviewer"
	AgentInnovationsScout AgentKind = "innovations_scout"
	AgentTeam             AgentKind = "team"
)

// AllAgentKinds lists every kind in stable display order.
var AllAgentKinds = []AgentKind{
	AgentNewsAnalyst,
	AgentDataAnalyst,
	AgentPolicyReviewer,
	AgentInnovationsScout,
	AgentTeam,
}

func (k AgentKind) String() string {
	return string(k)
}

// ParseAgentKind maps a form value to an AgentKind.
func ParseAgentKind(s string) (AgentKind, error) {
	for _, k := range AllAgentKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown agent kind %q", s)
}
