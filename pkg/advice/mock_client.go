package advice

import (
	"fmt"
	"strings"
	"time"

	"garden/entities"
)

type mockClient struct{}

// NewMock is a deterministic rule-based assistant used when no LLM endpoint
// is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Ask(question string, plants []entities.Plant, _ []Article) string {
	var tips []string
	q := strings.ToLower(question)
	for _, p := range plants {
		if p.IsRemoved {
			continue
		}
		name := strings.ToLower(p.Name)
		if !strings.Contains(q, name) && q != "" && !strings.Contains(q, "garden") {
			continue
		}
		if planted, err := time.Parse(time.RFC3339, p.DatePlanted); err == nil {
			age := int(time.Since(planted).Hours() / 24)
			tips = append(tips, fmt.Sprintf("Your %s was planted %d days ago.", p.Name, age))
		}
		if strings.Contains(name, "basil") {
			tips = append(tips, "Once a young basil plant has six to eight sets of leaves, pinch off the top set to encourage branching and fuller growth.")
		}
		if p.Status == "Fruiting" {
			tips = append(tips, fmt.Sprintf("%s is fruiting: keep the water consistent and consider a potassium-rich fertilizer.", p.Name))
		}
	}
	if len(tips) == 0 {
		return "Keep watering on schedule and check your plants daily; ask about a specific plant for tailored tips."
	}
	return strings.Join(tips, " ")
}
