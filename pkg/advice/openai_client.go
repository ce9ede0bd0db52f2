package advice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"garden/entities"
)

const fallbackAnswer = "The garden assistant is unavailable right now. General advice: keep watering on schedule, check leaves for pests, and harvest ripe fruit promptly."

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) Ask(question string, plants []entities.Plant, articles []Article) string {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a home-garden assistant who gives concise, practical answers about the user's plants."},
			{"role": "user", "content": renderPrompt(question, plants, articles)},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return fallbackAnswer
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return fallbackAnswer
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return fallbackAnswer
	}
	return content
}

func renderPrompt(question string, plants []entities.Plant, articles []Article) string {
	var sb strings.Builder
	sb.WriteString("QUESTION:\n")
	sb.WriteString(question)
	sb.WriteString("\n\nGARDEN (active plants):\n")
	for _, p := range plants {
		if p.IsRemoved {
			continue
		}
		fmt.Fprintf(&sb, "- %s (status %s, planted %s)\n", p.Name, p.Status, p.DatePlanted)
	}
	if len(articles) > 0 {
		sb.WriteString("\nREFERENCE NOTES:\n")
		for _, a := range articles {
			if sb.Len() > 6000 {
				break
			}
			sb.WriteString("---\n")
			sb.WriteString(a.Title)
			sb.WriteString("\n")
			sb.WriteString(a.Text)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
