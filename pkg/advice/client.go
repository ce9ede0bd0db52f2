// Package advice is the thin AI-assistant integration: a question about the
// garden goes out with the current plants and any ingested care articles as
// context, and an answer string comes back. Failures always degrade to a
// placeholder advisory string; asking for advice can never break an
// operation.
package advice

import "garden/entities"

type Client interface {
	Ask(question string, plants []entities.Plant, articles []Article) string
}

// Article is a piece of reference text pulled in by the user to ground the
// assistant's answers.
type Article struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Text  string `json:"-"`
}
