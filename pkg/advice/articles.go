package advice

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Library holds user-ingested care articles fed to the assistant as context.
// Bounded: the oldest article falls off when max is exceeded.
type Library struct {
	mu       sync.Mutex
	max      int
	maxBytes int
	articles []Article
}

func NewLibrary(max, maxBytes int) *Library {
	if max <= 0 {
		max = 10
	}
	if maxBytes <= 0 {
		maxBytes = 1500000
	}
	return &Library{max: max, maxBytes: maxBytes}
}

func (l *Library) Articles() []Article {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Article(nil), l.articles...)
}

// IngestURL fetches the page, extracts its main text and stores it as an
// article. Title overrides the page title when nonempty.
func (l *Library) IngestURL(u, title string) (Article, error) {
	text, pageTitle, err := fetchMainText(u, l.maxBytes)
	if err != nil {
		return Article{}, err
	}
	if title == "" {
		title = pageTitle
	}
	a := Article{Title: title, URL: u, Text: text}
	l.mu.Lock()
	l.articles = append(l.articles, a)
	if len(l.articles) > l.max {
		l.articles = l.articles[len(l.articles)-l.max:]
	}
	l.mu.Unlock()
	return a, nil
}

func fetchMainText(u string, maxBytes int) (string, string, error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(u)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(maxBytes) {
		return "", "", fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return "", "", err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") && !strings.Contains(ct, "text/plain") {
		return "", "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	if strings.Contains(ct, "text/plain") {
		return string(b), guessTitleFromText(string(b)), nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	// main/article first, whole document as fallback
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	text := cleanWhitespace(strings.Join(parts, "\n"))
	return text, title, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func guessTitleFromText(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
