package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/agentx-labs/leetadd/internal/problem"
)

// DefaultEndpoint is LeetCode's public GraphQL endpoint.
const DefaultEndpoint = "https://leetcode.com/graphql"

const questionQuery = `query questionData($titleSlug: String!) { question(titleSlug: $titleSlug) { questionFrontendId title titleSlug difficulty content topicTags { name } } }`

// ErrNotFound is returned when LeetCode has no problem for the slug.
var ErrNotFound = errors.New("problem not found")

// Problem is the metadata LeetCode publishes for one problem.
type Problem struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Difficulty string   `json:"difficulty"`
	Link       string   `json:"link"`
	Content    string   `json:"content"`
	Topics     []string `json:"topics"`
}

// Tier maps the published difficulty onto a local tier.
func (p *Problem) Tier() (problem.Difficulty, error) {
	return problem.ParseDifficulty(p.Difficulty)
}

// Client queries the GraphQL endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client. An empty endpoint selects DefaultEndpoint.
func New(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SlugFromURL extracts the title slug from a problem URL such as
// https://leetcode.com/problems/two-sum/description/.
func SlugFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "problems" && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("no problem slug in url %q", raw)
}

// Question fetches the problem identified by slug.
func (c *Client) Question(ctx context.Context, slug string) (*Problem, error) {
	payload := map[string]any{
		"query":     questionQuery,
		"variables": map[string]string{"titleSlug": slug},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	c.logger.Debug("querying leetcode", zap.String("endpoint", c.endpoint), zap.String("slug", slug))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
				Content            string `json:"content"`
				TopicTags          []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("%s: %w", slug, ErrNotFound)
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return &Problem{
		ID:         parseInt(q.QuestionFrontendID),
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: q.Difficulty,
		Link:       fmt.Sprintf("https://leetcode.com/problems/%s/", q.TitleSlug),
		Content:    strings.TrimSpace(htmlToText(q.Content)),
		Topics:     topics,
	}, nil
}

func parseInt(val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
