package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/agentx-labs/leetadd/internal/problem"
)

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://leetcode.com/problems/two-sum", "two-sum", false},
		{"https://leetcode.com/problems/two-sum/", "two-sum", false},
		{"https://leetcode.com/problems/two-sum/description/?envType=daily", "two-sum", false},
		{"https://leetcode.cn/problems/merge-k-sorted-lists/solutions/", "merge-k-sorted-lists", false},
		{"https://leetcode.com/contest/", "", true},
		{"https://leetcode.com/problems/", "", true},
		{"://bad", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := SlugFromURL(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SlugFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestQuestion(t *testing.T) {
	var gotSlug string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if !strings.Contains(req.Query, "question(titleSlug: $titleSlug)") {
			t.Errorf("unexpected query %q", req.Query)
		}
		gotSlug = req.Variables["titleSlug"]

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"question":{
			"questionFrontendId":"1",
			"title":"Two Sum",
			"titleSlug":"two-sum",
			"difficulty":"Easy",
			"content":"<p>Given an array of integers <code>nums</code>.</p><ul><li>one</li></ul>",
			"topicTags":[{"name":"Array"},{"name":"Hash Table"}]}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, nil)
	p, err := c.Question(context.Background(), "two-sum")
	if err != nil {
		t.Fatalf("Question() error: %v", err)
	}
	if gotSlug != "two-sum" {
		t.Errorf("server saw slug %q", gotSlug)
	}

	want := &Problem{
		ID:         1,
		Title:      "Two Sum",
		Slug:       "two-sum",
		Difficulty: "Easy",
		Link:       "https://leetcode.com/problems/two-sum/",
		Content:    "Given an array of integers nums.\n\none",
		Topics:     []string{"Array", "Hash Table"},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Question() mismatch (-want +got):\n%s", diff)
	}

	tier, err := p.Tier()
	if err != nil || tier != problem.Easy {
		t.Errorf("Tier() = %q, %v; want easy", tier, err)
	}
}

func TestQuestionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"question":null}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, nil).Question(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestQuestionBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second, nil).Question(context.Background(), "two-sum")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("error = %v, want status 429", err)
	}
}

func TestHTMLToText(t *testing.T) {
	if got := htmlToText(""); got != "" {
		t.Errorf("htmlToText(\"\") = %q", got)
	}
	got := htmlToText("a<br>b")
	if got != "a\nb" {
		t.Errorf("htmlToText(a<br>b) = %q, want %q", got, "a\nb")
	}
}
