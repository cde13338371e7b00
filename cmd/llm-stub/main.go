// Command llm-stub runs a local HTTP server that mimics the Anthropic
// messages API and the OpenAI chat completions API with canned summaries.
// Point the CLI at it with -llm.base to exercise the full pipeline without
// spending tokens:
//
//	ADDR=:8081 go run ./cmd/llm-stub &
//	summarizesite -llm.base http://localhost:8081 -llm.key test example.com
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

type messagesRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	System    []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

// titlePattern pulls the page title back out of the user prompt the
// summarizer builds, so the canned reply can echo it.
var titlePattern = regexp.MustCompile(`titled (.+?)\. The contents`)

func cannedSummary(prompt string) string {
	title := "Untitled"
	if m := titlePattern.FindStringSubmatch(prompt); m != nil {
		title = m[1]
	}
	return "# " + title + "\n\nA canned summary served by llm-stub for local testing.\n\n## News\n- Nothing happened."
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/messages", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req messagesRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt := ""
		for _, msg := range req.Messages {
			if msg.Role != "user" {
				continue
			}
			for _, block := range msg.Content {
				if block.Type == "text" {
					prompt = block.Text
				}
			}
		}
		if prompt == "" {
			http.Error(w, "missing user message", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg_stub",
			"type":  "message",
			"role":  "assistant",
			"model": model,
			"content": []map[string]any{
				{"type": "text", "text": cannedSummary(prompt)},
			},
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"usage":         map[string]int{"input_tokens": 10, "output_tokens": 25},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt := ""
		for _, msg := range req.Messages {
			if msg.Role == "user" {
				prompt = msg.Content
			}
		}
		if prompt == "" {
			http.Error(w, "missing user message", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": cannedSummary(prompt)}},
			},
		})
	})

	log.Printf("llm-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
