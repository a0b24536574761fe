package models

import (
	"encoding/json"
	"strings"
)

const (
	DEFAULT_RESULT_TITLE = "Search Result"
	MISSING_RESULT_TITLE = "No title"
)

type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ResultItem is one structured entry as a search backend or model reports it.
// Nil fields were absent upstream.
type ResultItem struct {
	Title   *string `json:"title"`
	Link    *string `json:"link"`
	Snippet *string `json:"snippet"`
}

type AgentResponseKind int

const (
	AgentResponseText AgentResponseKind = iota
	AgentResponseList
	AgentResponseKeyed
)

func (k AgentResponseKind) String() string {
	switch k {
	case AgentResponseList:
		return "list"
	case AgentResponseKeyed:
		return "keyed"
	default:
		return "text"
	}
}

// AgentResponse is what one search agent run produced: free text, a bare list
// of results, or a mapping that carries its results under "results".
type AgentResponse struct {
	Kind  AgentResponseKind
	Text  string
	Items []ResultItem
}

func TextResponse(text string) AgentResponse {
	return AgentResponse{Kind: AgentResponseText, Text: text}
}

func ListResponse(items []ResultItem) AgentResponse {
	return AgentResponse{Kind: AgentResponseList, Items: items}
}

func KeyedResponse(items []ResultItem) AgentResponse {
	return AgentResponse{Kind: AgentResponseKeyed, Items: items}
}

// DecodeAgentResponse classifies raw agent output once. A JSON list of objects
// becomes List, a JSON object with a "results" list becomes Keyed, a JSON string
// becomes Text of its value, and anything else is kept verbatim as Text.
func DecodeAgentResponse(raw string) AgentResponse {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TextResponse(raw)
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal([]byte(trimmed), &s); err == nil {
			return TextResponse(s)
		}
	case '[':
		var items []ResultItem
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return ListResponse(items)
		}
	case '{':
		var keyed struct {
			Results *[]ResultItem `json:"results"`
		}
		if err := json.Unmarshal([]byte(trimmed), &keyed); err == nil && keyed.Results != nil {
			return KeyedResponse(*keyed.Results)
		}
	}

	return TextResponse(raw)
}

// Normalize turns any response shape into uniform records with every field set.
func (r AgentResponse) Normalize() []SearchResult {
	switch r.Kind {
	case AgentResponseList, AgentResponseKeyed:
		results := make([]SearchResult, 0, len(r.Items))
		for _, item := range r.Items {
			results = append(results, item.normalize())
		}
		return results
	default:
		return []SearchResult{{
			Title:   DEFAULT_RESULT_TITLE,
			Link:    "",
			Snippet: r.Text,
		}}
	}
}

func (i ResultItem) normalize() SearchResult {
	title := MISSING_RESULT_TITLE
	if i.Title != nil {
		title = *i.Title
	}
	return SearchResult{
		Title:   title,
		Link:    deref(i.Link),
		Snippet: deref(i.Snippet),
	}
}

// NewResultItem builds a fully populated item.
func NewResultItem(title, link, snippet string) ResultItem {
	return ResultItem{Title: &title, Link: &link, Snippet: &snippet}
}
