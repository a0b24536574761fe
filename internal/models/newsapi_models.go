package models

// NewsAPIEverythingResponse is the body of a successful /v2/everything call.
type NewsAPIEverythingResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []NewsAPIArticle `json:"articles"`
}

// NewsAPIArticle fields are pointers because NewsAPI sends null for missing values.
type NewsAPIArticle struct {
	Source struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	URL         *string `json:"url"`
	PublishedAt string  `json:"publishedAt"`
}

// NewsAPIErrorResponse is returned by NewsAPI alongside a non-200 status.
type NewsAPIErrorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
}

// ToArticle flattens an upstream article, defaulting absent fields to "".
func (a NewsAPIArticle) ToArticle() Article {
	return Article{
		Title:       deref(a.Title),
		Description: deref(a.Description),
		Content:     deref(a.Content),
		URL:         deref(a.URL),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
