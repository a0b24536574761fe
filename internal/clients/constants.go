package clients

import "time"

const (
	USER_AGENT           = "researchflow-client/1.0 (+https://github.com/spacesedan/researchflow)"
	NEWS_API_PAGE_SIZE   = 5
	NEWS_API_SORT_BY     = "popularity"
	NEWS_API_LANGUAGE    = "en"
	DEFAULT_HTTP_TIMEOUT = 60 * time.Second
)
