package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultLimit       = 300
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "cfb-meta-service/1.0"
	maxErrorBody       = 512
)
