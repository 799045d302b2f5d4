package config

// ESPNConfig controls how we talk to the public scoreboard API.
type ESPNConfig struct {
	// BaseURL is empty to use the client's built-in endpoint.
	BaseURL string
	Timeout Duration
}

func loadESPN(src source) ESPNConfig {
	return ESPNConfig{
		BaseURL: src.stringOrDefault(keyESPNBaseURL, ""),
		Timeout: src.durationOrDefault(keyESPNTimeout, defaultESPNTimeout),
	}
}
