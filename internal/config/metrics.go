package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(src source) MetricsConfig {
	return MetricsConfig{
		Enabled:      src.boolOrDefault(keyMetricsOn, true),
		Port:         src.stringOrDefault(keyMetricsPort, defaultMetricsPort),
		OtlpEndpoint: src.stringOrDefault(keyOtelEndpoint, ""),
		ServiceName:  src.stringOrDefault(keyOtelService, defaultServiceName),
		OtlpInsecure: src.boolOrDefault(keyOtelInsecure, true),
	}
}
