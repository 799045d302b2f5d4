package config

import "time"

const (
	envConfigFile = "CONFIG_FILE"

	keyPort           = "port"
	keyProvider       = "provider"
	keyScoreboardPath = "scoreboard_path"
	keyESPNBaseURL    = "espn_base_url"
	keyESPNTimeout    = "espn_timeout"
	keyDefaultTop     = "default_top"
	keyMetricsPort    = "metrics_port"
	keyMetricsOn      = "metrics_enabled"
	keyOtelEndpoint   = "otel_exporter_otlp_endpoint"
	keyOtelService    = "otel_service_name"
	keyOtelInsecure   = "otel_exporter_otlp_insecure"
	keyCORSOrigins    = "cors_allowed_origins"
	keyLogLevel       = "log_level"
	keyLogFormat      = "log_format"
	keyPollEnabled    = "poll_enabled"
	keyPollInterval   = "poll_interval"

	ProviderFixture = "fixture"
	ProviderESPN    = "espn"
	ProviderFile    = "file"

	defaultPort        = "4000"
	defaultProvider    = ProviderFixture
	defaultESPNTimeout = 10 * Duration(time.Second)
	defaultTop         = 10
	defaultMetricsPort = "9090"
	defaultServiceName = "cfb-meta-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	// One scoreboard request every two minutes.
	defaultPollInterval = 2 * Duration(time.Minute)
)

var defaultCORSOrigins = []string{"*"}
