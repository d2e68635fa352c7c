package domain

const (
	APIKeyName        = "OPENAI_API_KEY"
	APIKeyPlaceholder = "your_openai_api_key_here"
	APIKeyPrefix      = "sk-"
)

// NewConfigFile builds the .env template around the supplied API key. An empty
// key is replaced by APIKeyPlaceholder.
func NewConfigFile(apiKey string) ConfigFile {
	if apiKey == "" {
		apiKey = APIKeyPlaceholder
	}

	return ConfigFile{
		Header: []string{
			"Advanced Sentiment Analysis System - Environment Configuration",
			"Created by sentiment-setup",
		},
		Sections: []ConfigSection{
			{
				Title: "OpenAI API Configuration (REQUIRED)",
				Entries: []ConfigEntry{
					{Key: APIKeyName, Value: apiKey, Sensitive: true},
				},
			},
			{
				Title: "Sentiment Analysis Thresholds (Optional - defaults provided)",
				Entries: []ConfigEntry{
					{Key: "SENTIMENT_CONFIDENCE_THRESHOLD", Value: "0.7"},
					{Key: "ESCALATION_RATE_THRESHOLD", Value: "0.15"},
					{Key: "PROCESSING_TIME_THRESHOLD", Value: "5.0"},
					{Key: "ERROR_RATE_THRESHOLD", Value: "0.05"},
				},
			},
			{
				Title: "Production Configuration (Optional)",
				Entries: []ConfigEntry{
					{Key: "ENVIRONMENT", Value: "development"},
					{Key: "MAX_CONCURRENT_REQUESTS", Value: "100"},
					{Key: "RATE_LIMIT_REQUESTS_PER_MINUTE", Value: "1000"},
					{Key: "RATE_LIMIT_BURST_CAPACITY", Value: "50"},
				},
			},
			{
				Title: "Monitoring Configuration (Optional)",
				Entries: []ConfigEntry{
					{Key: "METRICS_COLLECTION_ENABLED", Value: "true"},
				},
			},
			{
				Title: "Logging Configuration (Optional)",
				Entries: []ConfigEntry{
					{Key: "LOG_LEVEL", Value: "INFO"},
					{Key: "LOG_FORMAT", Value: "json"},
				},
			},
			{
				Title: "Cache Configuration (Optional)",
				Entries: []ConfigEntry{
					{Key: "CACHE_ENABLED", Value: "true"},
					{Key: "CACHE_TTL_SECONDS", Value: "300"},
				},
			},
			{
				Title: "Performance Configuration (Optional)",
				Entries: []ConfigEntry{
					{Key: "BATCH_SIZE_DEFAULT", Value: "100"},
					{Key: "MAX_WORKERS_DEFAULT", Value: "10"},
					{Key: "PROCESSING_TIMEOUT_SECONDS", Value: "30"},
				},
			},
		},
	}
}
