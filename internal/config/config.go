package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Workers struct {
		PoolSize  int           `yaml:"pool_size" default:"8"`
		QueueSize int           `yaml:"queue_size" default:"100"`
		RateLimit int           `yaml:"rate_limit" default:"120"` // edits per minute per session
		Timeout   time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"workers"`

	Engine struct {
		MaxInputBytes          int64         `yaml:"max_input_bytes" default:"1048576"`
		AnalysisTimeout        time.Duration `yaml:"analysis_timeout" default:"10s"`
		LowConfidenceThreshold float64       `yaml:"low_confidence_threshold" default:"0.5"`
		MaxSuggestions         int           `yaml:"max_suggestions" default:"10"`
		SessionIdleTimeout     time.Duration `yaml:"session_idle_timeout" default:"30m"`
	} `yaml:"engine"`

	Lexicon struct {
		Path string `yaml:"path"`
	} `yaml:"lexicon"`

	Cache struct {
		Enabled bool          `yaml:"enabled" default:"true"`
		TTL     time.Duration `yaml:"ttl" default:"1h"`
	} `yaml:"cache"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or
// $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Workers.PoolSize = 8
	config.Workers.QueueSize = 100
	config.Workers.RateLimit = 120
	config.Workers.Timeout = 10 * time.Second

	config.Engine.MaxInputBytes = 1 << 20
	config.Engine.AnalysisTimeout = 10 * time.Second
	config.Engine.LowConfidenceThreshold = 0.5
	config.Engine.MaxSuggestions = 10
	config.Engine.SessionIdleTimeout = 30 * time.Minute

	config.Cache.Enabled = true
	config.Cache.TTL = time.Hour

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if lexiconPath := os.Getenv("LEXICON_PATH"); lexiconPath != "" {
		c.Lexicon.Path = lexiconPath
	}

	if cacheEnabled := os.Getenv("CACHE_ENABLED"); cacheEnabled != "" {
		c.Cache.Enabled = cacheEnabled == "true" || cacheEnabled == "1"
	}

	if cacheTTL := os.Getenv("CACHE_TTL"); cacheTTL != "" {
		if ttl, err := time.ParseDuration(cacheTTL); err == nil {
			c.Cache.TTL = ttl
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if poolSize := os.Getenv("WORKER_POOL_SIZE"); poolSize != "" {
		if size, err := strconv.Atoi(poolSize); err == nil {
			c.Workers.PoolSize = size
		}
	}

	if analysisTimeout := os.Getenv("ANALYSIS_TIMEOUT"); analysisTimeout != "" {
		if timeout, err := time.ParseDuration(analysisTimeout); err == nil {
			c.Engine.AnalysisTimeout = timeout
		}
	}

	if maxInput := os.Getenv("MAX_INPUT_BYTES"); maxInput != "" {
		if n, err := strconv.ParseInt(maxInput, 10, 64); err == nil {
			c.Engine.MaxInputBytes = n
		}
	}
}
