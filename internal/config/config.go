package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Service Service `yaml:"service"`
	Server  Server  `yaml:"server"`
}

type Service struct {
	Title    string `yaml:"title"`
	Abstract string `yaml:"abstract"`
	// MapPreviewEnabled advertises a WMS endpoint deployed next to this
	// service; collection documents then carry a map preview URL.
	MapPreviewEnabled bool `yaml:"mapPreviewEnabled"`
}

type Server struct {
	Listen      string `yaml:"listen"`
	PostgresDsn string `yaml:"postgresDsn"`

	// CacheBackend selects the schema cache: memory, redis or memcached.
	CacheBackend   string `yaml:"cacheBackend"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisPassword  string `yaml:"redisPassword"`
	RedisDB        int    `yaml:"redisDB"`
	MemcachedAddr  string `yaml:"memcachedAddr"`
	SchemaCacheTTL int    `yaml:"schemaCacheTTL"` // seconds

	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Server.CacheBackend == "" {
		config.Server.CacheBackend = "memory"
	}
	if config.Server.SchemaCacheTTL <= 0 {
		config.Server.SchemaCacheTTL = 600
	}

	return config, nil
}
