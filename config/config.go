package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config содержит все настройки сервиса
type Config struct {
	AppName  string
	Version  string
	LogLevel string
	ENV      string

	Server struct {
		Host            string
		Port            int
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		RequestTimeout  time.Duration // таймаут обработки запроса
	}

	Logger struct {
		File       string // файл журнала, пусто - только stdout
		MaxSizeMB  int    `mapstructure:"maxSizeMB"`
		MaxBackups int
		MaxAgeDays int
	}

	Catalog struct {
		BaseURL      string        `mapstructure:"baseURL"`      // корень API каталога
		MediaBaseURL string        `mapstructure:"mediaBaseURL"` // сервер загруженных изображений
		FetchLimit   int           // сколько товаров запрашивать при открытии витрины
		Timeout      time.Duration // таймаут HTTP клиента
	}

	Storefront struct {
		PageSize          int
		Locale            string
		Currency          string
		LowStockThreshold int
	}

	Metrics struct {
		Enabled     bool
		ServiceName string
		Endpoint    string
	}

	Security struct {
		CORSAllowOrigins []string `mapstructure:"corsAllowOrigins"`
	}
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	configFile := "config"
	if configPath != "" {
		configFile = configPath
	}

	var cfg Config

	// Настройка Viper
	viper.SetConfigName(configFile)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("../config")
	viper.AddConfigPath("../../config")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Чтение конфигурационного файла
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
		// Продолжаем, если файл не найден, будем использовать только переменные окружения
	}

	setDefaults()
	bindEnvVariables()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка десериализации конфигурации: %w", err)
	}

	cfg.ENV = viper.GetString("env")
	if cfg.ENV == "" {
		cfg.ENV = "development"
		if envVar := os.Getenv("APP_ENV"); envVar != "" {
			cfg.ENV = envVar
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения, без которых витрина не работает
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("не задан catalog.baseURL")
	}
	if c.Storefront.PageSize < 1 || c.Storefront.PageSize > 100 {
		return fmt.Errorf("storefront.pageSize должен быть от 1 до 100, получено %d", c.Storefront.PageSize)
	}
	if c.Catalog.FetchLimit < 1 {
		return fmt.Errorf("catalog.fetchLimit должен быть положительным, получено %d", c.Catalog.FetchLimit)
	}
	return nil
}

// IsProduction сообщает, запущен ли сервис в продакшене
func (c *Config) IsProduction() bool {
	return c.ENV == "production"
}

// Addr адрес, на котором слушает HTTP сервер
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// setDefaults устанавливает значения по умолчанию
func setDefaults() {
	// Основные настройки
	viper.SetDefault("appName", "storefront-service")
	viper.SetDefault("version", "1.0.0")
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("env", "development")

	// Настройки сервера
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", "10s")
	viper.SetDefault("server.writeTimeout", "10s")
	viper.SetDefault("server.shutdownTimeout", "5s")
	viper.SetDefault("server.requestTimeout", "30s")

	// Настройки журнала
	viper.SetDefault("logger.file", "")
	viper.SetDefault("logger.maxSizeMB", 100)
	viper.SetDefault("logger.maxBackups", 3)
	viper.SetDefault("logger.maxAgeDays", 28)

	// Настройки API каталога
	viper.SetDefault("catalog.baseURL", "http://localhost:5000/api")
	viper.SetDefault("catalog.mediaBaseURL", "http://localhost:5000")
	viper.SetDefault("catalog.fetchLimit", 100)
	viper.SetDefault("catalog.timeout", "10s")

	// Настройки витрины
	viper.SetDefault("storefront.pageSize", 12)
	viper.SetDefault("storefront.locale", "es-CL")
	viper.SetDefault("storefront.currency", "CLP")
	viper.SetDefault("storefront.lowStockThreshold", 5)

	// Настройки метрик
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.serviceName", "storefront-service")
	viper.SetDefault("metrics.endpoint", "/metrics")

	// Настройки безопасности
	viper.SetDefault("security.corsAllowOrigins", []string{"*"})
}

// bindEnvVariables привязывает переменные окружения к конфигурации
func bindEnvVariables() {
	// Основные настройки
	viper.BindEnv("appName", "APP_NAME")
	viper.BindEnv("version", "APP_VERSION")
	viper.BindEnv("logLevel", "LOG_LEVEL")
	viper.BindEnv("env", "APP_ENV")

	// Настройки сервера
	viper.BindEnv("server.host", "SERVER_HOST")
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.readTimeout", "SERVER_READ_TIMEOUT")
	viper.BindEnv("server.writeTimeout", "SERVER_WRITE_TIMEOUT")
	viper.BindEnv("server.shutdownTimeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.BindEnv("server.requestTimeout", "SERVER_REQUEST_TIMEOUT")

	// Настройки журнала
	viper.BindEnv("logger.file", "LOG_FILE")
	viper.BindEnv("logger.maxSizeMB", "LOG_MAX_SIZE_MB")
	viper.BindEnv("logger.maxBackups", "LOG_MAX_BACKUPS")
	viper.BindEnv("logger.maxAgeDays", "LOG_MAX_AGE_DAYS")

	// Настройки API каталога
	viper.BindEnv("catalog.baseURL", "CATALOG_BASE_URL")
	viper.BindEnv("catalog.mediaBaseURL", "CATALOG_MEDIA_BASE_URL")
	viper.BindEnv("catalog.fetchLimit", "CATALOG_FETCH_LIMIT")
	viper.BindEnv("catalog.timeout", "CATALOG_TIMEOUT")

	// Настройки витрины
	viper.BindEnv("storefront.pageSize", "STOREFRONT_PAGE_SIZE")
	viper.BindEnv("storefront.locale", "STOREFRONT_LOCALE")
	viper.BindEnv("storefront.currency", "STOREFRONT_CURRENCY")
	viper.BindEnv("storefront.lowStockThreshold", "STOREFRONT_LOW_STOCK_THRESHOLD")

	// Настройки метрик
	viper.BindEnv("metrics.enabled", "METRICS_ENABLED")
	viper.BindEnv("metrics.serviceName", "METRICS_SERVICE_NAME")
	viper.BindEnv("metrics.endpoint", "METRICS_ENDPOINT")

	// Настройки безопасности
	viper.BindEnv("security.corsAllowOrigins", "CORS_ALLOW_ORIGINS")
}
