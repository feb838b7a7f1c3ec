package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"housing-reviews/logger"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	HTTP       HTTPConfig
	Postgres   PostgresConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Summarizer SummarizerConfig
	JWT        JWTConfig
	MinIO      MinIOConfig
	SMTP       SMTPConfig
	Gateway    GatewayConfig
	Log        logger.Config
}

type HTTPConfig struct {
	Addr string
	// PublicBaseURL is the frontend origin used in QR codes and emails.
	PublicBaseURL string
}

type PostgresConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type RedisConfig struct {
	Host     string
	Port     string
	CacheTTL time.Duration
}

type KafkaConfig struct {
	Broker        string
	ReviewsTopic  string
	ConsumerGroup string
}

// SummarizerConfig is handed to the completion client at construction.
type SummarizerConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	Secure        bool
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// GatewayConfig holds the upstreams the api-gateway proxies to.
type GatewayConfig struct {
	HousingSvcURL   string
	AnalyticsSvcURL string
}

// Load reads an optional .env file and then the process environment.
func Load(serviceName string) *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to read .env: %v\n", err)
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr:          getEnv("HTTP_ADDR", ":8081"),
			PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "housing"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Broker:        getEnv("KAFKA_BROKER", "localhost:9092"),
			ReviewsTopic:  getEnv("KAFKA_REVIEWS_TOPIC", "reviews"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "agg-svc-consumer"),
		},
		Summarizer: SummarizerConfig{
			BaseURL:   getEnv("SUMMARIZER_BASE_URL", "https://api.openai.com/v1"),
			APIKey:    getEnv("SUMMARIZER_API_KEY", ""),
			Model:     getEnv("SUMMARIZER_MODEL", "gpt-3.5-turbo"),
			MaxTokens: getEnvAsInt("SUMMARIZER_MAX_TOKENS", 256),
			Timeout:   getEnvAsDuration("SUMMARIZER_TIMEOUT", 30*time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", "post-images"),
			PublicBaseURL: getEnv("MINIO_PUBLIC_URL", "http://localhost:9000/post-images"),
			Secure:        getEnvAsBool("MINIO_SECURE", false),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@offcampus.local"),
		},
		Gateway: GatewayConfig{
			HousingSvcURL:   getEnv("HOUSING_SVC_URL", "http://localhost:8081"),
			AnalyticsSvcURL: getEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		},
		Log: logger.Config{
			ServiceName: serviceName,
			Environment: getEnv("ENVIRONMENT", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", ""),
			MaxSizeMB:   getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups:  getEnvAsInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays:  getEnvAsInt("LOG_MAX_AGE_DAYS", 30),
		},
	}
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal(logger.EventDBConnection, "failed to connect to database", logger.Fields("error", err.Error()))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal(logger.EventDBConnection, "failed to ping database", logger.Fields("error", err.Error()))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal(logger.EventCacheConnection, "failed to connect to redis", logger.Fields("error", err.Error()))
	}

	return client
}

func MustInitMinio(cfg MinIOConfig) *minio.Client {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		logger.Fatal(logger.EventStorageConnection, "failed to init minio client", logger.Fields("error", err.Error()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logger.Fatal(logger.EventStorageConnection, "failed to reach minio", logger.Fields("error", err.Error()))
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Fatal(logger.EventStorageConnection, "failed to create bucket", logger.Fields("bucket", cfg.Bucket, "error", err.Error()))
		}
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   topic,
		GroupID: groupID,
	})
}

// NewKafkaWriter hashes on the message key so events for one housing stay ordered.
func NewKafkaWriter(cfg KafkaConfig, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
