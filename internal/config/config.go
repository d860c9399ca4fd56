package config

import (
	"os"

	"yatube/internal/pkg"

	"gopkg.in/yaml.v2"
)

type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type Config struct {
	HTTPAddr string          `yaml:"http_addr"`
	MySQL    MySQLConfig     `yaml:"mysql"`
	Redis    RedisConfig     `yaml:"redis"`
	Kafka    KafkaConfig     `yaml:"kafka"`
	SMTP     pkg.SMTPConfig  `yaml:"smtp"`
	Media    pkg.MediaConfig `yaml:"media"`
}

// Default 开发环境缺省配置
func Default() *Config {
	return &Config{
		HTTPAddr: ":8080",
		MySQL: MySQLConfig{
			DSN: "user:password@tcp(127.0.0.1:3306)/yatube?charset=utf8mb4&parseTime=True",
		},
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
		},
		Kafka: KafkaConfig{
			Brokers: []string{"127.0.0.1:9092"},
			Topic:   "follow-events",
		},
		SMTP: pkg.SMTPConfig{
			Host: "127.0.0.1",
			Port: 587,
			From: "NoReply <no-reply@example.com>",
		},
		Media: pkg.MediaConfig{
			Endpoint:  "127.0.0.1:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "yatube-media",
		},
	}
}

// Load 读取 yaml 配置，文件不存在时用缺省值
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
