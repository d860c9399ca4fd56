package main

import (
	"context"
	"flag"

	"yatube/internal/config"
	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"
	"yatube/internal/repository/redis"
	"yatube/internal/router"
	"yatube/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		log.Fatal().Err(err).Msg("connect mysql failed")
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Fatal().Err(err).Msg("connect redis failed")
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.FollowOutbox{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// 图片存储
	media, err := pkg.NewMediaStore(cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("init media store failed")
	}
	if err := media.EnsureBucket(context.Background()); err != nil {
		log.Warn().Err(err).Msg("ensure media bucket failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 关注事件：outbox -> kafka -> 邮件通知
	kafkaCfg := pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic}
	producer, err := pkg.NewKafkaProducer(kafkaCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init kafka producer failed")
	}
	defer producer.Close()

	relayer := service.NewOutboxRelayer(
		&mysql.OutboxRepository{DB: mysql.DB},
		service.KafkaSender(producer),
	)
	go relayer.Run(ctx)

	consumer := pkg.NewKafkaConsumer(kafkaCfg, "follow-notifier")
	defer consumer.Close()
	notifier := service.NewFollowNotifier(
		&mysql.UserRepository{DB: mysql.DB},
		&service.KafkaSource{Consumer: consumer},
		pkg.NewMailer(cfg.SMTP),
	)
	go notifier.Run(ctx)

	// Gin
	r := router.InitRouter(media)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("http server exited")
	}
}
