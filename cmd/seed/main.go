package main

import (
	"context"
	"flag"
	"fmt"

	"yatube/internal/config"
	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// 开发环境造数：用户、分组、帖子、评论、关注边
func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	users := flag.Int("users", 10, "number of users")
	posts := flag.Int("posts", 50, "number of posts")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}
	if err := mysql.InitDB(cfg.MySQL.DSN); err != nil {
		log.Fatal().Err(err).Msg("connect mysql failed")
	}
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

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	groupRepo := &mysql.GroupRepository{DB: mysql.DB}
	postRepo := &mysql.PostRepository{DB: mysql.DB}
	commentRepo := &mysql.CommentRepository{DB: mysql.DB}
	followRepo := &mysql.FollowRepository{DB: mysql.DB}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	seeded := make([]*model.User, 0, *users)
	for i := 0; i < *users; i++ {
		u := &model.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Password: string(hash),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
		}
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Msg("seed user failed")
		}
		seeded = append(seeded, u)
	}

	groups := make([]*model.Group, 0, 5)
	for i := 0; i < 5; i++ {
		g := &model.Group{
			Slug:        fmt.Sprintf("%s-%d", gofakeit.Word(), i),
			Title:       gofakeit.Sentence(3),
			Description: gofakeit.Paragraph(1, 3, 10, " "),
		}
		if err := groupRepo.Create(g); err != nil {
			log.Fatal().Err(err).Msg("seed group failed")
		}
		groups = append(groups, g)
	}

	for i := 0; i < *posts; i++ {
		p := &model.Post{
			AuthorID: seeded[gofakeit.Number(0, len(seeded)-1)].ID,
			Text:     gofakeit.Paragraph(1, 5, 15, " "),
		}
		// 三分之二的帖子挂到分组
		if gofakeit.Number(0, 2) > 0 {
			p.GroupID = &groups[gofakeit.Number(0, len(groups)-1)].ID
		}
		if err := postRepo.Create(p); err != nil {
			log.Fatal().Err(err).Msg("seed post failed")
		}

		for j := 0; j < gofakeit.Number(0, 3); j++ {
			c := &model.Comment{
				PostID:   p.ID,
				AuthorID: seeded[gofakeit.Number(0, len(seeded)-1)].ID,
				Text:     gofakeit.Sentence(8),
			}
			if err := commentRepo.Create(c); err != nil {
				log.Fatal().Err(err).Msg("seed comment failed")
			}
		}
	}

	ctx := context.Background()
	for _, u := range seeded {
		for j := 0; j < gofakeit.Number(0, 4); j++ {
			other := seeded[gofakeit.Number(0, len(seeded)-1)]
			if other.ID == u.ID {
				continue
			}
			if _, err := followRepo.Follow(ctx, u.ID, other.ID); err != nil {
				log.Fatal().Err(err).Msg("seed follow failed")
			}
		}
	}

	log.Info().Int("users", len(seeded)).Int("posts", *posts).Msg("seed done")
}
