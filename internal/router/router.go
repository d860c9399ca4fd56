package router

import (
	"net/http"

	"yatube/internal/handler"
	"yatube/internal/middleware"
	"yatube/internal/repository/mysql"
	"yatube/internal/repository/redis"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(media handler.MediaUploader) *gin.Engine {
	r := gin.Default()

	userRepo := &mysql.UserRepository{DB: mysql.DB}
	groupRepo := &mysql.GroupRepository{DB: mysql.DB}
	postRepo := &mysql.PostRepository{DB: mysql.DB}
	commentRepo := &mysql.CommentRepository{DB: mysql.DB}
	followRepo := &mysql.FollowRepository{DB: mysql.DB}
	cache := redis.NewIndexCacheRepository()

	query := service.NewQueryService(postRepo, groupRepo, userRepo, commentRepo, followRepo, cache)
	authoring := service.NewPostService(postRepo, groupRepo, commentRepo, cache)
	followSvc := service.NewFollowService(followRepo, userRepo)
	userSvc := service.NewUserService(userRepo, &redis.UserRepository{})
	groupSvc := service.NewGroupService(groupRepo, userRepo)

	post := handler.NewPostHandler(query, authoring, media)
	follow := handler.NewFollowHandler(followSvc)
	user := handler.NewUserHandler(userSvc)
	group := handler.NewGroupHandler(groupSvc)

	// 公共页面带可选登录态（主页上要显示关注按钮状态）
	r.Use(middleware.OptionalAuthMiddleware())

	// 列表与详情
	r.GET("/", post.Index)
	r.GET("/group/", group.List)
	r.GET("/group/:slug/", post.GroupList)
	r.GET("/profile/:username/", post.Profile)
	r.GET("/posts/:id/", post.Detail)

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/create/", post.CreateForm)
		authed.POST("/create/", post.Create)
		authed.GET("/posts/:id/edit/", post.EditForm)
		authed.POST("/posts/:id/edit/", post.Edit)
		authed.POST("/posts/:id/comment/", post.AddComment)
		authed.GET("/follow/", post.Feed)
		authed.GET("/profile/:username/follow/", follow.Follow)
		authed.GET("/profile/:username/unfollow/", follow.Unfollow)
		authed.GET("/api/follow/relation", follow.Relation)
		authed.POST("/group/", group.Create)
		authed.POST("/api/user/logout", user.Logout)
		authed.POST("/api/auth/change-password", user.ChangePassword)
	}

	// 未知路径统一 404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
	})

	return r
}
