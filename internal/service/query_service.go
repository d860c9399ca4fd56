package service

import (
	"context"
	"encoding/json"
	"errors"

	"yatube/internal/model"
	"yatube/internal/pkg"

	"gorm.io/gorm"
)

// PostPage 列表页载荷（page_obj 契约）
type PostPage struct {
	Posts []model.Post `json:"posts"`
	pkg.Page
}

// ProfileView 作者主页载荷
type ProfileView struct {
	Author         *model.User
	Page           *PostPage
	CountPosts     int64
	CountFollowers int64
	CountFollowing int64
	Following      bool
}

// PostDetailView 帖子详情载荷
type PostDetailView struct {
	Post       *model.Post
	CountPosts int64
	Comments   []model.Comment
}

// QueryService 只读列表视图的组装
type QueryService struct {
	posts    PostStore
	groups   GroupStore
	users    UserStore
	comments CommentStore
	follows  FollowStore
	cache    PageCache
}

func NewQueryService(posts PostStore, groups GroupStore, users UserStore, comments CommentStore, follows FollowStore, cache PageCache) *QueryService {
	return &QueryService{
		posts:    posts,
		groups:   groups,
		users:    users,
		comments: comments,
		follows:  follows,
		cache:    cache,
	}
}

// Index 全站帖子列表，20s 短缓存兜住热点首页
func (s *QueryService) Index(ctx context.Context, page int) (*PostPage, error) {
	if s.cache != nil {
		if b, ok, err := s.cache.Get(ctx, page); err == nil && ok {
			var pp PostPage
			if err := json.Unmarshal(b, &pp); err == nil {
				return &pp, nil
			}
		}
	}

	pp, err := s.pageOf(s.posts.CountAll, s.posts.ListAll, page)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if b, err := json.Marshal(pp); err == nil {
			_ = s.cache.Set(ctx, page, b)
		}
	}
	return pp, nil
}

// GroupPosts 分组帖子列表，slug 未知时返回 ErrNotFound
func (s *QueryService) GroupPosts(ctx context.Context, slug string, page int) (*model.Group, *PostPage, error) {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	pp, err := s.pageOf(
		func() (int64, error) { return s.posts.CountByGroup(group.ID) },
		func(offset, limit int) ([]model.Post, error) { return s.posts.ListByGroup(group.ID, offset, limit) },
		page,
	)
	if err != nil {
		return nil, nil, err
	}
	return group, pp, nil
}

// Profile 作者主页：帖子列表 + 计数 + 观察者的关注状态
func (s *QueryService) Profile(ctx context.Context, username string, viewerID uint64, page int) (*ProfileView, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, mapNotFound(err)
	}

	pp, err := s.pageOf(
		func() (int64, error) { return s.posts.CountByAuthor(author.ID) },
		func(offset, limit int) ([]model.Post, error) { return s.posts.ListByAuthor(author.ID, offset, limit) },
		page,
	)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Author:     author,
		Page:       pp,
		CountPosts: pp.Count,
	}
	if view.CountFollowers, err = s.follows.CountFollowers(ctx, author.ID); err != nil {
		return nil, err
	}
	if view.CountFollowing, err = s.follows.CountFollowing(ctx, author.ID); err != nil {
		return nil, err
	}
	if viewerID != 0 && viewerID != author.ID {
		if view.Following, err = s.follows.IsFollowing(ctx, viewerID, author.ID); err != nil {
			return nil, err
		}
	}
	return view, nil
}

// PostDetail 帖子详情：帖子 + 作者总帖数 + 评论
func (s *QueryService) PostDetail(ctx context.Context, postID uint64) (*PostDetailView, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	count, err := s.posts.CountByAuthor(post.AuthorID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(post.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetailView{Post: post, CountPosts: count, Comments: comments}, nil
}

// Feed 关注流：当前用户关注的作者的帖子
func (s *QueryService) Feed(ctx context.Context, userID uint64, page int) (*PostPage, error) {
	return s.pageOf(
		func() (int64, error) { return s.posts.CountFeed(userID) },
		func(offset, limit int) ([]model.Post, error) { return s.posts.ListFeed(userID, offset, limit) },
		page,
	)
}

func (s *QueryService) pageOf(count func() (int64, error), list func(offset, limit int) ([]model.Post, error), page int) (*PostPage, error) {
	total, err := count()
	if err != nil {
		return nil, err
	}
	pg, offset := pkg.Paginate(total, page)
	posts, err := list(offset, pkg.PostsPerPage)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return &PostPage{Posts: posts, Page: pg}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
