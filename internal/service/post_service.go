package service

import (
	"context"

	"yatube/internal/model"
	"yatube/internal/pkg"
)

// PostService 发帖/编辑/评论，作者身份一律来自登录态
type PostService struct {
	repo     PostStore
	groups   GroupStore
	comments CommentStore
	cache    PageCache
}

func NewPostService(repo PostStore, groups GroupStore, comments CommentStore, cache PageCache) *PostService {
	return &PostService{
		repo:     repo,
		groups:   groups,
		comments: comments,
		cache:    cache,
	}
}

// CreatePost 创建帖子。正文必填，分组可空，图片为媒体存储返回的路径。
func (s *PostService) CreatePost(ctx context.Context, authorID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	if verr := pkg.ValidatePostText(text); verr != nil {
		return nil, verr
	}
	if groupID != nil {
		if _, err := s.groups.FindByID(*groupID); err != nil {
			return nil, &pkg.ValidationError{Fields: []pkg.FieldError{{Field: "group", Message: "invalid choice"}}}
		}
	}

	post := &model.Post{
		AuthorID: authorID,
		GroupID:  groupID,
		Text:     text,
		Image:    image,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return post, nil
}

// EditPost 编辑帖子。非作者返回 ErrForbidden，id 和作者不可变；image 为空时保留原图。
func (s *PostService) EditPost(ctx context.Context, editorID, postID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if post.AuthorID != editorID {
		return nil, ErrForbidden
	}
	if verr := pkg.ValidatePostText(text); verr != nil {
		return nil, verr
	}
	if groupID != nil {
		if _, err := s.groups.FindByID(*groupID); err != nil {
			return nil, &pkg.ValidationError{Fields: []pkg.FieldError{{Field: "group", Message: "invalid choice"}}}
		}
	}

	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return post, nil
}

// AddComment 给帖子添加评论，帖子不存在时返回 ErrNotFound
func (s *PostService) AddComment(ctx context.Context, authorID, postID uint64, text string) (*model.Comment, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if verr := pkg.ValidateCommentText(text); verr != nil {
		return nil, verr
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// 写路径统一清首页缓存，保证读己之写
func (s *PostService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Clear(ctx)
	}
}
