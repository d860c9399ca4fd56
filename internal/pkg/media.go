package pkg

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MediaConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// MediaStore 帖子图片存储，落到对象存储并返回引用路径
type MediaStore struct {
	client *minio.Client
	bucket string
}

func NewMediaStore(cfg MediaConfig) (*MediaStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MediaStore{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket 启动时建桶（开发阶段 OK）
func (s *MediaStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload 保存图片，对象名用 uuid 防冲突，返回可检索路径
func (s *MediaStore) Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	object := fmt.Sprintf("posts/%s%s", uuid.NewString(), filepath.Ext(filename))
	if _, err := s.client.PutObject(ctx, s.bucket, object, r, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", err
	}
	return "/" + s.bucket + "/" + object, nil
}
