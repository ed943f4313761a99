package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"steamwiki/internal/infra"
	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/request_models"
	"steamwiki/pkg/utils"
)

type UploadServiceInterface interface {
	UploadImage(ctx context.Context, caller *db_models.User, req request_models.UploadImageRequest) (string, error)
}

type UploadService struct {
	store  infra.ObjectStore
	policy *AccessPolicy
}

func NewUploadService(store infra.ObjectStore, policy *AccessPolicy) UploadServiceInterface {
	return &UploadService{
		store:  store,
		policy: policy,
	}
}

// UploadImage decodes a base64 payload (data-URI prefix tolerated) and
// stores it under a dated opaque key, returning the public URL.
func (s *UploadService) UploadImage(ctx context.Context, caller *db_models.User, req request_models.UploadImageRequest) (string, error) {
	if err := s.policy.Authorize(caller, PermAuthenticated, nil); err != nil {
		return "", err
	}

	if s.store == nil {
		return "", utils.ErrStorageUnavailable
	}

	data := req.Image
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}
	if data == "" {
		return "", utils.ErrMissingFields
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", utils.ErrMissingFields
	}

	filename := req.Filename
	if filename == "" {
		filename = "image.png"
	}

	ext := ExtensionOf(filename)
	key := fmt.Sprintf("wiki/%s/%s.%s",
		time.Now().Format("20060102"), strings.ReplaceAll(uuid.New().String(), "-", ""), ext)

	if err := s.store.Put(ctx, key, raw, ContentTypeForExtension(ext)); err != nil {
		log.Printf("Upload error: %v", err)
		return "", err
	}

	return s.store.PublicURL(key), nil
}

func ExtensionOf(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		return strings.ToLower(filename[idx+1:])
	}
	return "png"
}

func ContentTypeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
