package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"steamwiki/internal/infra"
	"steamwiki/internal/models/db_models"
	"steamwiki/internal/models/response_models"
	"steamwiki/internal/repositories"
	"steamwiki/pkg/utils"
)

// Some image hosts reject Go's default agent, so fetches identify as a
// browser.
const migrationUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

type MigrationServiceInterface interface {
	MigrateAll(ctx context.Context, caller *db_models.User) (*response_models.MigrationResult, error)
}

type MigrationService struct {
	articleRepo repositories.ArticleRepository
	store       infra.ObjectStore
	policy      *AccessPolicy
	client      *http.Client
}

func NewMigrationService(articleRepo repositories.ArticleRepository, store infra.ObjectStore, policy *AccessPolicy) MigrationServiceInterface {
	return &MigrationService{
		articleRepo: articleRepo,
		store:       store,
		policy:      policy,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// MigrateAll walks every article carrying a preview image and relocates
// the binary into the current backend. Each item commits on its own, so
// partial failure never loses prior progress, and one item's failure
// never aborts the batch. The summary is a value, not an exception.
func (s *MigrationService) MigrateAll(ctx context.Context, caller *db_models.User) (*response_models.MigrationResult, error) {
	if err := s.policy.Authorize(caller, PermAdminOnly, nil); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, utils.ErrStorageUnavailable
	}

	articles, err := s.articleRepo.ListWithPreviewImage(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := &response_models.MigrationResult{
		Total:         len(articles),
		MigratedItems: []response_models.MigratedItem{},
		SkippedItems:  []uuid.UUID{},
		FailedItems:   []response_models.FailedItem{},
	}

	destinations := s.store.Locations()

	for i := range articles {
		article := &articles[i]

		if s.alreadyMigrated(article.PreviewImage, destinations) {
			result.Skipped++
			result.SkippedItems = append(result.SkippedItems, article.ID)
			continue
		}

		newURL, err := s.migrateOne(ctx, article)
		if err != nil {
			log.Printf("Migration failed for article %s: %v", article.ID, err)
			result.Failed++
			result.FailedItems = append(result.FailedItems, response_models.FailedItem{
				ArticleID: article.ID,
				URL:       article.PreviewImage,
				Reason:    err.Error(),
			})
			continue
		}

		result.Migrated++
		result.MigratedItems = append(result.MigratedItems, response_models.MigratedItem{
			ArticleID: article.ID,
			OldURL:    article.PreviewImage,
			NewURL:    newURL,
		})
	}

	log.Printf("Image migration finished: %d total, %d migrated, %d skipped, %d failed",
		result.Total, result.Migrated, result.Skipped, result.Failed)

	return result, nil
}

func (s *MigrationService) alreadyMigrated(imageURL string, destinations []string) bool {
	for _, destination := range destinations {
		if destination != "" && strings.Contains(imageURL, destination) {
			return true
		}
	}
	return false
}

// migrateOne copies the binary and commits the reference update
// immediately; callers treat any returned error as a per-item failure.
func (s *MigrationService) migrateOne(ctx context.Context, article *db_models.Article) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, article.PreviewImage, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", migrationUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	contentType, ext := sniffImageType(resp.Header.Get("Content-Type"), article.PreviewImage)

	key := fmt.Sprintf("migrated/%s.%s", strings.ReplaceAll(uuid.New().String(), "-", ""), ext)
	if err := s.store.Put(ctx, key, body, contentType); err != nil {
		return "", err
	}

	newURL := s.store.PublicURL(key)
	if err := s.articleRepo.UpdatePreviewImage(ctx, article.ID, newURL); err != nil {
		return "", err
	}

	return newURL, nil
}

// sniffImageType prefers the response header, falls back to the URL
// extension and defaults to png. Any image/* subtype from the header is
// kept as-is; only the extension fallback is whitelisted.
func sniffImageType(header, sourceURL string) (string, string) {
	if strings.HasPrefix(header, "image/") {
		sub := strings.TrimPrefix(header, "image/")
		if idx := strings.Index(sub, ";"); idx >= 0 {
			sub = sub[:idx]
		}
		sub = strings.TrimSpace(sub)
		if sub == "jpeg" {
			return "image/jpeg", "jpg"
		}
		if sub != "" {
			// svg+xml and friends carry a structured-syntax suffix that
			// does not belong in a file extension.
			ext := sub
			if idx := strings.Index(ext, "+"); idx >= 0 {
				ext = ext[:idx]
			}
			return "image/" + sub, ext
		}
	}

	trimmed := sourceURL
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	switch ext := ExtensionOf(trimmed); ext {
	case "jpg", "jpeg":
		return "image/jpeg", "jpg"
	case "gif", "webp":
		return "image/" + ext, ext
	}

	return "image/png", "png"
}
