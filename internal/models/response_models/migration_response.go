package response_models

import "github.com/google/uuid"

type MigratedItem struct {
	ArticleID uuid.UUID `json:"article_id"`
	OldURL    string    `json:"old_url"`
	NewURL    string    `json:"new_url"`
}

type FailedItem struct {
	ArticleID uuid.UUID `json:"article_id"`
	URL       string    `json:"url"`
	Reason    string    `json:"reason"`
}

// MigrationResult is always returned in full, including under partial
// failure; one item failing never aborts the batch.
type MigrationResult struct {
	Total         int            `json:"total"`
	Migrated      int            `json:"migrated"`
	Skipped       int            `json:"skipped"`
	Failed        int            `json:"failed"`
	MigratedItems []MigratedItem `json:"migrated_items"`
	SkippedItems  []uuid.UUID    `json:"skipped_items"`
	FailedItems   []FailedItem   `json:"failed_items"`
}
