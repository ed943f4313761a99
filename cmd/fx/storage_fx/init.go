package storage_fx

import (
	"log"

	"go.uber.org/fx"

	"steamwiki/internal/config"
	"steamwiki/internal/infra"
)

var Module = fx.Provide(
	provideObjectStore)

// A missing storage configuration keeps the API up; upload and
// migration calls then answer with a storage error.
func provideObjectStore(cfg *config.Config) infra.ObjectStore {
	store, err := infra.NewObjectStore(cfg)
	if err != nil {
		log.Printf("Object storage disabled: %v", err)
		return nil
	}
	return store
}
