package service

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Skotchmaster/catalog_admin/internal/events"
	"github.com/Skotchmaster/catalog_admin/internal/models"
	"github.com/Skotchmaster/catalog_admin/internal/repo"
)

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Product{},
		&models.ProductImage{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return &repo.GormRepo{DB: InitTestDB(t)}
}

// fakePublisher records published events in place of a Kafka broker.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.ProductEvent
}

func (f *fakePublisher) PublishEvent(_ context.Context, _ string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := event.(events.ProductEvent); ok {
		f.events = append(f.events, e)
	}
	return nil
}

func (f *fakePublisher) Events() []events.ProductEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]events.ProductEvent, len(f.events))
	copy(out, f.events)
	return out
}
