package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
)

// Package bookmarks persists per-user saved articles. The pipeline has
// no dependency on this store; articles are produced identically
// whether or not they are bookmarked.

const rootBucket = "bookmarks"

// Store is the bookmark persistence surface.
type Store interface {
	Add(userID string, article domain.Article) error
	Remove(userID, articleURL string) error
	List(userID string) ([]domain.Article, error)
	Close() error
}

// NewStore creates the configured bookmark backend.
func NewStore(typ, path string) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt bookmark store requires a path")
		}
		return openBolt(path)
	default:
		return nil, fmt.Errorf("unsupported bookmark store type %q", typ)
	}
}

type noopStore struct{}

func (noopStore) Add(string, domain.Article) error      { return nil }
func (noopStore) Remove(string, string) error           { return nil }
func (noopStore) List(string) ([]domain.Article, error) { return nil, nil }
func (noopStore) Close() error                          { return nil }

// boltStore keeps one nested bucket per user, keyed by article URL with
// the JSON-encoded article as value.
type boltStore struct {
	db *bolt.DB
}

func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bookmark directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(rootBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bookmark bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Add stores the article under the user's bucket. Re-adding the same
// URL overwrites the prior entry.
func (b *boltStore) Add(userID string, article domain.Article) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is empty")
	}
	if strings.TrimSpace(article.URL) == "" {
		return fmt.Errorf("article url is empty")
	}

	payload, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encode article: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		user, err := userBucket(tx, userID, true)
		if err != nil {
			return err
		}
		return user.Put([]byte(article.URL), payload)
	})
}

// Remove deletes the bookmark for the given URL. Removing a URL that
// was never bookmarked is not an error.
func (b *boltStore) Remove(userID, articleURL string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("user id is empty")
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		user, err := userBucket(tx, userID, false)
		if err != nil || user == nil {
			return err
		}
		return user.Delete([]byte(articleURL))
	})
}

// List returns the user's bookmarked articles in key order.
func (b *boltStore) List(userID string) ([]domain.Article, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("user id is empty")
	}

	var out []domain.Article
	err := b.db.View(func(tx *bolt.Tx) error {
		user, err := userBucket(tx, userID, false)
		if err != nil || user == nil {
			return err
		}
		return user.ForEach(func(_, v []byte) error {
			var article domain.Article
			if err := json.Unmarshal(v, &article); err != nil {
				return fmt.Errorf("decode bookmark: %w", err)
			}
			out = append(out, article)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func userBucket(tx *bolt.Tx, userID string, create bool) (*bolt.Bucket, error) {
	root := tx.Bucket([]byte(rootBucket))
	if root == nil {
		return nil, fmt.Errorf("bookmark bucket missing")
	}
	if create {
		return root.CreateBucketIfNotExists([]byte(userID))
	}
	return root.Bucket([]byte(userID)), nil
}
