// Package seeder reconciles local row counts against the JSONPlaceholder
// reference dataset. Given a target count it inserts exactly the deficit and
// never deletes; shrinking a collection is out of its contract.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/placehub/placehub/models"
)

// Client fetches collections from the placeholder API. Every request carries
// the caller's context and a hard client timeout so a dead upstream cannot
// pin a request handler.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a Client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) fetch(ctx context.Context, resource string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+resource, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetch %s: unexpected status %s", resource, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// Seeder performs the reconcile-and-insert routine per resource.
type Seeder struct {
	db     *gorm.DB
	client *Client
}

// New creates a Seeder over the given store and API client.
func New(db *gorm.DB, client *Client) *Seeder {
	return &Seeder{db: db, client: client}
}

// plan returns the half-open window [lo, hi) of the fetched collection to
// insert, given the current local count, the requested target and the number
// of records available upstream. The window is zero-indexed: topping up from
// 3 to 5 inserts records 3 and 4.
func plan(current, target, available int) (lo, hi int) {
	if target <= current {
		return 0, 0
	}
	lo = current
	hi = target
	if hi > available {
		hi = available
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// seedResource counts local rows, fetches and inserts the deficit inside one
// transaction, and returns the first target rows in id order. With no
// deficit the upstream is never contacted.
func seedResource[P any, M any](ctx context.Context, s *Seeder, resource string, convert func(P) M, target int) ([]M, error) {
	var model M
	var current int64
	if err := s.db.Model(&model).Count(&current).Error; err != nil {
		return nil, fmt.Errorf("count %s: %w", resource, err)
	}

	if target > int(current) {
		var payload []P
		if err := s.client.fetch(ctx, resource, &payload); err != nil {
			return nil, err
		}
		lo, hi := plan(int(current), target, len(payload))
		if lo < hi {
			rows := make([]M, 0, hi-lo)
			for _, p := range payload[lo:hi] {
				rows = append(rows, convert(p))
			}
			err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return tx.Create(&rows).Error
			})
			if err != nil {
				return nil, fmt.Errorf("insert %s: %w", resource, err)
			}
		}
	}

	var out []M
	if err := s.db.Order("id").Limit(target).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	return out, nil
}

// Users reconciles the users table up to target rows.
func (s *Seeder) Users(ctx context.Context, target int) ([]models.User, error) {
	return seedResource(ctx, s, "users", userPayload.model, target)
}

// Posts reconciles the posts table up to target rows.
func (s *Seeder) Posts(ctx context.Context, target int) ([]models.Post, error) {
	return seedResource(ctx, s, "posts", postPayload.model, target)
}

// Comments reconciles the comments table up to target rows.
func (s *Seeder) Comments(ctx context.Context, target int) ([]models.Comment, error) {
	return seedResource(ctx, s, "comments", commentPayload.model, target)
}

// Albums reconciles the albums table up to target rows.
func (s *Seeder) Albums(ctx context.Context, target int) ([]models.Album, error) {
	return seedResource(ctx, s, "albums", albumPayload.model, target)
}

// Photos reconciles the photos table up to target rows.
func (s *Seeder) Photos(ctx context.Context, target int) ([]models.Photo, error) {
	return seedResource(ctx, s, "photos", photoPayload.model, target)
}

// Todos reconciles the todos table up to target rows.
func (s *Seeder) Todos(ctx context.Context, target int) ([]models.Todo, error) {
	return seedResource(ctx, s, "todos", todoPayload.model, target)
}
