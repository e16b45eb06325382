// Package orm wraps gorm in a small chainable query builder, so application
// repositories never touch *gorm.DB directly and caching/pagination stay in
// one place.
package orm

import (
	"time"

	"github.com/shashiranjanraj/kirana/pkg/database"
	"gorm.io/gorm"
)

// Cacher is the minimal cache interface the query builder needs.
// Wired at boot from pkg/cache; left nil, Cache() falls through to the DB.
type Cacher interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration) error
	Forget(keys ...string)
}

// CacheStore is set once during server boot (see internal/server).
var CacheStore Cacher

// ForgetCache drops keys from the wired store. Writers call this so cached
// reads and their invalidation always go through the same store.
func ForgetCache(keys ...string) {
	if CacheStore != nil {
		CacheStore.Forget(keys...)
	}
}

// Query is an immutable chainable query over the global database handle.
type Query struct {
	db *gorm.DB
}

// DB returns a Query rooted at the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use returns a Query rooted at an explicit gorm handle (tests, transactions).
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Not(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Not(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

// Preload eager-loads an association, e.g. Preload("Brand").
func (q *Query) Preload(name string) *Query {
	return &Query{db: q.db.Preload(name)}
}

// ── Terminal operations ──────────────────────────────────────────────────────

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

func (q *Query) Create(value interface{}) error {
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	return q.db.Save(value).Error
}

// Updates applies a column map to rows matched by the current conditions.
func (q *Query) Updates(values map[string]interface{}) error {
	return q.db.Updates(values).Error
}

// Delete hard-deletes the matched rows. Unscoped on purpose: the catalog has
// no soft-delete semantics.
func (q *Query) Delete(value interface{}) error {
	return q.db.Unscoped().Delete(value).Error
}

// ── Pagination ───────────────────────────────────────────────────────────────

// Pagination describes one page of a collection result.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

const (
	defaultPerPage = 25
	maxPerPage     = 100
)

// GetWithPagination fills dest with one page of results and returns the
// pagination envelope. page is 1-based; perPage is clamped to [1, 100].
func (q *Query) GetWithPagination(dest interface{}, page, perPage int) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var total int64
	if err := q.db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	err := q.db.Limit(perPage).Offset((page - 1) * perPage).Find(dest).Error
	if err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}, nil
}

// ── Cached reads ─────────────────────────────────────────────────────────────

// Cache runs the query through CacheStore: a hit fills dest without touching
// the database, a miss executes the query and stores the result under key.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if CacheStore != nil && CacheStore.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	if CacheStore != nil {
		_ = CacheStore.Set(key, dest, ttl)
	}
	return nil
}
