package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/fittrack/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketPlans    = []byte("plans")
	bucketWeights  = []byte("weights")
	bucketCheckIns = []byte("checkins")
)

var _ domain.Store = (*PlanStore)(nil)

// PlanStore implements domain.Store using BoltDB.
type PlanStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewPlanStore opens (or creates) the database at path.
// An empty path gives a memory-only store.
func NewPlanStore(path string) (*PlanStore, error) {
	if path == "" {
		return &PlanStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPlans, bucketWeights, bucketCheckIns} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PlanStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *PlanStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PlanStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PlanStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// values returns every raw value in bucket, ordered by key
func (s *PlanStore) values(bucket []byte) [][]byte {
	if s.db == nil {
		prefix := string(bucket) + ":"
		s.mu.RLock()
		keys := make([]string, 0)
		for k := range s.cache {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		out := make([][]byte, len(keys))
		for i, k := range keys {
			out[i] = s.cache[k]
		}
		s.mu.RUnlock()
		return out
	}

	var out [][]byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			data := make([]byte, len(v))
			copy(data, v)
			out = append(out, data)
			return nil
		})
	})
	return out
}

// === Plans ===

func (s *PlanStore) GetPlan(day string) (*domain.DayPlan, bool) {
	var plan domain.DayPlan
	if !s.get(bucketPlans, day, &plan) {
		return nil, false
	}
	return &plan, true
}

func (s *PlanStore) SavePlan(plan *domain.DayPlan) error {
	if plan == nil || plan.Day == "" {
		return fmt.Errorf("save plan: %w", domain.ErrPlanNotFound)
	}
	return s.set(bucketPlans, plan.Day, plan)
}

// === Weights (key: day:timestamp:id, sorts chronologically) ===

// Fixed width so keys sort by time; RFC3339Nano trims trailing zeros
const weightKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

func weightKey(e domain.WeightEntry) string {
	return fmt.Sprintf("%s:%s:%s", e.Day, e.CreatedAt.UTC().Format(weightKeyLayout), e.ID)
}

func (s *PlanStore) AddWeight(entry domain.WeightEntry) error {
	if !domain.ValidWeight(entry.Value) {
		return domain.ErrInvalidWeight
	}
	if !entry.Unit.Valid() {
		return domain.ErrInvalidUnit
	}
	return s.set(bucketWeights, weightKey(entry), entry)
}

// LatestWeight returns the most recent entry logged on day
func (s *PlanStore) LatestWeight(day string) (*domain.WeightEntry, bool) {
	entries := s.decodeWeights()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Day == day {
			e := entries[i]
			return &e, true
		}
	}
	return nil, false
}

// ListWeights returns up to limit entries, newest first. limit <= 0 returns all.
func (s *PlanStore) ListWeights(limit int) ([]domain.WeightEntry, error) {
	entries := s.decodeWeights()
	out := make([]domain.WeightEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *PlanStore) decodeWeights() []domain.WeightEntry {
	raw := s.values(bucketWeights)
	entries := make([]domain.WeightEntry, 0, len(raw))
	for _, data := range raw {
		var e domain.WeightEntry
		if json.Unmarshal(data, &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// === Check-ins ===

func (s *PlanStore) GetCheckInStatus(day string) domain.CheckInStatus {
	var status domain.CheckInStatus
	if !s.get(bucketCheckIns, day, &status) {
		return domain.CheckInPending
	}
	return status
}

func (s *PlanStore) SetCheckInStatus(day string, status domain.CheckInStatus) error {
	return s.set(bucketCheckIns, day, status)
}
