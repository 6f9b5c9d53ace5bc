package performance

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// TopicStats counts attempts and correct answers for one topic.
type TopicStats struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// Accuracy is correct/attempted on a 0..1 scale, 0 when unattempted.
func (s TopicStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// Store keeps per-quiz (level_subject key) per-topic statistics and persists
// them as pretty-printed JSON.
type Store struct {
	path   string
	logger *zap.Logger
	data   map[string]map[string]TopicStats
}

// Open loads the store at path, or at ~/.revquiz/performance.json when path
// is empty. A missing or empty file yields a fresh store; a corrupted file
// is logged as a warning and replaced by a fresh store on the next save.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".revquiz", "performance.json")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &Store{
		path:   path,
		logger: logger,
		data:   map[string]map[string]TopicStats{},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return store, nil
	}

	if err := json.Unmarshal(raw, &store.data); err != nil {
		logger.Warn("performance file is corrupted, starting fresh",
			zap.String("path", path), zap.Error(err))
		store.data = map[string]map[string]TopicStats{}
	}
	return store, nil
}

// Path returns where the store persists.
func (s *Store) Path() string { return s.path }

// Record tallies one attempt for a topic under a quiz key.
func (s *Store) Record(key, topic string, correct bool) {
	topics, ok := s.data[key]
	if !ok {
		topics = map[string]TopicStats{}
		s.data[key] = topics
	}
	stats := topics[topic]
	stats.Attempted++
	if correct {
		stats.Correct++
	}
	topics[topic] = stats
}

// Keys lists quiz keys with recorded data, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Topics returns a copy of the stats recorded under a quiz key.
func (s *Store) Topics(key string) map[string]TopicStats {
	out := map[string]TopicStats{}
	for topic, stats := range s.data[key] {
		out[topic] = stats
	}
	return out
}

// Empty reports whether nothing has been recorded.
func (s *Store) Empty() bool { return len(s.data) == 0 }

// Save writes the store to disk as indented JSON, creating the directory if
// needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	return encoder.Encode(s.data)
}

// Clear wipes all recorded data and persists an empty, valid document so the
// next run starts clean.
func (s *Store) Clear() error {
	s.data = map[string]map[string]TopicStats{}
	return s.Save()
}
