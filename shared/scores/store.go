package scores

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/gameconfig"
)

const scoresKey = "scores"

// Record is one finished match.
type Record struct {
	Player     string                `json:"player"`
	Difficulty gameconfig.Difficulty `json:"difficulty"`
	Score      int                   `json:"score"`
}

// HighScore is one leaderboard row.
type HighScore struct {
	Name  string
	Score int
}

// Store is the leaderboard contract used by the match loop and menus.
type Store interface {
	InsertScore(player string, d gameconfig.Difficulty, score int) error
	HighScores(d gameconfig.Difficulty, n int) ([]HighScore, error)
}

// KVStore keeps every record, in insertion order, under a single key.
type KVStore struct {
	mu sync.Mutex
	kv KV
}

func NewKVStore(kv KV) *KVStore {
	return &KVStore{kv: kv}
}

func (s *KVStore) load() ([]Record, error) {
	data, err := s.kv.LoadItem(scoresKey)
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse scores: %w", err)
	}
	return records, nil
}

// InsertScore appends a record.
func (s *KVStore) InsertScore(player string, d gameconfig.Difficulty, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, Record{Player: player, Difficulty: d, Score: score})
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := s.kv.SaveItem(scoresKey, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

// HighScores returns the top n scores of a difficulty, highest first. Equal
// scores keep insertion order.
func (s *KVStore) HighScores(d gameconfig.Difficulty, n int) ([]HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []HighScore
	for _, r := range records {
		if r.Difficulty == d {
			out = append(out, HighScore{Name: r.Player, Score: r.Score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}
