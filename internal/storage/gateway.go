package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Gateway is the key/value persistence contract shared by every game.
// Values are strings; last write wins per key.
type Gateway interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Well-known keys.
const (
	KeyGamesPlayed        = "total-games-played"
	KeyWordleStats        = "/wordle-stats"
	KeyWordleHighScore    = "/wordle-highscore"
	KeyTicTacToeScores    = "/tic-tac-toe-scores"
	KeyTicTacToeHighScore = "/tic-tac-toe-highscore"
)

// HighScoreKey returns the best-score key for a game path such as "/snake".
func HighScoreKey(path string) string {
	return path + "-highscore"
}

// ReadInt returns the decimal integer stored at key. A missing or
// non-numeric value reads as 0; only gateway failures are returned.
func ReadInt(g Gateway, key string) (int, error) {
	v, ok, err := g.Get(key)
	if err != nil {
		return 0, fmt.Errorf("storage: read %s: %w", key, err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// WriteInt stores n at key as a decimal string.
func WriteInt(g Gateway, key string, n int) error {
	if err := g.Set(key, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}

// IncrementGamesPlayed bumps the process-wide finished-games counter and
// returns the new total.
func IncrementGamesPlayed(g Gateway) (int, error) {
	n, err := ReadInt(g, KeyGamesPlayed)
	if err != nil {
		return 0, err
	}
	n++
	return n, WriteInt(g, KeyGamesPlayed, n)
}

// RecordHighScore stores score as the best for path when it beats the
// stored value. It returns the best score after the call.
func RecordHighScore(g Gateway, path string, score int) (best int, improved bool, err error) {
	key := HighScoreKey(path)
	best, err = ReadInt(g, key)
	if err != nil {
		return 0, false, err
	}
	if score <= best {
		return best, false, nil
	}
	if err := WriteInt(g, key, score); err != nil {
		return best, false, err
	}
	return score, true, nil
}

// WordleStats is the persisted word-game record.
type WordleStats struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Streak int `json:"streak"`
}

// TicTacToeScores is the persisted strategy-game scoreboard.
type TicTacToeScores struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// ReadJSON decodes the JSON object at key into v, which must be a non-nil
// pointer. Missing or malformed values leave v untouched; a record with
// any field of the wrong type counts as malformed.
func ReadJSON(g Gateway, key string, v any) error {
	dst := reflect.ValueOf(v)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return fmt.Errorf("storage: read %s: need a non-nil pointer, got %T", key, v)
	}

	raw, ok, err := g.Get(key)
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", key, err)
	}
	if !ok {
		return nil
	}

	fresh := reflect.New(dst.Elem().Type())
	if err := json.Unmarshal([]byte(raw), fresh.Interface()); err != nil {
		return nil
	}
	dst.Elem().Set(fresh.Elem())
	return nil
}

// WriteJSON encodes v as JSON at key.
func WriteJSON(g Gateway, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", key, err)
	}
	if err := g.Set(key, string(data)); err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}

// ReadWordleStats loads the word-game stats, zero when absent or invalid.
func ReadWordleStats(g Gateway) (WordleStats, error) {
	var s WordleStats
	if err := ReadJSON(g, KeyWordleStats, &s); err != nil {
		return WordleStats{}, err
	}
	return s, nil
}

// ReadTicTacToeScores loads the scoreboard, zero when absent or invalid.
func ReadTicTacToeScores(g Gateway) (TicTacToeScores, error) {
	var s TicTacToeScores
	if err := ReadJSON(g, KeyTicTacToeScores, &s); err != nil {
		return TicTacToeScores{}, err
	}
	return s, nil
}
