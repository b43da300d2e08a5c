package storage

import (
	"errors"
	"testing"
)

func TestReadIntDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"missing", "", false, 0},
		{"numeric", "42", true, 42},
		{"non-numeric", "abc", true, 0},
		{"empty", "", true, 0},
		{"float", "1.5", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMemory()
			if tc.set {
				m.Set("k", tc.value)
			}
			got, err := ReadInt(m, "k")
			if err != nil {
				t.Fatalf("ReadInt() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ReadInt() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIncrementGamesPlayed(t *testing.T) {
	m := NewMemory()
	m.Set(KeyGamesPlayed, "garbage")

	for want := 1; want <= 3; want++ {
		got, err := IncrementGamesPlayed(m)
		if err != nil {
			t.Fatalf("IncrementGamesPlayed() error: %v", err)
		}
		if got != want {
			t.Errorf("IncrementGamesPlayed() = %d, want %d", got, want)
		}
	}
	if v, _, _ := m.Get(KeyGamesPlayed); v != "3" {
		t.Errorf("stored counter = %q, want \"3\"", v)
	}
}

func TestRecordHighScore(t *testing.T) {
	m := NewMemory()

	tests := []struct {
		score        int
		wantBest     int
		wantImproved bool
	}{
		{30, 30, true},
		{10, 30, false},
		{30, 30, false},
		{50, 50, true},
	}
	for _, tc := range tests {
		best, improved, err := RecordHighScore(m, "/snake", tc.score)
		if err != nil {
			t.Fatalf("RecordHighScore() error: %v", err)
		}
		if best != tc.wantBest || improved != tc.wantImproved {
			t.Errorf("RecordHighScore(%d) = %d, %v; want %d, %v", tc.score, best, improved, tc.wantBest, tc.wantImproved)
		}
	}
	if v, _, _ := m.Get("/snake-highscore"); v != "50" {
		t.Errorf("stored best = %q, want \"50\"", v)
	}
}

func TestJSONRecords(t *testing.T) {
	m := NewMemory()

	stats, err := ReadWordleStats(m)
	if err != nil || stats != (WordleStats{}) {
		t.Fatalf("missing stats = %+v, %v", stats, err)
	}

	m.Set(KeyWordleStats, "{not json")
	if stats, _ := ReadWordleStats(m); stats != (WordleStats{}) {
		t.Errorf("invalid JSON should read as zero, got %+v", stats)
	}

	want := TicTacToeScores{X: 2, O: 5, Draws: 1}
	if err := WriteJSON(m, KeyTicTacToeScores, want); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if raw, _, _ := m.Get(KeyTicTacToeScores); raw != `{"x":2,"o":5,"draws":1}` {
		t.Errorf("encoded scores = %s", raw)
	}
	got, _ := ReadTicTacToeScores(m)
	if got != want {
		t.Errorf("ReadTicTacToeScores() = %+v, want %+v", got, want)
	}
}

func TestJSONRecordsWithWrongFieldTypeReadAsZero(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
		read func(Gateway) (any, error)
		zero any
	}{
		{
			name: "wordle stats",
			key:  KeyWordleStats,
			raw:  `{"played":3,"won":"x","streak":2}`,
			read: func(g Gateway) (any, error) { return ReadWordleStats(g) },
			zero: WordleStats{},
		},
		{
			name: "tic-tac-toe scores",
			key:  KeyTicTacToeScores,
			raw:  `{"x":4,"o":"none","draws":1}`,
			read: func(g Gateway) (any, error) { return ReadTicTacToeScores(g) },
			zero: TicTacToeScores{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory()
			m.Set(tt.key, tt.raw)
			got, err := tt.read(m)
			if err != nil {
				t.Fatalf("read error: %v", err)
			}
			if got != tt.zero {
				t.Errorf("partly invalid record = %+v, want %+v", got, tt.zero)
			}
		})
	}
}

func TestReadJSONKeepsTargetOnBadRecord(t *testing.T) {
	m := NewMemory()
	m.Set(KeyWordleStats, `{"played":9,"won":true}`)

	stats := WordleStats{Played: 1, Won: 1, Streak: 1}
	if err := ReadJSON(m, KeyWordleStats, &stats); err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if stats != (WordleStats{Played: 1, Won: 1, Streak: 1}) {
		t.Errorf("target changed to %+v", stats)
	}

	if err := ReadJSON(m, KeyWordleStats, stats); err == nil {
		t.Error("ReadJSON into a non-pointer should fail")
	}
}

type failingGateway struct{}

func (failingGateway) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingGateway) Set(string, string) error         { return errors.New("disk gone") }

func TestGatewayErrorsPropagate(t *testing.T) {
	if _, err := ReadInt(failingGateway{}, "k"); err == nil {
		t.Error("ReadInt should surface gateway errors")
	}
	if _, err := IncrementGamesPlayed(failingGateway{}); err == nil {
		t.Error("IncrementGamesPlayed should surface gateway errors")
	}
}

func TestMemoryTopScores(t *testing.T) {
	m := NewMemory()
	m.SaveScore(ScoreEntry{GameID: "snake", Score: 10})
	m.SaveScore(ScoreEntry{GameID: "snake", Score: 30})
	m.SaveScore(ScoreEntry{GameID: "maze", Score: 99})

	top, _ := m.TopScores("snake", 1)
	if len(top) != 1 || top[0].Score != 30 {
		t.Errorf("TopScores() = %v", top)
	}
}
