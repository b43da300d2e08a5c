package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-engines/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string          { return s.id }
func (s stubGame) Title() string       { return "Stub " + s.id }
func (s stubGame) Path() string        { return "/" + s.id }
func (s stubGame) Render(*core.Screen) {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func(Options) (Game, error) { return stubGame{id: "stub-a"}, nil })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}
	info, ok := Info("stub-a")
	if !ok || info.Title != "Stub stub-a" || info.Path != "/stub-a" || info.Timed {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	g, err := Create("stub-a", Options{})
	if err != nil || g.ID() != "stub-a" {
		t.Errorf("Create() = %v, %v", g, err)
	}

	if _, err := Create("missing", Options{}); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(Options) (Game, error) { return stubGame{id: "stub-dup"}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func(Options) (Game, error) { return stubGame{id: "stub-dup"}, nil })
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("bad config")
	Register("stub-err", func(opts Options) (Game, error) {
		if opts.ConfigPath != "" {
			return nil, boom
		}
		return stubGame{id: "stub-err"}, nil
	})

	if _, err := Create("stub-err", Options{ConfigPath: "x.yaml"}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, want wrapped %v", err, boom)
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func(Options) (Game, error) { return stubGame{id: "stub-z"}, nil })
	Register("stub-b", func(Options) (Game, error) { return stubGame{id: "stub-b"}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}
