package registry

import (
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                       { return g.id }
func (g fakeGame) Title() string                    { return "Fake " + g.id }
func (g fakeGame) Size() core.Vec2                  { return core.V(10, 10) }
func (g fakeGame) Reset(core.RuntimeConfig)         {}
func (g fakeGame) Update(*core.InputState, float64) {}
func (g fakeGame) Render(*render.List)              {}
func (g fakeGame) State() core.GameStatus           { return core.GameStatus{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game { return fakeGame{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID = %q, expected zz-fake", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = info.Title == "Fake zz-fake"
		}
	}
	if !found {
		t.Error("List() should include the title of the registered game")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return fakeGame{id: "zz-b"} })
	Register("zz-a", func() Game { return fakeGame{id: "zz-a"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("unknown game should be an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
}
