package selector

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/skill-transfer/skill-transfer/internal/skill"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// abc is the three-row fixture: A installed, B not installed, C installed.
func abc() []Choice {
	return []Choice{
		{Name: "A", SourcePath: "/src/A", Installed: true},
		{Name: "B", SourcePath: "/src/B", Installed: false},
		{Name: "C", SourcePath: "/src/C", Installed: true},
	}
}

func mustNew(t *testing.T, choices []Choice) *State {
	t.Helper()
	s, err := New(choices)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func press(s *State, keys ...Key) (Result, bool) {
	var (
		res  Result
		done bool
	)
	for _, k := range keys {
		res, done = s.HandleKey(k)
	}
	return res, done
}

func TestNew(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoChoices) {
		t.Errorf("New(nil) error = %v, want ErrNoChoices", err)
	}

	in := abc()
	in[1].Checked = true
	s := mustNew(t, in)

	if s.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", s.Cursor())
	}
	if s.Status() != StatusPending {
		t.Errorf("Status = %s, want pending", s.Status())
	}
	for _, c := range s.Choices() {
		if c.Checked {
			t.Errorf("choice %s should start unchecked", c.Name)
		}
	}

	// The caller's slice is not aliased.
	s.HandleKey(KeySpace)
	if in[0].Checked {
		t.Error("toggling must not mutate the input slice")
	}
}

func TestNavigationIsCircular(t *testing.T) {
	for n := 1; n <= 5; n++ {
		choices := make([]Choice, n)
		for i := range choices {
			choices[i] = Choice{Name: string(rune('A' + i))}
		}

		for start := 0; start < n; start++ {
			for _, k := range []Key{KeyUp, KeyDown} {
				s := mustNew(t, choices)
				for i := 0; i < start; i++ {
					s.HandleKey(KeyDown)
				}
				if s.Cursor() != start {
					t.Fatalf("n=%d: setup cursor = %d, want %d", n, s.Cursor(), start)
				}
				for i := 0; i < n; i++ {
					s.HandleKey(k)
				}
				if s.Cursor() != start {
					t.Errorf("n=%d start=%d: %d x %s ended at %d", n, start, n, k, s.Cursor())
				}
			}
		}
	}
}

func TestNavigationWraps(t *testing.T) {
	s := mustNew(t, abc())

	s.HandleKey(KeyUp)
	if s.Cursor() != 2 {
		t.Errorf("Up from 0 = %d, want 2", s.Cursor())
	}
	s.HandleKey(KeyDown)
	if s.Cursor() != 0 {
		t.Errorf("Down from 2 = %d, want 0", s.Cursor())
	}
}

func TestSpaceTogglesOnlyCursorEntry(t *testing.T) {
	s := mustNew(t, abc())
	press(s, KeyDown, KeySpace)

	got := s.Choices()
	if got[0].Checked || !got[1].Checked || got[2].Checked {
		t.Errorf("after toggling B: %+v", got)
	}

	// Move around and come back: only B flips again.
	press(s, KeyDown, KeyUp, KeyUp, KeyDown, KeySpace)
	for _, c := range s.Choices() {
		if c.Checked {
			t.Errorf("%s still checked after second toggle", c.Name)
		}
	}
}

func TestEnter(t *testing.T) {
	tests := []struct {
		name  string
		keys  []Key
		names []string
	}{
		{"no checks selects cursor entry", []Key{KeyDown, KeyEnter}, []string{"B"}},
		{"no checks wraps to last", []Key{KeyUp, KeyEnter}, []string{"C"}},
		{"checked entries ignore cursor", []Key{KeySpace, KeyDown, KeyDown, KeySpace, KeyUp, KeyEnter}, []string{"A", "C"}},
		{"untoggled entry is not selected", []Key{KeySpace, KeyDown, KeySpace, KeySpace, KeyEnter}, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, abc())
			res, done := press(s, tt.keys...)
			if !done {
				t.Fatal("expected done after Enter")
			}
			if res.Action != ActionImport {
				t.Errorf("Action = %s, want import", res.Action)
			}
			if !reflect.DeepEqual(res.Names(), tt.names) {
				t.Errorf("selected = %v, want %v", res.Names(), tt.names)
			}
			for _, c := range res.Selected {
				if !c.Checked {
					t.Errorf("selected entry %s should be checked", c.Name)
				}
			}
		})
	}
}

func TestScenarioImportBC(t *testing.T) {
	s := mustNew(t, abc())
	res, done := press(s, KeyDown, KeySpace, KeyDown, KeySpace, KeyEnter)

	if !done || res.Action != ActionImport {
		t.Fatalf("result = %+v, done = %v", res, done)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(res.Names(), want) {
		t.Errorf("selected = %v, want %v", res.Names(), want)
	}
	if res.Selected[0].SourcePath != "/src/B" {
		t.Errorf("SourcePath = %s, want /src/B", res.Selected[0].SourcePath)
	}
}

func TestDeleteOnNotInstalled(t *testing.T) {
	s := mustNew(t, abc())
	s.HandleKey(KeyDown)

	res, done := s.HandleKey(KeyDelete)
	if done {
		t.Fatalf("delete on B should not finish, got %+v", res)
	}
	if s.Status() != StatusPending {
		t.Errorf("Status = %s, want pending", s.Status())
	}
	if s.Err() == "" {
		t.Error("expected an error message")
	}
	if s.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", s.Cursor())
	}
	if !strings.Contains(plain(s.View()), DeleteNotInstalledMsg) {
		t.Error("error message should be rendered")
	}

	// Next key clears the message.
	s.HandleKey(KeyOther)
	if s.Err() != "" {
		t.Errorf("Err = %q after next key, want empty", s.Err())
	}
}

func TestDeleteOnInstalled(t *testing.T) {
	s := mustNew(t, abc())
	press(s, KeySpace, KeyDown, KeySpace, KeyDown)

	res, done := s.HandleKey(KeyDelete)
	if !done {
		t.Fatal("delete on installed entry should finish")
	}
	if res.Action != ActionDelete {
		t.Errorf("Action = %s, want delete", res.Action)
	}
	if len(res.Selected) != 1 || res.Selected[0].Name != "C" || !res.Selected[0].Checked {
		t.Errorf("Selected = %+v, want [C checked]", res.Selected)
	}
}

func TestQuitAndConfig(t *testing.T) {
	tests := []struct {
		key    Key
		action Action
	}{
		{KeyQuit, ActionExit},
		{KeyConfig, ActionConfig},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s := mustNew(t, abc())
			press(s, KeySpace, KeyDown, KeySpace)

			res, done := s.HandleKey(tt.key)
			if !done {
				t.Fatal("expected done")
			}
			if res.Action != tt.action {
				t.Errorf("Action = %s, want %s", res.Action, tt.action)
			}
			if res.Selected == nil || len(res.Selected) != 0 {
				t.Errorf("Selected = %#v, want empty", res.Selected)
			}
		})
	}
}

func TestDoneIgnoresFurtherKeys(t *testing.T) {
	s := mustNew(t, abc())
	first, _ := s.HandleKey(KeyQuit)

	for _, k := range []Key{KeyDown, KeySpace, KeyEnter, KeyConfig, KeyDelete} {
		res, done := s.HandleKey(k)
		if !done || res.Action != first.Action {
			t.Errorf("%s after done changed result to %+v", k, res)
		}
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor moved after done: %d", s.Cursor())
	}
	if got, ok := s.Result(); !ok || got.Action != ActionExit {
		t.Errorf("Result() = %+v, %v", got, ok)
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	s := mustNew(t, abc())
	before := s.View()
	if _, done := s.HandleKey(KeyOther); done {
		t.Fatal("KeyOther should not finish")
	}
	if s.View() != before {
		t.Error("KeyOther changed the rendered state")
	}
}

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"up":        KeyUp,
		"k":         KeyUp,
		"down":      KeyDown,
		"j":         KeyDown,
		" ":         KeySpace,
		"space":     KeySpace,
		"d":         KeyDelete,
		"delete":    KeyDelete,
		"backspace": KeyDelete,
		"enter":     KeyEnter,
		"q":         KeyQuit,
		"c":         KeyConfig,
		"x":         KeyOther,
		"Q":         KeyOther,
		"ctrl+c":    KeyOther,
	}
	for in, want := range tests {
		if got := ParseKey(in); got != want {
			t.Errorf("ParseKey(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestChoicesFromSkills(t *testing.T) {
	got := ChoicesFromSkills([]skill.Info{
		{Name: "pdf", SourcePath: "/s/pdf", Installed: true},
		{Name: "web", SourcePath: "/s/web"},
	})
	want := []Choice{
		{Name: "pdf", SourcePath: "/s/pdf", Installed: true},
		{Name: "web", SourcePath: "/s/web"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChoicesFromSkills = %+v, want %+v", got, want)
	}
}
