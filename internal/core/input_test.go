package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionQuit) {
		t.Errorf("Actions = %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop every action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRounds, "Rounds"},
		{ActionHelp, "Help"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
