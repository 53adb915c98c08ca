package game

import (
	"reflect"
	"testing"
)

func TestMessageLogPushAndAll(t *testing.T) {
	l := NewMessageLog()

	if l.Len() != 0 {
		t.Errorf("empty log Len() = %d, want 0", l.Len())
	}

	l.Push("first")
	l.Push("second")

	want := []string{"first", "second"}
	if got := l.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog()

	for _, msg := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		l.Push(msg)
	}

	if l.Len() != MessageLogCapacity {
		t.Fatalf("Len() = %d, want %d", l.Len(), MessageLogCapacity)
	}

	want := []string{"three", "four", "five", "six", "seven"}
	if got := l.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestMessageLogRecent(t *testing.T) {
	l := NewMessageLog()
	for _, msg := range []string{"one", "two", "three", "four", "five"} {
		l.Push(msg)
	}

	want := []string{"three", "four", "five"}
	if got := l.Recent(3); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent(3) = %v, want %v", got, want)
	}

	// Asking for more than retained returns what there is.
	l2 := NewMessageLog()
	l2.Push("only")
	if got := l2.Recent(3); !reflect.DeepEqual(got, []string{"only"}) {
		t.Errorf("Recent(3) on short log = %v", got)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseAwaitingInput, "awaiting_input"},
		{PhaseResolvingPlayerAction, "resolving_player_action"},
		{PhaseResolvingEnemyTurns, "resolving_enemy_turns"},
		{PhaseCheckingEndCondition, "checking_end_condition"},
		{PhaseGameOver, "game_over"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}
