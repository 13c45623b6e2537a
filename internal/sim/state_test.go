package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_KeepsInsertionOrder(t *testing.T) {
	s := NewSet("b", "a")
	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("a"))
	s.Remove("b")
	assert.Equal(t, []string{"a", "c"}, s.Items())
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has("b"))
}

func TestSet_ZeroValueUsable(t *testing.T) {
	var s Set
	assert.False(t, s.Has("x"))
	s.Remove("x")
	s.Add("x")
	assert.True(t, s.Has("x"))
}

func TestSet_JSONIsAList(t *testing.T) {
	s := NewSet("z", "y")
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["z","y"]`, string(raw))

	var back Set
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s.Items(), back.Items())
}

func TestState_CloneSharesNothing(t *testing.T) {
	e := New(testBundle(), func() float64 { return 0 })
	e.Start(StartOptions{})
	e.Next()

	snap := e.Snapshot()
	live := e.State()

	snap.Stats["tech"] = 99
	snap.Flags.Add("cloned")
	snap.TalentTriggers["x"] = 3
	snap.Log[0].Title = "changed"
	snap.SeenEvents.Remove("quiet_day")

	assert.Equal(t, 0, live.Stats["tech"])
	assert.False(t, live.Flags.Has("cloned"))
	assert.NotContains(t, live.TalentTriggers, "x")
	assert.NotEqual(t, "changed", live.Log[0].Title)
	assert.True(t, live.SeenEvents.Has("quiet_day"))
}

func TestState_ContainsBySet(t *testing.T) {
	s := &State{
		Flags:        NewSet("f"),
		Tags:         NewSet("t"),
		Achievements: NewSet("a"),
		SeenEvents:   NewSet("e"),
		Talents:      []string{"tl"},
	}
	assert.True(t, s.Contains("FLAG", "f"))
	assert.True(t, s.Contains("TAG", "t"))
	assert.True(t, s.Contains("ACHV", "a"))
	assert.True(t, s.Contains("EVT", "e"))
	assert.True(t, s.Contains("TLT", "tl"))
	assert.False(t, s.Contains("TLT", "f"))
}
