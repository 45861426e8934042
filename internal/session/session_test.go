package session

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-chat/internal/model"
)

func turn(i int) model.Turn {
	role := model.RoleUser
	if i%2 == 1 {
		role = model.RoleAssistant
	}
	return model.Turn{Role: role, Text: fmt.Sprintf("t%d", i)}
}

func TestAppend_RetentionKeepsMostRecent(t *testing.T) {
	for _, tc := range []struct {
		cap, n int
	}{
		{cap: 20, n: 25},
		{cap: 4, n: 4},
		{cap: 3, n: 10},
		{cap: 1, n: 2},
	} {
		t.Run(fmt.Sprintf("cap=%d,n=%d", tc.cap, tc.n), func(t *testing.T) {
			s := New(Settings{}, tc.cap)
			for i := 0; i < tc.n; i++ {
				s.Append(turn(i))
			}

			got := s.All()
			want := tc.n
			if want > tc.cap {
				want = tc.cap
			}
			require.Len(t, got, want)
			for i, tr := range got {
				assert.Equal(t, turn(tc.n-want+i), tr)
			}
		})
	}
}

func TestAppend_PairOverflow(t *testing.T) {
	s := New(Settings{}, 3)
	s.Append(turn(0), turn(1))
	s.Append(turn(2), turn(3))

	assert.Equal(t, []model.Turn{turn(1), turn(2), turn(3)}, s.All())
}

func TestAppend_Unbounded(t *testing.T) {
	s := New(Settings{}, 0)
	for i := 0; i < 100; i++ {
		s.Append(turn(i))
	}
	assert.Equal(t, 100, s.Len())
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := New(Settings{}, 0)
	s.Append(turn(0))

	got := s.All()
	got[0].Text = "mutated"

	assert.Equal(t, "t0", s.All()[0].Text)
}

func TestClear_PreservesSettings(t *testing.T) {
	s := New(Settings{SystemInstruction: "initial", Temperature: 0.7}, 10)
	s.SetInstruction("Be terse.")
	require.NoError(t, s.SetTemperature(0.2))
	s.Append(turn(0), turn(1))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.Equal(t, Settings{SystemInstruction: "Be terse.", Temperature: 0.2}, s.Settings())
}

func TestSetTemperature_Range(t *testing.T) {
	s := New(Settings{Temperature: 0.5}, 0)

	for _, v := range []float64{0, 0.1, 1} {
		assert.NoError(t, s.SetTemperature(v))
		assert.Equal(t, v, s.Settings().Temperature)
	}
	for _, v := range []float64{-0.1, 1.01, math.NaN()} {
		assert.ErrorIs(t, s.SetTemperature(v), ErrInvalidTemperature)
	}
	assert.Equal(t, 1.0, s.Settings().Temperature)
}

func TestExchange_SerialisesPairs(t *testing.T) {
	s := New(Settings{}, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Exchange(func() {
				s.Append(model.Turn{Role: model.RoleUser, Text: fmt.Sprint(i)})
				time.Sleep(time.Microsecond)
				s.Append(model.Turn{Role: model.RoleAssistant, Text: fmt.Sprint(i)})
			})
		}(i)
	}
	wg.Wait()

	turns := s.All()
	require.Len(t, turns, 100)
	for i := 0; i < len(turns); i += 2 {
		assert.Equal(t, model.RoleUser, turns[i].Role)
		assert.Equal(t, model.RoleAssistant, turns[i+1].Role)
		assert.Equal(t, turns[i].Text, turns[i+1].Text)
	}
}
