package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/client/models"
)

func kitsN(n int) []models.Kit {
	out := make([]models.Kit, n)
	for i := range out {
		out[i] = models.Kit{ID: string(rune('a' + i)), Kind: models.KindFull, CreditsCharged: 7}
	}
	return out
}

func TestDashboard_Load_AllSucceed(t *testing.T) {
	f := &fakeAPI{
		balance:  func() (int, error) { return 42, nil },
		me:       func() (*models.Me, error) { return &models.Me{Sub: "u1", FullName: "Ada"}, nil },
		listKits: func() ([]models.Kit, error) { return kitsN(7), nil },
	}
	st := NewDashboard(f).Load(context.Background())

	require.NotNil(t, st.Balance)
	assert.Equal(t, 42, *st.Balance)
	assert.Equal(t, "Ada", st.User.FullName)
	assert.Equal(t, 7, st.KitCount())
	assert.Len(t, st.Recent(), RecentKits)
	assert.Equal(t, "a", st.Recent()[0].ID)
	assert.False(t, st.ShowEmpty())
	assert.ElementsMatch(t, []string{"balance", "me", "listKits"}, f.Calls())
}

func TestDashboard_Load_IndependentFailures(t *testing.T) {
	f := &fakeAPI{
		balance: func() (int, error) { return 0, &api.Error{Status: 500, Message: "HTTP 500"} },
		me:      func() (*models.Me, error) { return &models.Me{Sub: "u1"}, nil },
		listKits: func() ([]models.Kit, error) {
			return nil, errors.New("boom")
		},
	}
	st := NewDashboard(f).Load(context.Background())

	assert.Nil(t, st.Balance)
	assert.Equal(t, "HTTP 500", st.BalanceErr)
	assert.NotNil(t, st.User)
	assert.Empty(t, st.UserErr)
	assert.Equal(t, "boom", st.KitsErr)
	assert.False(t, st.ShowEmpty())
}

func TestDashboard_Load_ConcurrentAndEmpty(t *testing.T) {
	// Each fetch waits for the others to start, so a sequential Load would deadlock.
	started := make(chan struct{}, 3)
	wait := func() {
		started <- struct{}{}
		for len(started) < 3 {
			time.Sleep(time.Millisecond)
		}
	}
	f := &fakeAPI{
		balance:  func() (int, error) { wait(); return 1, nil },
		me:       func() (*models.Me, error) { wait(); return &models.Me{Sub: "u"}, nil },
		listKits: func() ([]models.Kit, error) { wait(); return []models.Kit{}, nil },
	}

	done := make(chan DashboardState)
	go func() { done <- NewDashboard(f).Load(context.Background()) }()

	select {
	case st := <-done:
		assert.True(t, st.ShowEmpty())
		assert.Empty(t, st.Recent())
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard fetches did not run concurrently")
	}
}

func TestCredits(t *testing.T) {
	f := &fakeAPI{
		balance: func() (int, error) { return 10, nil },
		checkout: func(p models.Pack) (string, error) {
			assert.Equal(t, models.Pack100, p)
			return "https://pay.example/s/1", nil
		},
	}
	c := NewCredits(f)
	c.Load(context.Background())
	require.NotNil(t, c.Balance)
	assert.Equal(t, 10, *c.Balance)

	_, err := c.Buy(context.Background(), "pack_7")
	require.Error(t, err)

	url, err := c.Buy(context.Background(), models.Pack100)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/s/1", url)
}
