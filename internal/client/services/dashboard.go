package services

import (
	"context"
	"sync"

	"github.com/thronos/careerforge/internal/client/models"
)

// RecentKits is how many kits the overview lists.
const RecentKits = 5

type DashboardAPI interface {
	Balance(ctx context.Context) (int, error)
	Me(ctx context.Context) (*models.Me, error)
	ListKits(ctx context.Context) ([]models.Kit, error)
}

// DashboardState is a snapshot of the overview screen. Each fetch fills its
// own field or its own error.
type DashboardState struct {
	Balance    *int
	BalanceErr string

	User    *models.Me
	UserErr string

	Kits       []models.Kit
	KitsLoaded bool
	KitsErr    string
}

func (s DashboardState) KitCount() int { return len(s.Kits) }

// Recent returns the newest kits as listed by the backend, at most RecentKits.
func (s DashboardState) Recent() []models.Kit {
	return s.Kits[:min(len(s.Kits), RecentKits)]
}

// ShowEmpty reports whether the "generate your first kit" state applies.
func (s DashboardState) ShowEmpty() bool {
	return s.KitsLoaded && len(s.Kits) == 0
}

type Dashboard struct {
	api DashboardAPI

	mu    sync.Mutex
	state DashboardState
}

func NewDashboard(api DashboardAPI) *Dashboard {
	return &Dashboard{api: api}
}

// Load issues the three reads concurrently and waits for all of them.
// A failing read does not affect the others.
func (d *Dashboard) Load(ctx context.Context) DashboardState {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		bal, err := d.api.Balance(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.state.BalanceErr = errText(err)
			return
		}
		d.state.Balance, d.state.BalanceErr = &bal, ""
	}()

	go func() {
		defer wg.Done()
		me, err := d.api.Me(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.state.UserErr = errText(err)
			return
		}
		d.state.User, d.state.UserErr = me, ""
	}()

	go func() {
		defer wg.Done()
		kits, err := d.api.ListKits(ctx)
		d.mu.Lock()
		defer d.mu.Unlock()
		if err != nil {
			d.state.KitsErr = errText(err)
			return
		}
		d.state.Kits, d.state.KitsLoaded, d.state.KitsErr = kits, true, ""
	}()

	wg.Wait()
	return d.State()
}

func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.state
	s.Kits = append([]models.Kit(nil), d.state.Kits...)
	return s
}
