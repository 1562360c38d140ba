package cli

import (
	"context"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
	"github.com/thronos/careerforge/internal/client/services"
)

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	st := services.NewDashboard(a.api).Load(ctx)

	a.printf("== %s ==\n", a.T("dash_overview"))
	switch {
	case st.User != nil:
		name := st.User.FullName
		if name == "" {
			name = st.User.Email
		}
		a.println(a.Sprintf("dash_welcome", name))
		if st.User.VerifyIDVerified {
			a.println(a.T("dash_kyc_verified"))
		}
	case st.UserErr != "":
		a.println("!", st.UserErr)
	}

	switch {
	case st.Balance != nil:
		a.printf("%s: %d\n", a.T("dash_balance"), *st.Balance)
	default:
		a.printf("%s: - (%s)\n", a.T("dash_balance"), st.BalanceErr)
	}

	if st.KitsErr != "" {
		a.printf("%s: - (%s)\n", a.T("dash_kit_count"), st.KitsErr)
		return nil
	}
	a.printf("%s: %d\n", a.T("dash_kit_count"), st.KitCount())
	if st.ShowEmpty() {
		a.println(a.T("dash_empty"))
		return nil
	}
	a.println(a.T("dash_recent") + ":")
	for _, k := range st.Recent() {
		a.printKit(k)
	}
	return nil
}

func (a *App) printKit(k models.Kit) {
	a.printf("  %-36s  %-10s  %2d cr  %s\n",
		k.ID, a.kits.Label(k.Kind), k.CreditsCharged, time.Unix(k.CreatedAt, 0).Format(time.DateOnly))
}

func (a *App) Credits(ctx context.Context, _ []string) error {
	c := services.NewCredits(a.api)
	c.Load(ctx)
	if c.Balance == nil {
		a.printf("%s: - (%s)\n", a.T("dash_balance"), c.BalanceErr)
	} else {
		a.printf("%s: %d\n", a.T("dash_balance"), *c.Balance)
	}
	a.println("Packs:")
	for _, p := range models.Packs {
		a.println("  " + string(p))
	}
	a.println("Kit costs:")
	for _, k := range models.KitKinds {
		a.printf("  %-10s %d\n", a.kits.Label(k), k.Cost())
	}
	return nil
}

func (a *App) Buy(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("buy <pack_30|pack_100|pack_300>")
	}
	url, err := services.NewCredits(a.api).Buy(ctx, models.Pack(args[0]))
	if err != nil {
		return err
	}
	a.println("Complete your purchase at:")
	a.println(url)
	return nil
}
