package cli

import "context"

func (a *App) Guarantee(ctx context.Context, _ []string) error {
	if err := a.guarantee.Load(ctx); err != nil {
		return err
	}
	st := a.guarantee.Status
	a.printf("Kits generated: %d, days active: %d, days remaining: %d\n",
		st.KitCount, st.DaysActive, a.guarantee.DaysRemaining())
	switch {
	case st.ExistingRequest != nil:
		a.printf("Refund request %s: %s (%d credits refunded)\n",
			st.ExistingRequest.ID, st.ExistingRequest.Status, st.ExistingRequest.CreditsRefunded)
	case st.EligibleForRefund:
		a.println("You are eligible for a refund. Use 'refund' to request it.")
	default:
		a.println("Not eligible for a refund.")
	}
	return nil
}

func (a *App) Refund(ctx context.Context, _ []string) error {
	reason, err := a.prompt("Reason (optional): ")
	if err != nil {
		return err
	}
	if err := a.guarantee.Request(ctx, reason); err != nil {
		return err
	}
	a.println(a.guarantee.Message)
	return nil
}
