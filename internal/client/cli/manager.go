package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/thronos/careerforge/internal/client/models"
)

// ManagerList shows pending verification sessions. The list is fetched once;
// pass "refresh" to fetch it again.
func (a *App) ManagerList(ctx context.Context, args []string) error {
	if a.manager.Sessions == nil || (len(args) > 0 && args[0] == "refresh") {
		if err := a.manager.Load(ctx); err != nil {
			return err
		}
	}
	if len(a.manager.Sessions) == 0 {
		a.println("No sessions waiting for review.")
		return nil
	}
	for _, s := range a.manager.Sessions {
		a.printf("  %-36s  %-28s  %-14s  %s\n", s.ID, s.Who(), s.Status, time.Unix(s.CreatedAt, 0).Format(time.DateTime))
	}
	return nil
}

func (a *App) ManagerSession(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("session <id>")
	}
	s, err := a.manager.Select(ctx, args[0])
	if err != nil {
		return err
	}
	a.printf("%s  %s <%s>\n", s.ID, s.UserFullName, s.UserEmail)
	a.printf("Status %s via %s\n", s.Status, s.Channel)
	if s.FraudScore != nil {
		a.printf("Fraud score %.2f\n", *s.FraudScore)
	}
	if len(s.FraudFlags) > 0 {
		a.printf("Flags: %s\n", strings.Join(s.FraudFlags, ", "))
	}
	if s.VideoDurationS > 0 {
		a.printf("Video: %ds\n", s.VideoDurationS)
	}
	return nil
}

func (a *App) ManagerReview(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("review <id> <approved|rejected|escalate> [note]")
	}
	res, err := a.manager.Review(ctx, args[0], models.Decision(args[1]), strings.Join(args[2:], " "))
	if err != nil {
		return err
	}
	a.printf("%s: %s\n", res.Decision, res.Message)
	return nil
}

// ManagerDocument saves an uploaded document of a session to a local file.
func (a *App) ManagerDocument(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage("doc <id> <front|back|video> <out file>")
	}
	doc, err := a.manager.Document(ctx, args[0], models.DocType(args[1]))
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[2], doc.Data, 0o600); err != nil {
		return err
	}
	a.printf("Saved %s (%s, %d bytes)\n", args[2], doc.ContentType, len(doc.Data))
	return nil
}
