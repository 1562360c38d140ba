package cli

import (
	"context"

	"github.com/thronos/careerforge/internal/client/i18n"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for e-mail, full name and password and creates the account.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, a.T("cli_email"), a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, a.T("cli_fullname"), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.T("cli_password"), a.out)
	if err != nil {
		return err
	}

	res, err := a.auth.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	a.println(a.Sprintf("cli_logged_in", res.Email))
	return nil
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, a.T("cli_email"), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.T("cli_password"), a.out)
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.resetViews()
	a.println(a.Sprintf("cli_logged_in", res.Email))
	return nil
}

// Logout forgets the session and all screen state.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.resetViews()
	a.println(a.T("cli_signed_out"))
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	me, err := a.auth.Me(ctx)
	if err != nil {
		return err
	}
	a.printf("%s <%s>\n", me.FullName, me.Email)
	if me.VerifyIDVerified {
		a.println(a.T("dash_kyc_verified"))
	}
	return nil
}

// Lang switches to the given language, or toggles without an argument.
func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if _, err := a.lang.Toggle(ctx); err != nil {
			return err
		}
	} else {
		l, ok := i18n.ParseLang(args[0])
		if !ok {
			return usage("lang [en|el]")
		}
		if err := a.lang.Set(ctx, l); err != nil {
			return err
		}
	}
	a.println(a.Sprintf("cli_language", a.lang.Lang()))
	return nil
}
