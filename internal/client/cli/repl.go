package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/common"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// command is one REPL verb.
type command struct {
	name  string
	usage string
	// auth commands are only offered and run with a live session.
	auth bool
	run  func(ctx context.Context, args []string) error
}

// execIface is the surface the REPL needs. *App satisfies it; tests use a
// lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	commands() []command
	status(ctx context.Context) string
	T(key string) string
	Sprintf(key string, args ...any) string
}

// Root greets the user and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to CareerForge CLI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) status(ctx context.Context) string {
	s := string(a.lang.Lang())
	if who := a.auth.Who(ctx); who != "" {
		s = who + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) T(key string) string { return a.lang.T(key) }

func (a *App) Sprintf(key string, args ...any) string { return a.lang.Sprintf(key, args...) }

// runREPL reads a line, dispatches its first token to the matching command
// and reports the command's error, if any. It exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cf %s> ", a.status(ctx)))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn(a.T("cli_bye"))
			return
		case "help":
			printlnFn(helpText(a.commands(), a.isLoggedIn(ctx)))
			continue
		}

		cmd, ok := lookup(a.commands(), name)
		if !ok {
			printlnFn(a.Sprintf("cli_unknown_command", name))
			continue
		}
		if cmd.auth && !a.isLoggedIn(ctx) {
			printlnFn(a.T("cli_need_login"))
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			printlnFn(describe(a, err))
		}
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func helpText(cmds []command, loggedIn bool) string {
	var lines []string
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-32s", strings.TrimSpace(c.name+" "+c.usage)))
	}
	sort.Strings(lines)
	return "Available commands:\n" + strings.Join(lines, "\n") + "\n  exit"
}

func describe(a execIface, err error) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, api.ErrUnavailable):
		return a.T("cli_unavailable")
	case errors.Is(err, errUsage):
		return err.Error()
	}
	return "Error: " + api.Message(err)
}

var errUsage = errors.New("usage")

func usage(c string) error {
	return fmt.Errorf("%w: %s", errUsage, c)
}

// commands lists every verb of the CLI.
func (a *App) commands() []command {
	return []command{
		{name: "register", run: a.Register},
		{name: "login", run: a.Login},
		{name: "lang", usage: "[en|el]", run: a.Lang},
		{name: "logout", auth: true, run: a.Logout},
		{name: "me", auth: true, run: a.Me},

		{name: "dashboard", auth: true, run: a.Dashboard},
		{name: "credits", auth: true, run: a.Credits},
		{name: "buy", usage: "<pack_30|pack_100|pack_300>", auth: true, run: a.Buy},

		{name: "profile", auth: true, run: a.ShowProfile},
		{name: "profile-edit", auth: true, run: a.EditProfile},
		{name: "import-cv", usage: "<file.pdf>", auth: true, run: a.ImportCV},

		{name: "kits", usage: "[all|full|cv_only|ats_only]", auth: true, run: a.Kits},
		{name: "newkit", usage: "[full|cv_only|ats_only]", auth: true, run: a.NewKit},
		{name: "ats", usage: "<job id>", auth: true, run: a.ATS},
		{name: "cached", auth: true, run: a.Cached},
		{name: "export", usage: "<kit id>", auth: true, run: a.Export},
		{name: "forget", usage: "<kit id>", auth: true, run: a.Forget},

		{name: "cv-analyze", usage: "[file.pdf]", auth: true, run: a.AnalyzeCV},
		{name: "cv-history", auth: true, run: a.CVHistory},
		{name: "cv-show", usage: "<analysis id>", auth: true, run: a.CVShow},
		{name: "cv-visibility", usage: "<on|off>", auth: true, run: a.CVVisibility},

		{name: "interview", auth: true, run: a.Interview},

		{name: "jobs", usage: "[tag]", auth: true, run: a.Jobs},
		{name: "ingest", usage: "<slug>", auth: true, run: a.Ingest},
		{name: "countries", auth: true, run: a.Countries},
		{name: "country", usage: "<code>", auth: true, run: a.Country},

		{name: "guarantee", auth: true, run: a.Guarantee},
		{name: "refund", auth: true, run: a.Refund},

		{name: "verify", auth: true, run: a.Verify},
		{name: "onboarding", auth: true, run: a.Onboarding},
		{name: "test", auth: true, run: a.PsychTest},

		{name: "manager", auth: true, run: a.ManagerList},
		{name: "session", usage: "<id>", auth: true, run: a.ManagerSession},
		{name: "review", usage: "<id> <approved|rejected|escalate> [note]", auth: true, run: a.ManagerReview},
		{name: "doc", usage: "<id> <front|back|video> <out file>", auth: true, run: a.ManagerDocument},
	}
}
