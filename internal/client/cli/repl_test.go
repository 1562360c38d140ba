package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/common"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	args     [][]string
	fail     error
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) status(context.Context) string   { return "(en)" }
func (f *fakeExec) T(key string) string             { return key }
func (f *fakeExec) Sprintf(key string, args ...any) string {
	return key + ":" + fmt.Sprint(args...)
}

func (f *fakeExec) commands() []command {
	rec := func(name string) func(context.Context, []string) error {
		return func(_ context.Context, args []string) error {
			f.calls = append(f.calls, name)
			f.args = append(f.args, args)
			switch name {
			case "login":
				f.loggedIn = true
			case "logout":
				f.loggedIn = false
			case "fail":
				return f.fail
			}
			return nil
		}
	}
	return []command{
		{name: "login", run: rec("login")},
		{name: "logout", auth: true, run: rec("logout")},
		{name: "kits", usage: "[filter]", auth: true, run: rec("kits")},
		{name: "fail", run: rec("fail")},
	}
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func scan(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, scan("kits", "login", "", "kits cv_only", "logout", "kits", "exit", "login"))

	assert.Equal(t, []string{"login", "kits", "logout"}, f.calls)
	assert.Equal(t, []string{"cv_only"}, f.args[1])
	assert.Contains(t, *out, "cli_need_login")
	assert.Equal(t, "cli_bye", (*out)[len(*out)-1])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{}

	runREPL(context.Background(), f, scan("help", "login", "help"))

	var helps []string
	for _, l := range *out {
		if strings.HasPrefix(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	assert.Len(t, helps, 2)
	assert.NotContains(t, helps[0], "kits")
	assert.Contains(t, helps[1], "kits [filter]")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	runREPL(context.Background(), &fakeExec{}, scan("dance"))
	assert.Contains(t, *out, "cli_unknown_command:dance")
}

func TestRunREPL_ErrorsAreReported(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.Invalid("Select a job first"), "Select a job first"},
		{fmt.Errorf("post: %w", api.ErrUnavailable), "cli_unavailable"},
		{&api.Error{Status: 402, Message: "Insufficient credits"}, "Error: Insufficient credits"},
		{usage("buy <pack>"), "usage: buy <pack>"},
		{errors.New("disk full"), "Error: disk full"},
	}
	for _, tt := range tests {
		out := captureOutput(t)
		runREPL(context.Background(), &fakeExec{fail: tt.err}, scan("fail"))
		assert.Contains(t, *out, tt.want)
	}
}
