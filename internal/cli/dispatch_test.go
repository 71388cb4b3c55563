package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"journal/internal/backend/jsonfile"
	"journal/internal/cli"
	"journal/internal/commands"
	"journal/internal/config"
	"journal/internal/exitcode"
	"journal/internal/service"
	"journal/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		return svc, nil
	}
}

// fileFactory builds the real JSON file store.
func fileFactory(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
	return jsonfile.New(cfg, logger)
}

// isolate points config and home lookups at temp dirs so tests never read
// the user's real settings or task file.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvFile, "")
	return home
}

func run(t *testing.T, factory cli.ServiceFactory, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	isolate(t)
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"--bogus"}, {"list", "--bogus"}} {
		_, stderr, code := run(t, testFactory(testutil.NewFakeService()), args...)

		if code != exitcode.UserError {
			t.Errorf("%v: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		expected := "error: unknown flag: -bogus\n"
		if stderr != expected {
			t.Errorf("%v: expected %q, got %q", args, expected, stderr)
		}
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	isolate(t)
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "add", "-f")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -f\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoArgsLists(t *testing.T) {
	isolate(t)
	stdout, stderr, code := run(t, testFactory(testutil.NewFakeService()))

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "No tasks in the list.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_GlobalFlagsBeforeCommand(t *testing.T) {
	isolate(t)
	svc := testutil.NewFakeService()

	stdout, stderr, code := run(t, testFactory(svc), "--quiet", "add", "buy", "milk")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("expected no output, got stdout=%q stderr=%q", stdout, stderr)
	}
	if tasks := svc.Tasks(); len(tasks) != 1 || tasks[0].Title != "buy milk" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestDispatcher_Aliases(t *testing.T) {
	isolate(t)
	svc := testutil.NewFakeService()
	svc.AddTask("a", false)
	svc.AddTask("b", false)

	if _, stderr, code := run(t, testFactory(svc), "done", "1"); code != exitcode.Success {
		t.Fatalf("done: exit code %d, stderr %q", code, stderr)
	}
	if _, stderr, code := run(t, testFactory(svc), "rm", "2"); code != exitcode.Success {
		t.Fatalf("rm: exit code %d, stderr %q", code, stderr)
	}
	if tasks := svc.Tasks(); len(tasks) != 1 || tasks[0].Title != "b" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{{"help"}, {"-h"}, {"--help"}} {
		stdout, stderr, code := run(t, testFactory(testutil.NewFakeService()), args...)

		if code != exitcode.Success {
			t.Errorf("%v: expected exit code %d, got %d", args, exitcode.Success, code)
		}
		if stderr != "" {
			t.Errorf("%v: expected no stderr, got %q", args, stderr)
		}
		if !strings.Contains(stdout, "Usage:") {
			t.Errorf("%v: expected help output to contain 'Usage:'", args)
		}
	}
}

func TestDispatcher_CommandHelp(t *testing.T) {
	isolate(t)
	stdout, _, code := run(t, testFactory(testutil.NewFakeService()), "move", "-h")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "Usage: journal move [common flags] <n> <position>\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	isolate(t)
	stdout, _, code := run(t, nil, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "journal 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestDispatcher_InvalidColor(t *testing.T) {
	isolate(t)
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "--color", "rainbow", "list")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: invalid color mode: rainbow\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_BadSettingsFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("nope = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "--config", dir, "list")

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr, "error: parse ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FactoryError(t *testing.T) {
	isolate(t)
	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		return nil, errors.New("boom")
	}

	_, stderr, code := run(t, factory, "list")

	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if stderr != "error: boom\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_PassesResolvedFile(t *testing.T) {
	home := isolate(t)

	var gotFile string
	factory := func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error) {
		gotFile = cfg.File
		return testutil.NewFakeService(), nil
	}

	run(t, factory, "list")
	if want := filepath.Join(home, config.DefaultTaskFile); gotFile != want {
		t.Errorf("default: expected %q, got %q", want, gotFile)
	}

	t.Setenv(config.EnvFile, "/tmp/env.json")
	run(t, factory, "list")
	if gotFile != "/tmp/env.json" {
		t.Errorf("env: expected %q, got %q", "/tmp/env.json", gotFile)
	}

	run(t, factory, "list", "-f", "/tmp/flag.json")
	if gotFile != "/tmp/flag.json" {
		t.Errorf("flag: expected %q, got %q", "/tmp/flag.json", gotFile)
	}
}

func TestDispatcher_EndToEnd(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tasks.json")

	steps := [][]string{
		{"-f", path, "add", "buy", "milk"},
		{"add", "-f", path, "write report"},
		{"--file", path, "complete", "1"},
	}
	for _, args := range steps {
		stdout, stderr, code := run(t, fileFactory, args...)
		if code != exitcode.Success {
			t.Fatalf("%v: exit code %d, stderr %q", args, code, stderr)
		}
		if stdout != "ok\n" {
			t.Fatalf("%v: expected ok, got %q", args, stdout)
		}
	}

	stdout, stderr, code := run(t, fileFactory, "list", "--file", path, "--color", "never")
	if code != exitcode.Success {
		t.Fatalf("list: exit code %d, stderr %q", code, stderr)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", stdout)
	}
	if !strings.HasPrefix(lines[0], "[1] write report ") {
		t.Errorf("expected pending task first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[2|Done] buy milk ") {
		t.Errorf("expected completed task second, got %q", lines[1])
	}
}

func TestDispatcher_EndToEndErrors(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tasks.json")

	if _, stderr, code := run(t, fileFactory, "-f", path, "add", "a"); code != exitcode.Success {
		t.Fatalf("add: exit code %d, stderr %q", code, stderr)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	_, stderr, code := run(t, fileFactory, "-f", path, "remove", "5")
	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 5\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("file changed after failed remove:\n%s", after)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, stderr, code = run(t, fileFactory, "-f", path, "list")
	if code != exitcode.StoreError {
		t.Errorf("expected exit code %d, got %d", exitcode.StoreError, code)
	}
	if !strings.Contains(stderr, "corrupt task store") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DebugLogs(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tasks.json")

	_, stderr, code := run(t, fileFactory, "--debug", "--lock", "-f", path, "add", "a")
	if code != exitcode.Success {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	for _, want := range []string{"resolved task file", "acquired lock", "saved tasks"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected debug log %q in %q", want, stderr)
		}
	}
}
