package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var size int
	executor.Define("-reset", Func(func() {
		size = 30000
	}))
	executor.Define("-size", Func(func(n int) {
		size = n
	}))

	if err := executor.Execute([]string{
		"-reset",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 30000 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"-size", "1024",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 1024 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"-bogus",
	})
	if !strings.Contains(err.Error(), "unknown command: -bogus") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-size", "huge",
	})
	if err == nil || !strings.Contains(err.Error(), "convert huge to int") {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-fail", Func(func() error {
		return errors.New("boom")
	}))
	err := executor.Execute([]string{"-fail"})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var listed bool
	var removed string
	executor.Define("cache", Sub(map[string]*Command{
		"list": Func(func() {
			listed = true
		}),
		"remove": Func(func(name string) {
			removed = name
		}),
	}))

	if err := executor.Execute([]string{
		"cache",
		"list",
		"remove", "hello.c",
	}); err != nil {
		t.Fatal(err)
	}

	if !listed {
		t.Fatal()
	}
	if removed != "hello.c" {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "foo" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo", "99"}); err != nil {
		t.Fatal(err)
	}
	if n != 99 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %d %q", n, s)
	}
}
