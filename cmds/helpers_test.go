package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	size := Var[int]("-test-var-size")
	level := Var[string]("-test-var-level")
	GlobalExecutor.MustExecute([]string{
		"-test-var-size", "30000",
		"-test-var-level", "full",
	})
	if *size != 30000 {
		t.Fatal()
	}
	if *level != "full" {
		t.Fatal()
	}

	// resets to the zero value
	GlobalExecutor.MustExecute([]string{
		"-test-var-size.",
	})
	if *size != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	step := Switch("-test-switch-step")
	GlobalExecutor.MustExecute([]string{
		"-test-switch-step",
	})
	if *step != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!-test-switch-step",
	})
	if *step != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	files := Collect[string]("-test-collect-file")
	GlobalExecutor.MustExecute([]string{
		"-test-collect-file", "a.bf",
		"-test-collect-file", "b.bf",
	})
	if str := fmt.Sprintf("%v", *files); str != "[a.bf b.bf]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Level string
	v := Var[Level]("-test-typed-var")
	GlobalExecutor.MustExecute([]string{
		"-test-typed-var", "coalesce",
	})
	if *v != "coalesce" {
		t.Fatal()
	}
}
