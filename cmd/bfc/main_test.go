package main

import "testing"

func TestOutputNames(t *testing.T) {
	cases := []struct {
		path string
		c    string
		mini string
	}{
		{"hello.bf", "hello.c", "hello_mini.bf"},
		{"hello.b", "hello.c", "hello_mini.b"},
		{"hello", "hello.c", "hello_mini.bf"},
		{"dir/prog.bf", "dir/prog.c", "dir/prog_mini.bf"},
	}
	for _, c := range cases {
		if got := cName(c.path); got != c.c {
			t.Fatalf("cName(%q) = %q, expected %q", c.path, got, c.c)
		}
		if got := miniName(c.path); got != c.mini {
			t.Fatalf("miniName(%q) = %q, expected %q", c.path, got, c.mini)
		}
	}
}
