package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	out, err := run(t, "tree", "--numeric", "--strategy", "avl", "1", "2", "3")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out)
	if !strings.Contains(out, "|------+ 2 [h=1]") {
		t.Errorf("expected 2 at root of AVL tree")
	}
	if !strings.Contains(out, "avl tree: 3 entries, 2 levels") {
		t.Errorf("expected summary line")
	}
	out, err = run(t, "tree", "-s", "redblack", "--delete", "b", "--dot", "a", "b", "c")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "strict digraph {") || strings.Contains(out, "label=\"b\"") {
		t.Errorf("expected DOT output without b, got\n%s", out)
	}
}

func TestTreeCommandErrors(t *testing.T) {
	if _, err := run(t, "tree", "--strategy", "heap", "1"); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
	if _, err := run(t, "tree", "--numeric", "one"); err == nil {
		t.Errorf("expected error for non-numeric key")
	}
	if _, err := run(t, "tree", "--delete", "x", "a"); err == nil {
		t.Errorf("expected error deleting missing key")
	}
	if _, err := run(t, "--trace", "verbose", "tree", "a"); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
}

func TestWordsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	os.WriteFile(path, []byte("Hello World, hello again\nand again, and again\n"), 0o644)
	out, err := run(t, "words", "--top", "2", path)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out)
	if !strings.Contains(out, "     3  again\n     2  and\n") {
		t.Errorf("unexpected top words:\n%s", out)
	}
	if !strings.Contains(out, "8 words, 4 distinct") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	out, err = run(t, "words", "--prefix", "HE", path)
	if err != nil || !strings.Contains(out, "     2  hello\n") {
		t.Errorf("unexpected prefix listing (%v):\n%s", err, out)
	}
	page := filepath.Join(dir, "page.html")
	os.WriteFile(page, []byte("<p>tree <i>map</i></p>"), 0o644)
	out, err = run(t, "words", "--html", "--from", "n", page)
	if err != nil || !strings.Contains(out, "     1  tree\n") || strings.Contains(out, "map") {
		t.Errorf("unexpected HTML listing (%v):\n%s", err, out)
	}
}
