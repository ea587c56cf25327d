package wordindex

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treemap"
)

func TestAddAndLookup(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ix, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	n := ix.Add("Hello World, hello again", 0)
	if n != 4 || ix.Total() != 4 || ix.Len() != 3 {
		t.Fatalf("expected 4 words, 3 distinct; got %d, %d, %d", n, ix.Total(), ix.Len())
	}
	entry, ok := ix.Lookup("HELLO")
	if !ok || entry.Count != 2 {
		t.Fatalf("expected hello twice, got %v", entry)
	}
	if !slices.Equal(entry.Spans, []Span{{Pos: 0, Len: 5}, {Pos: 13, Len: 5}}) {
		t.Errorf("unexpected spans for hello: %v", entry.Spans)
	}
	if _, ok := ix.Lookup("goodbye"); ok {
		t.Errorf("did not expect to find goodbye")
	}
	var words []string
	for w := range ix.Words() {
		words = append(words, w)
	}
	if !slices.Equal(words, []string{"again", "hello", "world"}) {
		t.Errorf("expected alphabetical words, got %v", words)
	}
	// offsets of later text are relative to the document
	ix.Add("world", 100)
	entry, _ = ix.Lookup("world")
	if entry.Count != 2 || entry.Spans[1] != (Span{Pos: 100, Len: 5}) {
		t.Errorf("unexpected entry for world: %+v", entry)
	}
	if err := ix.Map().Check(); err != nil {
		t.Error(err)
	}
}

func TestConfigFilters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	config := Config{
		Strategy:  "avl",
		MinLength: 3,
		FoldCase:  false,
		StopWords: []string{"the"},
	}
	ix, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	ix.Add("The cat and the hat, on a mat. 42 is it", 0)
	if ix.Map().Strategy() != treemap.AVL {
		t.Errorf("expected AVL map, got %s", ix.Map().Strategy())
	}
	for _, w := range []string{"the", "a", "on", "42", "is", "it"} {
		if _, ok := ix.Lookup(w); ok {
			t.Errorf("did not expect %q in index", w)
		}
	}
	for _, w := range []string{"The", "cat", "and", "hat", "mat"} {
		if _, ok := ix.Lookup(w); !ok {
			t.Errorf("expected %q in index", w)
		}
	}
}

func TestRangeAndPrefix(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	config := DefaultConfig()
	config.Strategy = "splay"
	ix, _ := New(config)
	ix.Add("tree trie treat tram tangle branch twig root", 0)
	var got []string
	for w := range ix.Prefix("tre") {
		got = append(got, w)
	}
	if !slices.Equal(got, []string{"treat", "tree"}) {
		t.Errorf("expected [treat tree] for prefix, got %v", got)
	}
	got = got[:0]
	for w := range ix.Range("root", "trie") {
		got = append(got, w)
	}
	if !slices.Equal(got, []string{"root", "tangle", "tram", "treat", "tree"}) {
		t.Errorf("unexpected range: %v", got)
	}
	got = got[:0]
	for w := range ix.Range("", "root") {
		got = append(got, w)
	}
	if !slices.Equal(got, []string{"branch"}) {
		t.Errorf("unexpected open range: %v", got)
	}
	for w := range ix.Prefix("x") {
		t.Errorf("unexpected word %q for prefix x", w)
	}
	if err := ix.Map().Check(); err != nil {
		t.Error(err)
	}
}

func TestTop(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ix, _ := New(DefaultConfig())
	ix.Add("b a c b a b d", 0)
	top := ix.Top(3)
	expected := []WordCount{{"b", 3}, {"a", 2}, {"c", 1}}
	if !slices.Equal(top, expected) {
		t.Errorf("expected %v, got %v", expected, top)
	}
	if all := ix.Top(-1); len(all) != 4 {
		t.Errorf("expected all 4 words, got %v", all)
	}
}

func TestConfig(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "index.yaml")
	yml := "strategy: avl\nmin-length: 2\nstop-words: [The, An]\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Strategy != "avl" || config.MinLength != 2 || !config.FoldCase {
		t.Errorf("unexpected configuration %+v", config)
	}
	if !slices.Equal(config.StopWords, []string{"the", "an"}) {
		t.Errorf("expected folded stop words, got %v", config.StopWords)
	}
	//
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("strategy: b-tree\n"), 0o644)
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown strategy, got %v", err)
	}
	os.WriteFile(bad, []byte("min-length: -1\n"), 0o644)
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative length, got %v", err)
	}
	os.WriteFile(bad, []byte("min-length: [\n"), 0o644)
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for broken YAML, got %v", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected missing file error, got %v", err)
	}
	if _, err := New(Config{Strategy: "heap"}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected New to reject config, got %v", err)
	}
}

func TestFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	fragment := `<p>Hello <b>World</b>!</p><script>var hidden = 1;</script><p>hello</p>`
	ix, err := FromHTML(strings.NewReader(fragment), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ix.Lookup("hidden"); ok {
		t.Errorf("script content must not be indexed")
	}
	entry, ok := ix.Lookup("hello")
	if !ok || entry.Count != 2 {
		t.Fatalf("expected hello twice, got %v", entry)
	}
	// inner text is "Hello World!hello"
	if entry.Spans[1].Pos != 12 {
		t.Errorf("expected second hello at 12, got %d", entry.Spans[1].Pos)
	}
	if e, ok := ix.Lookup("world"); !ok || e.Spans[0].Pos != 6 {
		t.Errorf("expected world at 6, got %v", e)
	}
}
