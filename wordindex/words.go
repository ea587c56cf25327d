package wordindex

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/treemap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Span locates an occurrence of a word, in bytes.
type Span struct {
	Pos uint64
	Len uint64
}

// Entry holds the occurrences of a word.
type Entry struct {
	Count int
	Spans []Span // in order of insertion
}

// WordCount is a word together with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// Index is a word concordance. It is not safe for concurrent use.
type Index struct {
	words  *treemap.Map[string, *Entry]
	config Config
	stop   map[string]struct{}
	total  int
}

// New creates an empty index.
func New(config Config) (*Index, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config = config.normalized()
	strategy, _ := treemap.ParseStrategy(config.Strategy)
	words, err := treemap.New[string, *Entry](strategy)
	if err != nil {
		return nil, err
	}
	ix := &Index{
		words:  words,
		config: config,
		stop:   make(map[string]struct{}, len(config.StopWords)),
	}
	for _, w := range config.StopWords {
		ix.stop[w] = struct{}{}
	}
	return ix, nil
}

// Add indexes the words of text. base is the offset of text within the
// document, and spans of words are reported relative to the document.
// Add returns the number of words indexed.
func (ix *Index) Add(text string, base uint64) int {
	segmenter := segment.NewSegmenter(uax29.NewWordBreaker(1))
	segmenter.Init(strings.NewReader(text))
	pos, cnt := base, 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		if word, offset, ok := trimWord(frag); ok {
			if ix.insert(word, Span{Pos: pos + uint64(offset), Len: uint64(len(word))}) {
				cnt++
			}
		}
		pos += uint64(len(frag))
	}
	tracer().Debugf("wordindex: %d words indexed from %d bytes", cnt, len(text))
	return cnt
}

// trimWord strips a segment of characters which are neither letters nor digits.
// It returns false if nothing is left.
func trimWord(frag string) (string, int, bool) {
	start := strings.IndexFunc(frag, isWordRune)
	if start < 0 {
		return "", 0, false
	}
	end := strings.LastIndexFunc(frag, isWordRune)
	_, size := utf8.DecodeRuneInString(frag[end:])
	return frag[start : end+size], start, true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (ix *Index) insert(word string, span Span) bool {
	if utf8.RuneCountInString(word) < ix.config.MinLength {
		return false
	}
	key := ix.key(word)
	if _, isStop := ix.stop[key]; isStop {
		return false
	}
	entry, err := ix.words.Get(key)
	if err != nil {
		entry = &Entry{}
		ix.words.Set(key, entry)
	}
	entry.Count++
	entry.Spans = append(entry.Spans, span)
	ix.total++
	return true
}

func (ix *Index) key(word string) string {
	if ix.config.FoldCase {
		return strings.ToLower(word)
	}
	return word
}

// Lookup returns the entry for word.
func (ix *Index) Lookup(word string) (*Entry, bool) {
	entry, err := ix.words.Get(ix.key(word))
	if err != nil {
		return nil, false
	}
	return entry, true
}

// Len returns the number of distinct words.
func (ix *Index) Len() int {
	return ix.words.Len()
}

// Total returns the number of word occurrences indexed.
func (ix *Index) Total() int {
	return ix.total
}

// Map gives access to the underlying ordered map. Clients must not modify it.
func (ix *Index) Map() *treemap.Map[string, *Entry] {
	return ix.words
}

// Words returns an iterator over all words in alphabetical order.
func (ix *Index) Words() iter.Seq2[string, *Entry] {
	return ix.words.All()
}

// Range returns an iterator over the words w with from <= w < to, in
// alphabetical order. An empty bound leaves the range open on that side.
func (ix *Index) Range(from, to string) iter.Seq2[string, *Entry] {
	var start, stop *string
	if from != "" {
		f := ix.key(from)
		start = &f
	}
	if to != "" {
		t := ix.key(to)
		stop = &t
	}
	return ix.words.FindRange(start, stop)
}

// Prefix returns an iterator over the words starting with prefix, in
// alphabetical order.
func (ix *Index) Prefix(prefix string) iter.Seq2[string, *Entry] {
	prefix = ix.key(prefix)
	return func(yield func(string, *Entry) bool) {
		for w, entry := range ix.words.FindRange(&prefix, nil) {
			if !strings.HasPrefix(w, prefix) || !yield(w, entry) {
				return
			}
		}
	}
}

// Top returns the n most frequent words. Words with equal counts are sorted
// alphabetically. n < 0 returns all words.
func (ix *Index) Top(n int) []WordCount {
	counts := make([]WordCount, 0, ix.words.Len())
	for w, entry := range ix.words.All() {
		counts = append(counts, WordCount{Word: w, Count: entry.Count})
	}
	slices.SortStableFunc(counts, func(a, b WordCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
