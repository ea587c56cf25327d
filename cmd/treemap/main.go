/*
Command treemap is a small driver for tree maps and word indexes.

	treemap tree --strategy avl 5 3 8 1 4 7 9
	treemap tree --strategy redblack --numeric --delete 4 --dot 1 2 3 4 5 6 7
	treemap words --top 10 README.md
	treemap words --prefix tree --html page.html

Sub-command tree inserts its arguments into a map balanced by the given
strategy, deletes keys if requested, and prints the resulting tree, either as
an ASCII graphic or in Graphviz DOT format. Sub-command words builds a word
index for a text or HTML file and lists words together with their counts.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treemap"
	"github.com/npillmayer/treemap/wordindex"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

func newRootCmd() *cobra.Command {
	var level string
	rootCmd := &cobra.Command{
		Use:          "treemap",
		Short:        "Explore self-balancing tree maps",
		SilenceUsage: true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, ok := traceLevels[strings.ToLower(level)]
		if !ok {
			return fmt.Errorf("unknown trace level %q", level)
		}
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(l)
		return nil
	}
	rootCmd.PersistentFlags().StringVar(&level, "trace", "error", "trace level (error, info, debug)")
	rootCmd.AddCommand(newTreeCmd(), newWordsCmd())
	return rootCmd
}

// --- tree ------------------------------------------------------------------

type treeOptions struct {
	strategy string
	numeric  bool
	deletes  []string
	dot      bool
	values   bool
}

func newTreeCmd() *cobra.Command {
	opts := treeOptions{}
	cmd := &cobra.Command{
		Use:   "tree [flags] KEY...",
		Short: "Build a tree map from keys and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := treemap.ParseStrategy(opts.strategy)
			if err != nil {
				return err
			}
			if !opts.numeric {
				return showTree(cmd.OutOrStdout(), strategy, args, opts.deletes, opts)
			}
			keys, err := atoi(args)
			if err != nil {
				return err
			}
			deletes, err := atoi(opts.deletes)
			if err != nil {
				return err
			}
			return showTree(cmd.OutOrStdout(), strategy, keys, deletes, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "avl", "balancing strategy (unbalanced, avl, redblack, splay)")
	cmd.Flags().BoolVarP(&opts.numeric, "numeric", "n", false, "treat keys as integers")
	cmd.Flags().StringSliceVarP(&opts.deletes, "delete", "d", nil, "keys to delete after insertion")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "output Graphviz DOT instead of ASCII")
	cmd.Flags().BoolVar(&opts.values, "values", false, "print values together with keys")
	return cmd
}

func showTree[K cmp.Ordered](w io.Writer, strategy treemap.Strategy, keys, deletes []K, opts treeOptions) error {
	m, err := treemap.New[K, int](strategy)
	if err != nil {
		return err
	}
	for i, k := range keys {
		m.Set(k, i+1)
	}
	for _, k := range deletes {
		if err := m.Delete(k); err != nil {
			return err
		}
	}
	if err := m.Check(); err != nil {
		return err
	}
	if opts.dot {
		treemap.Map2Dot(m, w)
		return nil
	}
	config := treemap.ConfigFromTerminal()
	if f, ok := w.(*os.File); !ok || f != os.Stdout {
		config = &treemap.PrintConfig{}
	}
	config.Values = opts.values
	levels := m.Print(w, config)
	fmt.Fprintf(w, "%s tree: %d entries, %d levels\n", strategy, m.Len(), levels)
	return nil
}

func atoi(args []string) ([]int, error) {
	keys := make([]int, len(args))
	for i, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("key %q is not numeric: %w", a, err)
		}
		keys[i] = k
	}
	return keys, nil
}

// --- words -----------------------------------------------------------------

type wordsOptions struct {
	config string
	top    int
	prefix string
	from   string
	to     string
	html   bool
}

func newWordsCmd() *cobra.Command {
	opts := wordsOptions{}
	cmd := &cobra.Command{
		Use:   "words [flags] FILE",
		Short: "Index the words of a text or HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := wordindex.DefaultConfig()
			if opts.config != "" {
				var err error
				if config, err = wordindex.LoadConfig(opts.config); err != nil {
					return err
				}
			}
			ix, err := loadIndex(cmd.Context(), args[0], config, opts.html)
			if err != nil {
				return err
			}
			return listWords(cmd.OutOrStdout(), ix, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "YAML configuration file")
	cmd.Flags().IntVarP(&opts.top, "top", "t", 0, "list the N most frequent words")
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "list words with a prefix")
	cmd.Flags().StringVar(&opts.from, "from", "", "list words starting at this one")
	cmd.Flags().StringVar(&opts.to, "to", "", "list words before this one")
	cmd.Flags().BoolVar(&opts.html, "html", false, "input is an HTML fragment")
	return cmd
}

func loadIndex(ctx context.Context, path string, config wordindex.Config, isHTML bool) (*wordindex.Index, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !isHTML {
		return wordindex.Load(ctx, path, config)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordindex.FromHTML(f, config)
}

func listWords(w io.Writer, ix *wordindex.Index, opts wordsOptions) error {
	switch {
	case opts.top > 0:
		for _, wc := range ix.Top(opts.top) {
			fmt.Fprintf(w, "%6d  %s\n", wc.Count, wc.Word)
		}
	case opts.prefix != "":
		for word, entry := range ix.Prefix(opts.prefix) {
			fmt.Fprintf(w, "%6d  %s\n", entry.Count, word)
		}
	default:
		for word, entry := range ix.Range(opts.from, opts.to) {
			fmt.Fprintf(w, "%6d  %s\n", entry.Count, word)
		}
	}
	fmt.Fprintf(w, "%d words, %d distinct\n", ix.Total(), ix.Len())
	return nil
}
