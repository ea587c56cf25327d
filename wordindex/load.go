package wordindex

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// fragment is a line of a text file, broadcast by the loading goroutine.
type fragment struct {
	text string
	pos  uint64 // byte offset of the line within the file
}

// fragmentBuffer is the capacity of the subscription channel of the indexer.
const fragmentBuffer = 64

// Load reads a text file and creates an index for it. The file is read by a
// background goroutine which broadcasts its lines, while the calling goroutine
// indexes them. Load returns after the complete file has been indexed, or when
// ctx is cancelled.
func Load(ctx context.Context, name string, config Config) (*Index, error) {
	ix, err := New(config)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	//
	cast := caster.New(ctx) // broadcasts fragments as they are read
	lines, ok := cast.Sub(ctx, fragmentBuffer)
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("wordindex: cannot subscribe to fragments of %s", name)
	}
	errch := make(chan error, 1)
	go func() {
		defer cast.Close()
		errch <- readFragments(ctx, file, cast)
	}()
	for msg := range lines {
		frag := msg.(fragment)
		ix.Add(frag.text, frag.pos)
	}
	if err := <-errch; err != nil {
		tracer().Errorf("wordindex: loading %s: %v", name, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("wordindex: %s indexed, %d words, %d distinct", name, ix.Total(), ix.Len())
	return ix, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("wordindex: %w", err)
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordindex: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("wordindex: %w", err)
	}
	tracer().Debugf("wordindex: opened %s (%d bytes)", name, fi.Size())
	return file, nil
}

// readFragments publishes the lines of r, including their line endings.
func readFragments(ctx context.Context, r io.Reader, cast *caster.Caster) error {
	reader := bufio.NewReader(r)
	var pos uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if !cast.Pub(fragment{text: line, pos: pos}) {
				if err := ctx.Err(); err != nil {
					return err
				}
				return fmt.Errorf("wordindex: fragment broadcast closed at offset %d", pos)
			}
			pos += uint64(len(line))
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("wordindex: reading text fragment: %w", err)
		}
	}
}
