package process

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Stream identifies which standard stream of the child a chunk came from.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

func (s Stream) String() string {
	if s == Stderr {
		return "stderr"
	}
	return "stdout"
}

// Chunk is a piece of child output tagged with its origin. A Partial chunk
// carries text not yet terminated by a newline, such as a prompt; the next
// chunks of the same stream continue that line.
type Chunk struct {
	Stream  Stream
	Line    string
	Partial bool
}

const (
	// chunkBuffer bounds how far the readers may run ahead of the consumer.
	chunkBuffer = 256
	readSize    = 32 * 1024
)

// merge reads stdout and stderr concurrently and delivers their lines on a
// single channel in arrival order. The channel is closed once both readers
// reach EOF or fail; the returned group reports the first read error.
func merge(stdout, stderr io.Reader) (<-chan Chunk, *errgroup.Group) {
	chunks := make(chan Chunk, chunkBuffer)

	var g errgroup.Group
	g.Go(func() error { return pump(stdout, Stdout, chunks) })
	g.Go(func() error { return pump(stderr, Stderr, chunks) })

	go func() {
		_ = g.Wait()
		close(chunks)
	}()

	return chunks, &g
}

// pump forwards r as it is read: every complete line as one chunk and any
// trailing text without a newline as a Partial chunk, so prompts show up
// while the child waits for input. On a read error the rest of r is
// discarded so the child never blocks on a full pipe.
func pump(r io.Reader, stream Stream, out chan<- Chunk) error {
	buf := make([]byte, readSize)
	for {
		n, err := r.Read(buf)
		data := buf[:n]
		for len(data) > 0 {
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				out <- Chunk{Stream: stream, Line: string(data), Partial: true}
				break
			}
			out <- Chunk{Stream: stream, Line: string(data[:i])}
			data = data[i+1:]
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			_, _ = io.Copy(io.Discard, r)
			return err
		}
	}
}

// lineCollector echoes one stream as it arrives and joins its chunks back
// into complete lines.
type lineCollector struct {
	echo    bool
	sink    io.Writer
	pending strings.Builder
	lines   []string
}

func (c *lineCollector) add(chunk Chunk) {
	if c.echo {
		if chunk.Partial {
			fmt.Fprint(c.sink, chunk.Line)
		} else {
			fmt.Fprintln(c.sink, chunk.Line)
		}
	}
	c.pending.WriteString(chunk.Line)
	if !chunk.Partial {
		c.flush()
	}
}

// finish turns text left without a final newline into the last line.
func (c *lineCollector) finish() []string {
	if c.pending.Len() > 0 {
		if c.echo {
			fmt.Fprintln(c.sink)
		}
		c.flush()
	}
	return c.lines
}

func (c *lineCollector) flush() {
	c.lines = append(c.lines, strings.TrimSuffix(c.pending.String(), "\r"))
	c.pending.Reset()
}
