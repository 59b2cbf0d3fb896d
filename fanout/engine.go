package fanout

import (
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/omnihash/omnihash/digest"
	"github.com/omnihash/omnihash/errors"
	"github.com/omnihash/omnihash/logger"
	"github.com/omnihash/omnihash/registry"
)

const engineLogTag = "fanoutEngine"

// chunkSize matches the buffer io.Copy uses internally.
const chunkSize = 32 * 1024

// consumerBuffer bounds how far the producer may run ahead of the
// slowest digester, in chunks.
const consumerBuffer = 16

type Result struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// Results holds one digest per algorithm, in registration order.
type Results []Result

func (r Results) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, result := range r {
		m[result.Algorithm] = result.Digest
	}
	return m
}

type Engine struct {
	logger logger.Logger
}

func NewEngine(log logger.Logger) Engine {
	return Engine{logger: log}
}

// ProduceHashes streams body once through every registered algorithm
// and returns their digests, in registration order. Each digester runs
// on its own goroutine fed from a bounded channel, so every algorithm
// observes identical chunks in identical order while the producer is
// held back by the slowest consumer. When match is non-empty only
// digests containing it are returned and matchFound reports whether
// any did. A read error aborts the whole pass: no partial results.
func (e Engine) ProduceHashes(hint digest.SizeHint, body io.Reader, factories *registry.Factories, match string) (results Results, matchFound bool, err error) {
	names := factories.Names()
	if len(names) == 0 {
		return Results{}, false, nil
	}

	digests := make([]string, len(names))
	feeds := make([]chan []byte, len(names))

	var group errgroup.Group

	for i, name := range names {
		factory, _ := factories.Get(name)
		digester := factory(hint)
		feed := make(chan []byte, consumerBuffer)
		feeds[i] = feed

		i := i
		group.Go(func() error {
			for chunk := range feed {
				digester.Update(chunk)
			}
			digests[i] = digester.Digest()
			return nil
		})
	}

	group.Go(func() error {
		defer func() {
			for _, feed := range feeds {
				close(feed)
			}
		}()

		for {
			// Fresh buffer per chunk: consumers may still hold earlier
			// chunks queued in their feeds.
			buf := make([]byte, chunkSize)
			n, readErr := body.Read(buf)
			if n > 0 {
				chunk := buf[:n]
				for _, feed := range feeds {
					feed <- chunk
				}
			}
			if readErr == io.EOF {
				return nil
			}
			if readErr != nil {
				return errors.WrapError(readErr, "Reading byte source")
			}
		}
	})

	if err := group.Wait(); err != nil {
		e.logger.Error(engineLogTag, "Aborting hash pass: %s", err.Error())
		return nil, false, err
	}

	results = Results{}
	for i, name := range names {
		if match != "" {
			if !strings.Contains(digests[i], match) {
				continue
			}
			matchFound = true
		}
		results = append(results, Result{Algorithm: name, Digest: digests[i]})
	}

	e.logger.Debug(engineLogTag, "Produced %d digest(s) across %d algorithm(s)", len(results), len(names))

	return results, matchFound, nil
}
