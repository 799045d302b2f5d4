package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/cfb-meta-service/internal/providers"
	"github.com/preston-bernstein/cfb-meta-service/internal/scoreboard"
)

//go:embed scoreboard.json
var sampleScoreboard []byte

const (
	sourceFixture = "fixture"
	sourceFile    = "file"
)

// Provider serves a scoreboard document from bytes on hand: the bundled sample slate, or a
// saved JSON file. The document is decoded fresh on every fetch.
type Provider struct {
	source string
	read   func() ([]byte, error)
}

// New returns a provider backed by the bundled sample scoreboard, useful for local runs and tests.
func New() *Provider {
	return &Provider{
		source: sourceFixture,
		read: func() ([]byte, error) {
			return sampleScoreboard, nil
		},
	}
}

// FromFile returns a provider that reads a saved scoreboard JSON file on each fetch.
func FromFile(path string) *Provider {
	return &Provider{
		source: sourceFile,
		read: func() ([]byte, error) {
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("scoreboard file not found: %s", path)
			}
			return data, err
		},
	}
}

// FetchScoreboard returns the provider's document. The date is ignored: a saved slate is whatever it is.
func (p *Provider) FetchScoreboard(ctx context.Context, date string) (scoreboard.Document, error) {
	_ = date
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := p.read()
	if err != nil {
		return nil, &providers.AcquisitionError{Source: p.source, Err: err}
	}
	doc, err := scoreboard.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &providers.AcquisitionError{Source: p.source, Err: err}
	}
	return doc, nil
}

// Sample decodes the bundled scoreboard. It panics if the embedded file is broken.
func Sample() scoreboard.Document {
	doc, err := scoreboard.Decode(bytes.NewReader(sampleScoreboard))
	if err != nil {
		panic(err)
	}
	return doc
}
