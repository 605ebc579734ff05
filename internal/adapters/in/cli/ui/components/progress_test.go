package components

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hoard/pkg/download"
)

func TestProgressPrinter_ThrottlesRedraws(t *testing.T) {
	var buf bytes.Buffer
	pp := NewProgressPrinter(&buf)
	clock := time.Unix(0, 0)
	pp.now = func() time.Time { return clock }

	pp.Update(download.Progress{FileName: "model.gguf", Written: 10, Total: 100})
	pp.Update(download.Progress{FileName: "model.gguf", Written: 20, Total: 100})
	clock = clock.Add(progressInterval)
	pp.Update(download.Progress{FileName: "model.gguf", Written: 30, Total: 100})

	assert.Equal(t, 2, strings.Count(buf.String(), "\r"))
}

func TestProgressPrinter_AlwaysDrawsCompletion(t *testing.T) {
	var buf bytes.Buffer
	pp := NewProgressPrinter(&buf)
	pp.now = func() time.Time { return time.Unix(0, 0) }

	pp.Update(download.Progress{FileName: "model.gguf", Written: 10, Total: 100})
	pp.Update(download.Progress{FileName: "model.gguf", Written: 100, Total: 100})
	pp.Done()

	out := stripANSI(buf.String())
	assert.Equal(t, 2, strings.Count(out, "\r"))
	assert.Contains(t, out, "100 B / 100 B")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestProgressPrinter_NewFileStartsNewLine(t *testing.T) {
	var buf bytes.Buffer
	pp := NewProgressPrinter(&buf)

	pp.Update(download.Progress{FileName: "config.json", Written: 5, Total: 5})
	pp.Update(download.Progress{FileName: "model.gguf", Written: 1, Total: -1})

	out := stripANSI(buf.String())
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "model.gguf")
	assert.Contains(t, out, "1 B")
}
