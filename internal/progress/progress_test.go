package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_SilentOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriter(&buf, "Exporting", 10)
	for range 10 {
		p.Increment()
	}
	p.Done()

	assert.Equal(t, 10, p.Current())
	assert.Empty(t, buf.String())
}

func TestProgress_DrawsOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := &Progress{w: &buf, label: "Exporting", total: 5, isTTY: true}
	p.Increment()
	assert.Equal(t, "\rExporting... 1/5 (20%)", buf.String())

	small := &Progress{w: &buf, label: "Exporting", total: 2, isTTY: true}
	buf.Reset()
	small.Increment()
	small.Done()
	assert.Empty(t, buf.String())
}
