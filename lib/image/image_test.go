package image

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, 0x1000, []byte{0x01, 0x02, 0x03, 0x04})
	assert.NoError(t, err)

	out := sb.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.NotEmpty(t, lines)
	for _, ln := range lines {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(ln), ":"), "record %q", ln)
	}
	assert.Contains(t, out, "01020304")
	// end-of-file record
	assert.Contains(t, lines[len(lines)-1], ":00000001FF")
}

func TestWriteEmpty(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, 0x401000, nil)
	assert.NoError(t, err)
	assert.Empty(t, sb.String())
}
