package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, Version, String())

	prevCommit, prevTime := GitCommit, BuildTime
	t.Cleanup(func() { GitCommit, BuildTime = prevCommit, prevTime })
	GitCommit, BuildTime = "abc123", "2026-01-02"
	assert.Equal(t, Version+" (abc123, 2026-01-02)", String())
}
