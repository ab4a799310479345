package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	orig := [3]string{Version, CommitHash, BuildDate}
	t.Cleanup(func() { Version, CommitHash, BuildDate = orig[0], orig[1], orig[2] })

	Version, CommitHash, BuildDate = "v1.2.0", "abc1234", "2026-01-02"
	assert.Equal(t, "v1.2.0 (commit abc1234, built 2026-01-02)", String())
}
