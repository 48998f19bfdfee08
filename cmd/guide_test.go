package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	env := newBareEnv(t)

	env.contains(env.run("guide"), "# faqd")
	env.contains(env.run("guide", "search"), "# faqd search")

	out, err := env.runErr("guide", "nope")
	assert.Error(t, err)
	env.contains(out, "Available: backends, mcp, search, taxonomy")
}

func TestVersion(t *testing.T) {
	env := newBareEnv(t)

	env.contains(env.run("version"), "Build Tag:    dev")

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(env.run("version", "-o", "json")), &info))
	assert.Equal(t, "dev", info["build_tag"])
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.runErr("ls", "-o", "yaml")
	assert.Error(t, err)
	env.contains(out, "invalid output format")
}
