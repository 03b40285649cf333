package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugWith(t *testing.T) {
	var buf bytes.Buffer
	previous := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = previous }()

	DebugWith("visgraph", "graph computed", Context{"vertices": 4})

	var msg Message
	require.NoError(t, json.Unmarshal(buf.Bytes(), &msg))

	assert.Equal(t, "visgraph", msg.Service)
	assert.Equal(t, "graph computed", msg.Message)
	assert.Equal(t, 4.0, msg.Context["vertices"])
	assert.NotEmpty(t, msg.Time)
}

func TestCheckAndAssert(t *testing.T) {
	assert.NotPanics(t, func() { Check(nil, "fine") })
	assert.PanicsWithError(t, "not fine: boom", func() { Check(errors.New("boom"), "not fine") })

	assert.NotPanics(t, func() { Assert(true, "fine") })
	assert.PanicsWithError(t, "not fine", func() { Assert(false, "not fine") })
}

func TestWarnWithPlainError(t *testing.T) {
	var buf bytes.Buffer
	warnWith(&buf, errors.New("scene has crossing obstacles"))

	assert.Equal(t, "scene has crossing obstacles\n", buf.String())
}

func TestFailWith(t *testing.T) {
	var buf bytes.Buffer
	failWith(&buf, Chain("could not read scene", errors.New("no such file")))

	assert.Contains(t, buf.String(), "An error occurred.")

	code := 0
	previous := exit
	exit = func(c int) { code = c }
	defer func() { exit = previous }()

	FailWith(Chain("could not read scene", errors.New("no such file")))
	assert.Equal(t, 1, code)
}
