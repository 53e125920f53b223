package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binclock/internal/display"
	"github.com/roach88/binclock/internal/testutil"
	"github.com/roach88/binclock/internal/ticker"
)

func TestFrameCommand_At(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"frame", "--at", "09:05:07"})

	require.NoError(t, cmd.Execute())

	want := "     HH  MM  SS\n" +
		"08:  .x  ..  ..\n" +
		"04:  ..  .x  .x\n" +
		"02:  ..  ..  .x\n" +
		"01:  .x  .x  .x\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), ticker.ClearScreen)
}

func TestFrameCommand_UsesClockWhenNoAt(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &FrameOptions{
		RootOptions: &RootOptions{},
		Clock:       testutil.ClockAt(23, 59, 59),
	}
	cmd := newFrameCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	r := display.New(testutil.ClockAt(23, 59, 59))
	r.Update()
	assert.Equal(t, r.Frame(), buf.String())
}

func TestFrameCommand_VerboseLogsToStderr(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"frame", "-v", "--at", "12:34:56"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "clock=123456")
	assert.NotContains(t, out.String(), "clock=")
}

func TestFrameCommand_InvalidAt(t *testing.T) {
	tests := []string{"9:5", "24:00:00", "12:60:00", "noon"}

	for _, at := range tests {
		t.Run(at, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"frame", "--at", at})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid --at")
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}
