package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/boxcar/internal/project"
	"github.com/roach88/boxcar/internal/skeleton"
)

const testApp = "shop"

// newApp writes a Rails skeleton into a temp dir and returns the dir.
func newApp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tree, err := project.Open(dir)
	require.NoError(t, err)
	require.NoError(t, skeleton.Write(tree, testApp, false))
	return dir
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// decodeData decodes the data field of a JSON CLIResponse into out.
func decodeData(t *testing.T, raw string, out any) CLIResponse {
	t.Helper()
	var resp struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &resp), raw)
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp.CLIResponse
}

func decodeJSON(raw string, out any) error {
	return json.Unmarshal([]byte(raw), out)
}
