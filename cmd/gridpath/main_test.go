package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestSolve_Found(t *testing.T) {
	path := writeFile(t, "grid.txt", "0 0 0\n0 5 0\n0 0 0\n")

	code, out, _ := runCLI("solve", "-grid", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t,
		"3 3 3\n1 5 3\n0 0 3\n"+
			"path [(0,0) (1,0) (2,0) (2,1) (2,2)]\n"+
			"cost 4 expanded 6\n",
		out)
}

func TestSolve_NoPath(t *testing.T) {
	path := writeFile(t, "grid.txt", "05\n50\n")

	code, out, _ := runCLI("solve", "-grid", path)
	require.Equal(t, exitNoPath, code)
	assert.Equal(t, "1 5\n5 0\nno path (expanded 1)\n", out)
}

func TestSolve_Endpoints(t *testing.T) {
	path := writeFile(t, "grid.txt", "000\n")

	code, out, _ := runCLI("solve", "-grid", path, "-start", "2,0", "-goal", "0,0")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "path [(2,0) (1,0) (0,0)]\n")
}

// TestSolve_ConfigFile reads everything from YAML; -render overrides it.
func TestSolve_ConfigFile(t *testing.T) {
	gridPath := writeFile(t, "grid.txt", "00\n")
	cfgPath := writeFile(t, "gridpath.yaml",
		"grid:\n  path: "+gridPath+"\nrender:\n  mode: fcost\nlog:\n  level: error\n")

	code, out, _ := runCLI("solve", "-config", cfgPath)
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "1.00 1.00\n")

	code, out, _ = runCLI("solve", "-config", cfgPath, "-render", "kind")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "3 3\n")
}

func TestSolve_Errors(t *testing.T) {
	good := writeFile(t, "grid.txt", "00\n00\n")
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"NoGrid", []string{"solve"}, "no grid file"},
		{"MissingFile", []string{"solve", "-grid", filepath.Join(t.TempDir(), "nope.txt")}, "no such file"},
		{"Malformed", []string{"solve", "-grid", writeFile(t, "bad.txt", "0x\n")}, "malformed input"},
		{"ObstacleStart", []string{"solve", "-grid", writeFile(t, "obs.txt", "50\n00\n")}, "configuration error"},
		{"OutOfBounds", []string{"solve", "-grid", good, "-goal", "9,9"}, "configuration error"},
		{"BadPoint", []string{"solve", "-grid", good, "-start", "1"}, "want x,y"},
		{"BadRender", []string{"solve", "-grid", good, "-render", "svg"}, "render.mode"},
		{"MissingConfig", []string{"solve", "-config", filepath.Join(t.TempDir(), "nope.yaml")}, "config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := runCLI(tc.args...)
			assert.Equal(t, exitError, code)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestRun_Commands(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "usage:")

	code, _, errOut = runCLI("walk")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, `unknown command "walk"`)

	code, out, _ := runCLI("help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "gridpath serve")

	code, _, _ = runCLI("serve", "-bogus")
	assert.Equal(t, exitError, code)
}
