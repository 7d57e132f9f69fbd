package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--stage", "Test", "--config", "testdata/missing.json"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrepareCommand(t *testing.T) {
	out, err := execute(t, "prepare", "Atlet!!", "https://t.co/abc", "@ponxxi")
	require.NoError(t, err)
	assert.Equal(t, "atlet\n", out)
}

func TestPredictCommandWithoutModel(t *testing.T) {
	_, err := execute(t, "predict", "bangga")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte(
		"username,full_text,Sentimen,swremove_text,hashtag,mention\n"+
			"budi,Bangga sama atlet PON,Positif,\"['bangga', 'atlet']\",[],[]\n",
	), 0644))

	out, err := execute(t, "import", csvFile)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 posts from "+csvFile+"\n", out)
}

func TestCommandArgs(t *testing.T) {
	_, err := execute(t, "import")
	assert.Error(t, err)

	_, err = execute(t, "prepare")
	assert.Error(t, err)
}
