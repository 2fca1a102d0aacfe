// Package testutil provisions throwaway data files for tests that need
// the real filesystem.
package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireDataDir writes each name/content pair into a fresh temp dir and
// returns its path plus a cleanup function.
func AcquireDataDir(t TestLog, files map[string]string) (string, func()) {
	dir, err := ioutil.TempDir("", "rollbook-tests")
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		err := ioutil.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		if err != nil {
			t.Fatal(err)
		}
	}
	return dir, func() {
		err := os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}
