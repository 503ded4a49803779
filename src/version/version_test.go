package version_test

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/ironsmile/musicsearch/src/version"
)

// TestVersionPrinting makes sure some things are always part of the printed version
// string.
func TestVersionPrinting(t *testing.T) {
	if version.Version == "" {
		t.Fatalf("version.Version cannot be completely empty")
	}

	var buff bytes.Buffer
	version.Print(&buff)

	if !strings.Contains(buff.String(), version.Version) {
		t.Errorf("printed version does not contain the actual version string")
	}

	if !strings.Contains(buff.String(), runtime.Version()) {
		t.Errorf("printed version does not contain Golang version")
	}
}

func TestVersionJSON(t *testing.T) {
	var buff bytes.Buffer
	if err := version.PrintJSON(&buff); err != nil {
		t.Fatalf("printing JSON: %s", err)
	}

	var info version.Info
	if err := json.Unmarshal(buff.Bytes(), &info); err != nil {
		t.Fatalf("decoding JSON: %s", err)
	}

	if info != version.Get() {
		t.Errorf("expected %+v but got %+v", version.Get(), info)
	}
}
