// Package testutil provides golden-file comparison helpers shared by
// matchc's package tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateGoldens controls whether CompareWithGolden overwrites golden files
// instead of comparing against them. Set via environment variable:
// UPDATE_GOLDENS=true go test ./...
var UpdateGoldens = os.Getenv("UPDATE_GOLDENS") == "true"

// GoldenMeta captures platform information for reproducibility.
type GoldenMeta struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GoldenFile is the on-disk shape of a golden file: metadata plus the
// comparison payload.
type GoldenFile struct {
	Meta GoldenMeta  `json:"meta"`
	Data interface{} `json:"data"`
}

// GoldenPath returns the path to a golden file under testdata/feature/name.
func GoldenPath(feature, name string) string {
	return filepath.Join("testdata", feature, name+".golden.json")
}

// CompareWithGolden compares actual against the golden file for
// feature/name. With UPDATE_GOLDENS=true it writes actual as the new
// golden instead of comparing.
func CompareWithGolden(t *testing.T, feature, name string, actual interface{}) {
	t.Helper()

	path := GoldenPath(feature, name)
	golden := GoldenFile{
		Meta: GoldenMeta{GoVersion: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH},
		Data: actual,
	}

	actualJSON, err := marshalIndentSorted(golden)
	if err != nil {
		t.Fatalf("marshal actual: %v", err)
	}

	if UpdateGoldens {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, actualJSON, 0o644); err != nil {
			t.Fatalf("write golden file: %v", err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expectedBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file does not exist: %s (run with UPDATE_GOLDENS=true to create)", path)
		}
		t.Fatalf("read golden file: %v", err)
	}

	var expected, got GoldenFile
	if err := json.Unmarshal(expectedBytes, &expected); err != nil {
		t.Fatalf("unmarshal golden file: %v", err)
	}
	if err := json.Unmarshal(actualJSON, &got); err != nil {
		t.Fatalf("unmarshal actual: %v", err)
	}

	if diff := cmp.Diff(expected.Data, got.Data); diff != "" {
		t.Errorf("golden mismatch for %s/%s (-want +got):\n%s", feature, name, diff)
	}
}

func marshalIndentSorted(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generic, "", "  ")
}
