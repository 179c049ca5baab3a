// Package testsupport holds helpers shared by the package test suites.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
)

// ReadFixture loads a file from the calling package's testdata directory.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// DiffCommon fails the test when two common attribute blocks differ. The
// callback fields are ignored since function values are not comparable;
// assert on those directly when a test sets them.
func DiffCommon(t *testing.T, want, got attributes.CommonAttributes) {
	t.Helper()

	ignore := cmpopts.IgnoreFields(attributes.CommonAttributes{},
		"OnInput", "OnFocus", "OnBlur", "OnChange")
	if diff := cmp.Diff(want, got, ignore); diff != "" {
		t.Fatalf("common attributes mismatch (-want +got):\n%s", diff)
	}
}
