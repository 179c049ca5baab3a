package attributes_test

import (
	"testing"

	"github.com/goliatone/go-fieldattrs/pkg/attributes"
)

func TestDefaultLabeler(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "name", want: "Name"},
		{input: "firstName", want: "First Name"},
		{input: "first_name", want: "First Name"},
		{input: "first-name", want: "First Name"},
		{input: "APIKey", want: "Apikey"},
		{input: "address2", want: "Address 2"},
		{input: "line2Suffix", want: "Line 2 Suffix"},
		{input: "__trimmed__", want: "Trimmed"},
		{input: "mixed_caseValue", want: "Mixed Case Value"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := attributes.DefaultLabeler(tc.input); got != tc.want {
				t.Fatalf("DefaultLabeler(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
