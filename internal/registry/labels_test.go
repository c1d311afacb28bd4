package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLabel(t *testing.T) {
	cases := []struct {
		kind    labelKind
		in      string
		want    string
		wantErr bool
	}{
		{kindName, "", "", false},
		{kindName, "  api-1.v2_x ", "api-1.v2_x", false},
		{kindName, "has space", "", true},
		{kindName, "web@1700", "", true},
		{kindName, "1234", "", true},
		{kindTag, "1234", "1234", false},
		{kindTag, "env:prod", "env:prod", false},
		{kindGroup, "a,b", "", true},
		{kindGroup, "team/batch", "team/batch", false},
		{kindTag, strings.Repeat("x", maxLabelLen+1), "", true},
		{kindTag, strings.Repeat("é", maxLabelLen), strings.Repeat("é", maxLabelLen), false},
	}
	for _, tc := range cases {
		got, err := checkLabel(tc.kind, tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("checkLabel(%s, %q) err=%v, wantErr=%v", tc.kind, tc.in, err, tc.wantErr)
		}
		if err != nil && !strings.Contains(err.Error(), string(tc.kind)) {
			t.Fatalf("checkLabel(%s, %q) error %q does not name the kind", tc.kind, tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("checkLabel(%s, %q)=%q, want %q", tc.kind, tc.in, got, tc.want)
		}
	}
}

func TestCheckLabelsNormalizes(t *testing.T) {
	got, err := checkLabels(kindTag, []string{" web ", "web", "", "db"})
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "db"}, got)

	_, err = checkLabels(kindGroup, []string{"ok", "not ok"})
	require.ErrorIs(t, err, ErrInvalidLabel)
}
