package matcher

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*", "app_config_set", true},
		{"", "app_config_set", false},
		{"app_config_*", "app_config_set", true},
		{"app_config_*", "app_greet", false},
		{"app_greet", "app_greet", true},
		{"app_greet", "app_greeting", false},
	}

	for i, tc := range cases {
		if got := Match(tc.pattern, tc.name); got != tc.want {
			t.Fatalf("case %d: Match(%q, %q) = %v, want %v", i, tc.pattern, tc.name, got, tc.want)
		}
	}
}
