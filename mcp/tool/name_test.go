package tool

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct {
		in  []string
		out string
	}{
		{[]string{"app"}, "app"},
		{[]string{"app", "greet"}, "app_greet"},
		{[]string{"app", "child-a"}, "app_child_a"},
		{[]string{"my-cli", "config", "set"}, "my_cli_config_set"},
	}

	for i, tc := range cases {
		if got := Join(tc.in).String(); got != tc.out {
			t.Fatalf("case %d: Join(%v) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"child-flag", "child_flag"},
		{"env", "env"},
		{"log-level", "log_level"},
	}

	for i, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("case %d: Normalize(%q) = %q, want %q", i, tc.in, got, tc.out)
		}
	}
}
