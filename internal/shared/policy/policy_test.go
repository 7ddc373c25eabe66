package policy

import "testing"

func TestAuthorize(t *testing.T) {
	p := New([]string{"+6281111111111"}, "user")

	cases := []struct {
		name  string
		phone string
		role  string
		want  bool
	}{
		{name: "allow-listed phone with default role", phone: "+6281111111111", role: "user", want: true},
		{name: "allow-listed phone with empty role", phone: "+6281111111111", role: "", want: true},
		{name: "unlisted phone with default role", phone: "+6289999999999", role: "user", want: false},
		{name: "unlisted phone with empty role", phone: "+6289999999999", role: "", want: false},
		{name: "unlisted phone with elevated role", phone: "+6289999999999", role: "admin", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Authorize(tc.phone, tc.role); got != tc.want {
				t.Fatalf("Authorize(%q, %q) = %v, want %v", tc.phone, tc.role, got, tc.want)
			}
		})
	}
}

func TestAuthorizeEmptyAllowList(t *testing.T) {
	p := New(nil, "user")

	if p.Authorize("+6281111111111", "user") {
		t.Fatal("no phone should be privileged without an allow-list")
	}
	if !p.Authorize("+6281111111111", "admin") {
		t.Fatal("elevated role should still be privileged")
	}
}
