package authshell

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"manager", RoleManager, true},
		{"member", RoleMember, true},
		{"  Manager ", RoleManager, true},
		{"MEMBER", RoleMember, true},
		{"admin", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := ParseRole(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("ParseRole(%q) = %v, %v", c.in, got, err)
		}
		if !c.ok && !errors.Is(err, ErrRoleInvalid) {
			t.Fatalf("ParseRole(%q) err = %v, want ErrRoleInvalid", c.in, err)
		}
	}
}

func TestNameLocalPart(t *testing.T) {
	if got := NameLocalPart("alice@acme.com"); got != "alice" {
		t.Fatalf("got %q", got)
	}
	if got := NameLocalPart("no-at-sign"); got != "no-at-sign" {
		t.Fatalf("got %q", got)
	}
	if got := NameLocalPart("a@b@c"); got != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("", "pw"); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := ValidateLoginInput("a@b.c", ""); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := ValidateLoginInput("a@b.c", "pw"); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateSignupInput(t *testing.T) {
	if err := ValidateSignupInput("a@b.c", "longenough", "", 8); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("err = %v", err)
	}
	if err := ValidateSignupInput("a@b.c", "short", "n", 8); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("err = %v", err)
	}
	// Non-positive minimum falls back to the default of 8.
	if err := ValidateSignupInput("a@b.c", "1234567", "n", 0); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("err = %v", err)
	}
	if err := ValidateSignupInput("a@b.c", "12345678", "n", 0); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestSessionRecordRoundTrip(t *testing.T) {
	in := Session{ID: "id-1", Email: "a@b.c", Name: "a", Role: RoleManager, Avatar: "http://x/y.png"}
	data, err := encodeSession(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodeSession(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip %+v != %+v", out, in)
	}

	if _, err := encodeSession(Session{ID: "x", Email: "y", Role: "root"}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("encode invalid role err = %v", err)
	}
}

func TestStateString(t *testing.T) {
	if StateAnonymous.String() != "anonymous" ||
		StateAuthenticating.String() != "authenticating" ||
		StateAuthenticated.String() != "authenticated" {
		t.Fatal("unexpected state names")
	}
	if State(99).String() != "unknown" {
		t.Fatal("unexpected fallback name")
	}
}
