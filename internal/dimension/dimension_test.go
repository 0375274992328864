package dimension

import "testing"

func TestParseAuto(t *testing.T) {
	for _, s := range []string{"auto", "Auto", "AUTO", "AuTo"} {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", s, err)
		}
		if !d.IsAuto() {
			t.Fatalf("Parse(%q): expected Auto, got %v", s, d)
		}
	}
}

func TestParseValue(t *testing.T) {
	d, err := Parse("120")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsAuto() {
		t.Fatalf("expected a fixed value, got Auto")
	}
	if got := d.Resolve(999); got != 120 {
		t.Fatalf("Resolve: got %d, want 120", got)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "-1", "not-a-number", "99999999999"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("Parse(%q): expected error, got nil", s)
		}
	}
}

func TestResolveAuto(t *testing.T) {
	if got := Auto.Resolve(250); got != 250 {
		t.Fatalf("Auto.Resolve(250): got %d, want 250", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"auto", "0", "42", "65535"}
	for _, s := range cases {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := d.String(); got != s {
			t.Fatalf("String(): got %q, want %q", got, s)
		}
	}
}

func TestSetImplementsPflagValue(t *testing.T) {
	var d Dimension
	if err := d.Set("auto"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !d.IsAuto() {
		t.Fatalf("expected Auto after Set")
	}
	if d.Type() != "dimension" {
		t.Fatalf("Type(): got %q", d.Type())
	}
}
