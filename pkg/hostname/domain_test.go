package hostname

import "testing"

func TestDecompose(t *testing.T) {
	tests := []struct {
		hostname string
		want     Domain
	}{
		{hostname: "www.example.com", want: Domain{Suffix: "com", TopDomain: "example.com", TopPrivateDomain: "example.com"}},
		{hostname: "example.co.uk", want: Domain{Suffix: "co.uk", TopDomain: "example.co.uk", TopPrivateDomain: "example.co.uk"}},
		{hostname: "foo.blogspot.com", want: Domain{Suffix: "com", TopDomain: "blogspot.com", TopPrivateDomain: "foo.blogspot.com"}},
		{hostname: "co.uk", want: Domain{Suffix: "co.uk", TopDomain: Invalid, TopPrivateDomain: Invalid}},
		{hostname: "shop.notarealtld", want: Domain{Suffix: NoSuffix, TopDomain: Invalid, TopPrivateDomain: Invalid}},
		{hostname: "10.0.0.1", want: Domain{Suffix: Invalid, TopDomain: Invalid, TopPrivateDomain: Invalid}},
		{hostname: "-bad.example.com", want: Domain{Suffix: Invalid, TopDomain: Invalid, TopPrivateDomain: Invalid}},
	}
	for _, tt := range tests {
		t.Run(tt.hostname, func(t *testing.T) {
			if got := Decompose(tt.hostname); got != tt.want {
				t.Errorf("Decompose mismatch: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSyntacticHelpers(t *testing.T) {
	if !IsIPv4("192.168.0.1") {
		t.Error("expected 192.168.0.1 to be IPv4")
	}
	if IsIPv4("256.1.1.1") {
		t.Error("expected 256.1.1.1 not to be IPv4")
	}
	if IsIPv4("01.1.1.1") {
		t.Error("expected 01.1.1.1 not to be IPv4")
	}
	if got := CountDots("a.b.c.d"); got != 3 {
		t.Errorf("CountDots mismatch: got %d, want 3", got)
	}
	if got := CountDigits("x1y22.com"); got != 3 {
		t.Errorf("CountDigits mismatch: got %d, want 3", got)
	}
}
