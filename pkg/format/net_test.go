package format

import (
	"testing"
)

func TestAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{
			name: "IPv4 address",
			host: "192.168.1.1",
			port: 8080,
			want: "192.168.1.1:8080",
		},
		{
			name: "hostname",
			host: "example.com",
			port: 443,
			want: "example.com:443",
		},
		{
			name: "IPv6 address",
			host: "::1",
			port: 4433,
			want: "[::1]:4433",
		},
		{
			name: "IPv6 full address",
			host: "2001:0db8:85a3:0000:0000:8a2e:0370:7334",
			port: 443,
			want: "[2001:0db8:85a3:0000:0000:8a2e:0370:7334]:443",
		},
		{
			name: "empty host",
			host: "",
			port: 4433,
			want: ":4433",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Addr(tt.host, tt.port); got != tt.want {
				t.Errorf("Addr(%q, %d) = %q; want %q", tt.host, tt.port, got, tt.want)
			}
		})
	}
}

func TestCID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   []byte
		want string
	}{
		{
			name: "eight bytes",
			id:   []byte{0x01, 0x02, 0x03, 0x04, 0xaa, 0xbb, 0xcc, 0xdd},
			want: "01020304aabbccdd",
		},
		{
			name: "single byte",
			id:   []byte{0x00},
			want: "00",
		},
		{
			name: "empty",
			id:   nil,
			want: "-",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CID(tt.id); got != tt.want {
				t.Errorf("CID(%x) = %q; want %q", tt.id, got, tt.want)
			}
		})
	}
}
