package officenet

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_Allowed(t *testing.T) {
	checker := NewChecker([]string{"127.0.0.1", "::1", "192.168.1.0/24"})

	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"::1", true},
		{"192.168.1.42", true},
		{"192.168.1.255", true},
		{"192.168.2.1", false},
		{"10.0.0.1", false},
		{"8.8.8.8", false},
		{"not-an-ip", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, checker.Allowed(c.ip), "ip %q", c.ip)
	}
}

func TestChecker_EmptyWhitelistAllowsAll(t *testing.T) {
	checker := NewChecker(nil)
	assert.True(t, checker.Allowed("8.8.8.8"))
	assert.True(t, checker.Allowed("garbage"))
}

func TestChecker_SkipsInvalidEntries(t *testing.T) {
	checker := NewChecker([]string{"not-an-ip", "300.1.2.3/8", "10.0.0.0/8"})
	assert.True(t, checker.Allowed("10.1.2.3"))
	assert.False(t, checker.Allowed("11.1.2.3"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/member/attendance/checkin", nil)
	r.RemoteAddr = "203.0.113.5:51234"
	assert.Equal(t, "203.0.113.5", ClientIP(r))

	r.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", ClientIP(r))

	// X-Forwarded-For wins over X-Real-IP; first hop is the client
	r.Header.Set("X-Forwarded-For", "192.0.2.9, 10.0.0.1")
	assert.Equal(t, "192.0.2.9", ClientIP(r))
}
