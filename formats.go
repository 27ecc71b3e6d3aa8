// Credit to https://github.com/santhosh-tekuri/jsonschema for the format
// validator implementations, adapted here to validate the Schema.Format
// constraint on String targets during scalar coercion rather than JSON
// Schema "format" annotations.
package sap

import (
	"errors"
	"net"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address must be enclosed in brackets")
	ErrInvalidIPv6Address     = errors.New("invalid ipv6 address")
)

// formatValidators is a registry of functions that know how to validate a
// specific Schema.Format name. Format is not a closed enum, so unknown
// names are a no-op rather than a hard failure.
var formatValidators = map[string]func(string) bool{
	"date-time": IsDateTime,
	"date":      IsDate,
	"time":      IsTime,
	"hostname":  IsHostname,
	"email":     IsEmail,
	"ipv4":      IsIPV4,
	"ipv6":      IsIPV6,
	"uri":       IsURI,
	"uuid":      IsUUID,
	"regex":     IsRegex,
}

// IsDateTime tells whether s is a valid date-time representation as defined
// by RFC 3339, section 5.6.
func IsDateTime(s string) bool {
	if len(s) < 20 { // yyyy-mm-ddThh:mm:ssZ
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return IsDate(s[:10]) && IsTime(s[11:])
}

// IsDate tells whether s is a valid full-date production (RFC 3339 §5.6).
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime tells whether s is a valid full-time production (RFC 3339 §5.6).
// Go's time package does not support leap seconds, so this parses the
// fields manually rather than delegating to time.Parse.
func IsTime(str string) bool {
	// hh:mm:ss
	// 01234567
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	isInRange := func(s string, min, max int) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok bool
	if h, ok = isInRange(str[0:2], 0, 23); !ok {
		return false
	}
	if m, ok = isInRange(str[3:5], 0, 59); !ok {
		return false
	}
	if s, ok = isInRange(str[6:8], 0, 60); !ok {
		return false
	}
	str = str[8:]

	if len(str) > 0 && str[0] == '.' {
		str = str[1:]
		digits := 0
		for str != "" && str[0] >= '0' && str[0] <= '9' {
			digits++
			str = str[1:]
		}
		if digits == 0 {
			return false
		}
	}

	if len(str) == 0 {
		return false
	}

	if str[0] == 'z' || str[0] == 'Z' {
		if len(str) != 1 {
			return false
		}
	} else {
		if len(str) != 6 || str[3] != ':' {
			return false
		}
		var sign int
		switch str[0] {
		case '+':
			sign = -1
		case '-':
			sign = 1
		default:
			return false
		}
		zh, ok1 := isInRange(str[1:3], 0, 23)
		zm, ok2 := isInRange(str[4:6], 0, 59)
		if !ok1 || !ok2 {
			return false
		}
		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}

	if s == 60 && (h != 23 || m != 59) {
		return false
	}
	return true
}

// IsHostname tells whether s is a valid Internet host name (RFC 1034 §3.1,
// RFC 1123 §2.1).
func IsHostname(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		n := len(label)
		if n < 1 || n > 63 {
			return false
		}
		if label[0] == '-' || label[n-1] == '-' {
			return false
		}
		for _, c := range label {
			valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !valid {
				return false
			}
		}
	}
	return true
}

// IsEmail tells whether s is a valid Internet email address (RFC 5322
// §3.4.1).
func IsEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return IsIPV6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return IsIPV4(ip)
	}
	if !IsHostname(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// IsIPV4 tells whether s is a valid dotted-quad IPv4 address (RFC 2673
// §3.2).
func IsIPV4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, group := range groups {
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && group[0] == '0' {
			return false // leading zeroes would be ambiguous with octal
		}
	}
	return true
}

// IsIPV6 tells whether s is a valid IPv6 address (RFC 2373 §2.2).
func IsIPV6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

// IsURI tells whether s is a valid absolute URI (RFC 3986).
func IsURI(s string) bool {
	u, err := parseURIWithIPv6Check(s)
	return err == nil && u.IsAbs()
}

func parseURIWithIPv6Check(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	hostname := u.Hostname()
	if strings.IndexByte(hostname, ':') != -1 {
		if strings.IndexByte(u.Host, '[') == -1 || strings.IndexByte(u.Host, ']') == -1 {
			return nil, ErrIPv6AddressNotEnclosed
		}
		if !IsIPV6(hostname) {
			return nil, ErrInvalidIPv6Address
		}
	}
	return u, nil
}

// IsUUID tells whether s is a valid UUID (RFC 4122).
func IsUUID(s string) bool {
	parseHex := func(n int) bool {
		for n > 0 {
			if len(s) == 0 {
				return false
			}
			hex := (s[0] >= '0' && s[0] <= '9') || (s[0] >= 'a' && s[0] <= 'f') || (s[0] >= 'A' && s[0] <= 'F')
			if !hex {
				return false
			}
			s = s[1:]
			n--
		}
		return true
	}
	groups := []int{8, 4, 4, 4, 12}
	for i, numDigits := range groups {
		if !parseHex(numDigits) {
			return false
		}
		if i == len(groups)-1 {
			break
		}
		if len(s) == 0 || s[0] != '-' {
			return false
		}
		s = s[1:]
	}
	return len(s) == 0
}

// IsRegex tells whether s compiles as a regular expression.
func IsRegex(s string) bool {
	_, err := compileCached(s)
	return err == nil
}
