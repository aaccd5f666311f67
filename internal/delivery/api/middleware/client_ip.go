package middleware

import (
	"net"
	"strings"

	"academy/internal/errors"

	"github.com/labstack/echo/v4"
)

// ClientIPExtractor decides what c.RealIP() returns. Without trusted proxies
// only the socket peer counts, so forwarding headers cannot pick a fresh
// rate-limit key. With proxies, X-Forwarded-For is walked back to the first
// hop outside them.
func ClientIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, proxy := range trustedProxies {
		ipNet, err := parseProxy(proxy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(opts...), nil
}

// parseProxy accepts a CIDR or a bare IP.
func parseProxy(raw string) (*net.IPNet, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		_, ipNet, err := net.ParseCIDR(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy %q", raw)
		}

		return ipNet, nil
	}

	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, errors.Errorf("invalid trusted proxy %q", raw)
	}
	bits := 128
	if ip.To4() != nil {
		ip, bits = ip.To4(), 32
	}

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, nil
}
