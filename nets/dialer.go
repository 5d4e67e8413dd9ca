package nets

import (
	"context"
	"net"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer goes direct for loopback and private addresses, and through the proxy otherwise.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
) Dialer {
	var direct net.Dialer
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		if isLocalAddr(ctx, addr) {
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return proxyDialer.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(context.Context, string, string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network string, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}

type IsLocalAddr func(ctx context.Context, addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		ips, err := net.DefaultResolver.LookupIP(ctx, "ip", host)
		if err != nil {
			// unknown hosts go through the proxy
			return false
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true
			}
		}
		return false
	}
}
