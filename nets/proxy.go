package nets

import (
	"context"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	if mode == modes.ModeDevelopment {
		return ""
	}
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	return vars.FirstNonZero(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		configs.First[ProxyAddr](loader, "proxy_address"),
		configs.First[ProxyAddr](loader, "http_proxy"),
		configs.First[ProxyAddr](loader, "socks_proxy"),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("SOCKS_PROXY")),
		ProxyAddr(os.Getenv("socks_proxy")),
	)
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	proxyAddr ProxyAddr,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		if proxyAddr == "" {
			return direct, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := proxyDialer.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}), nil
	})
}
