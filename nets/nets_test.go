package nets

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		ctx := context.Background()
		if !isLocalAddr(ctx, "127.0.0.1:10000") {
			t.Fatal()
		}
		if !isLocalAddr(ctx, "10.0.0.1") {
			t.Fatal()
		}
		if isLocalAddr(ctx, "8.8.8.8:53") {
			t.Fatal()
		}
	})
}

func TestProxyAddrDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
	})
}

func TestProxyAddrProduction(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://127.0.0.1:1080")
	dscope.New(
		modes.ForProduction(),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getDialer GetProxyDialer,
	) {
		if addr != "socks://127.0.0.1:1080" {
			t.Fatalf("got %v", addr)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}

func TestHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "+.")
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "+." {
			t.Fatalf("got %q", body)
		}
	})
}
