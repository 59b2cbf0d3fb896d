package httpclient

import (
	"net"
	"net/url"
	"os"
	"strings"

	proxy "github.com/cloudfoundry/socks5-proxy"

	goproxy "golang.org/x/net/proxy"
)

type DialFunc func(network, address string) (net.Conn, error)

func (f DialFunc) Dial(network, address string) (net.Conn, error) { return f(network, address) }

type ProxyDialer interface {
	Dialer(string, string, string) (proxy.DialFunc, error)
}

// SOCKS5DialFuncFromEnvironment wraps the dialer with the proxy named
// in OMNIHASH_ALL_PROXY. An `ssh+socks5://` scheme tunnels through an
// SSH host using the private key given in the URL query.
func SOCKS5DialFuncFromEnvironment(origDialer DialFunc, socks5Proxy ProxyDialer) DialFunc {
	allProxy := os.Getenv("OMNIHASH_ALL_PROXY")
	if len(allProxy) == 0 {
		return origDialer
	}

	if strings.HasPrefix(allProxy, "ssh+") {
		allProxy = strings.TrimPrefix(allProxy, "ssh+")

		proxyURL, err := url.Parse(allProxy)
		if err != nil {
			return origDialer
		}

		queryMap, err := url.ParseQuery(proxyURL.RawQuery)
		if err != nil {
			return origDialer
		}

		proxySSHKeyPath, ok := queryMap["private-key"]
		if !ok || len(proxySSHKeyPath) == 0 {
			return origDialer
		}

		proxySSHKey, err := os.ReadFile(proxySSHKeyPath[0])
		if err != nil {
			return origDialer
		}

		username := ""
		if proxyURL.User != nil {
			username = proxyURL.User.Username()
		}

		return func(network, address string) (net.Conn, error) {
			dialer, err := socks5Proxy.Dialer(username, string(proxySSHKey), proxyURL.Host)
			if err != nil {
				return nil, err
			}
			return dialer(network, address)
		}
	}

	proxyURL, err := url.Parse(allProxy)
	if err != nil {
		return origDialer
	}

	proxyDialer, err := goproxy.FromURL(proxyURL, origDialer)
	if err != nil {
		return origDialer
	}

	noProxy := os.Getenv("no_proxy")
	if len(noProxy) == 0 {
		return proxyDialer.Dial
	}

	perHost := goproxy.NewPerHost(proxyDialer, origDialer)
	perHost.AddFromString(noProxy)

	return perHost.Dial
}
