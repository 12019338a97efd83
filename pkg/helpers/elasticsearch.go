package helpers

import (
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// ESOptions carries the connection settings of the employee search cluster.
type ESOptions struct {
	Addresses []string
	Username  string
	Password  string
}

// NewESClient creates an Elasticsearch client with short timeouts and optional basic auth.
func NewESClient(opts ESOptions) (*elasticsearch.Client, error) {
	if len(opts.Addresses) == 0 {
		return nil, errors.New("elasticsearch: no addresses configured")
	}
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  opts.Addresses,
		Username:   opts.Username,
		Password:   opts.Password,
		MaxRetries: 2,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
}
