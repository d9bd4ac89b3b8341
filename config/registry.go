package config

import (
	"errors"
	"net/url"

	"github.com/hashicorp/consul/api"
)

var ErrNoScheme = errors.New("please specify a scheme for the registry")

type Registry struct {
	Location   string
	Token      string
	Datacenter string
}

// Enabled reports whether self registration is configured at all.
func (r Registry) Enabled() bool {
	return r.Location != ""
}

func (r Registry) Config() (*api.Config, error) {
	url, err := url.Parse(r.Location)
	if err != nil {
		return nil, err
	}
	if url.Scheme == "" {
		return nil, ErrNoScheme
	}

	config := &api.Config{
		Address:    url.Host,
		Scheme:     url.Scheme,
		Datacenter: r.Datacenter,
		Token:      r.Token,
	}

	return config, nil
}
