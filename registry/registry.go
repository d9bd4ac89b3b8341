package registry

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"healthd/config"

	consulapi "github.com/hashicorp/consul/api"
	log "github.com/sirupsen/logrus"
)

const checkInterval = "10s"

// stubbed out for testing
var hostname = os.Hostname

// Register adds this process to the configured Consul agent with an HTTP
// check against its own health endpoint. A registry without a location is
// treated as disabled. There is no deregistration path: when the process
// dies the agent marks the check critical, which is the liveness signal
// the registration exists for.
func Register(registry config.Registry, name, listen string) error {
	if !registry.Enabled() {
		log.Debug("Registry location is not configured - self registration will be disabled")
		return nil
	}

	client, err := newClient(registry)
	if err != nil {
		return err
	}

	registration, err := selfRegistration(name, listen)
	if err != nil {
		return err
	}

	fields := log.Fields{
		"Name": registration.Name,
		"Id":   registration.ID,
		"Port": registration.Port,
	}
	log.WithFields(fields).Info("Registering")

	if err := client.Agent().ServiceRegister(registration); err != nil {
		log.WithError(err).WithFields(fields).Error("Unable to register")
		return err
	}

	return nil
}

func newClient(registry config.Registry) (*consulapi.Client, error) {
	clientConfig, err := registry.Config()
	if err != nil {
		return nil, err
	}
	return consulapi.NewClient(clientConfig)
}

func selfRegistration(name, listen string) (*consulapi.AgentServiceRegistration, error) {
	port, err := listenPort(listen)
	if err != nil {
		return nil, err
	}

	host, err := hostname()
	if err != nil {
		return nil, err
	}

	return &consulapi.AgentServiceRegistration{
		ID:   fmt.Sprintf("%s-%d", name, port),
		Name: name,
		Port: port,
		Check: &consulapi.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%d/health", host, port),
			Interval: checkInterval,
		},
	}, nil
}

func listenPort(listen string) (int, error) {
	_, port, err := net.SplitHostPort(listen)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(port)
}
