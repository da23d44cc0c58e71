// Package keyring stores the TimeSync password in the operating system's
// credential store so it never has to live in the plaintext rc file.
package keyring

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const serviceName = "climesync"

// ErrNotFound is returned when no password is stored for a username.
var ErrNotFound = errors.New("no password stored in keyring")

// Store provides password storage keyed by TimeSync username.
type Store interface {
	Get(username string) (string, error)
	Set(username, password string) error
	Delete(username string) error
	Available() bool
}

type systemStore struct{}

// New returns the system keyring.
func New() Store {
	return systemStore{}
}

func (systemStore) Get(username string) (string, error) {
	password, err := keyring.Get(serviceName, username)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return password, nil
}

func (systemStore) Set(username, password string) error {
	return keyring.Set(serviceName, username, password)
}

func (systemStore) Delete(username string) error {
	err := keyring.Delete(serviceName, username)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Available probes the platform keyring with a throwaway entry, the same
// way as checking for a working backend before offering secure storage.
func (systemStore) Available() bool {
	const probe = "climesync-keyring-probe"
	if err := keyring.Set(serviceName, probe, "probe"); err != nil {
		return false
	}
	_ = keyring.Delete(serviceName, probe)
	return true
}
