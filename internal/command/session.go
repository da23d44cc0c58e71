package command

import (
	"errors"

	"github.com/osuosl/climesync/internal/config"
	"github.com/osuosl/climesync/internal/field"
	"github.com/osuosl/climesync/internal/keyring"
)

// Connect establishes a session with a TimeSync server. The URL comes from,
// in priority order: the explicit argument, the rc file, and (interactively
// only) a prompt. No request is sent; TimeSync has no hello endpoint.
func Connect(a *App, argURL string, interactive bool) Result {
	url := ""

	switch {
	case argURL != "":
		url = argURL
	case a.Config[config.KeyURL] != "":
		url = a.Config[config.KeyURL]
	case interactive:
		value, _, err := field.Ask(a.Prompt, field.Field{
			Name:   "url",
			Prompt: "URL of TimeSync server",
			Kind:   field.String,
		})
		if err != nil {
			return Errf(ErrValidation, "reading input: %v", err)
		}
		url = value.(string)
	default:
		return Errf(ErrAuth, "Couldn't connect to TimeSync. Is timesync_url set in %s?", a.ConfigPath)
	}

	if interactive && !a.Test {
		a.offerConfig(config.KeyURL, url)
	}

	a.Session = &Session{
		Client: a.NewClient(url, a.Test),
		URL:    url,
		Test:   a.Test,
	}

	return Empty()
}

// Disconnect drops the current session.
func Disconnect(a *App) Result {
	a.Session = nil
	return Empty()
}

// SignIn authenticates the current session. Credentials come from explicit
// arguments, then the rc file, then the system keyring (password only), and
// finally interactive prompts. Scripted invocations never prompt.
func SignIn(a *App, argUser, argPass string, interactive bool) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	username := ""
	password := ""

	switch {
	case argUser != "":
		username = argUser
	case a.Config[config.KeyUsername] != "":
		username = a.Config[config.KeyUsername]
	case interactive:
		value, _, err := field.Ask(a.Prompt, field.Field{
			Name:   "username",
			Prompt: "Username",
			Kind:   field.String,
		})
		if err != nil {
			return Errf(ErrValidation, "reading input: %v", err)
		}
		username = value.(string)
	}

	switch {
	case argPass != "":
		password = argPass
	case a.Config[config.KeyPassword] != "":
		password = a.Config[config.KeyPassword]
	case username != "" && a.keyringPassword(username) != "":
		password = a.keyringPassword(username)
	case interactive:
		value, _, err := field.Ask(a.Prompt, field.Field{
			Name:   "password",
			Prompt: "Password",
			Kind:   field.Secret,
		})
		if err != nil {
			return Errf(ErrValidation, "reading input: %v", err)
		}
		password = value.(string)
	}

	if username == "" || password == "" {
		return Errf(ErrAuth, "Couldn't authenticate with TimeSync. Are username and password set in %s?", a.ConfigPath)
	}

	if interactive && !a.Session.Test {
		a.offerConfig(config.KeyUsername, username)
		a.offerPassword(username, password)
	}

	records, err := a.Session.Client.Authenticate(a.Context(), username, password)
	if err != nil {
		return remoteErr(err)
	}

	return OkAll(records)
}

// SignOut resets credentials by swapping in a fresh unauthenticated client
// connected to the same server.
func SignOut(a *App) Result {
	if r := a.requireSession(); r != nil {
		return *r
	}

	a.Session = &Session{
		Client: a.NewClient(a.Session.URL, a.Session.Test),
		URL:    a.Session.URL,
		Test:   a.Session.Test,
	}

	return Empty()
}

// offerConfig asks to persist a key/value pair into the rc file, skipping
// the question when the pair is already there.
func (a *App) offerConfig(key, value string) {
	if a.Config[key] == value {
		return
	}

	a.Prompt.Say("%s = %s", key, value)
	add, err := a.askYesNo("Add to the config file?")
	if err != nil || !add {
		return
	}

	if err := config.Set(a.ConfigPath, key, value); err != nil {
		a.Prompt.Say("Couldn't update %s: %v", a.ConfigPath, err)
		return
	}
	a.Config[key] = value
}

// offerPassword handles the one secret-typed setting. The keyring is
// offered first; plaintext persistence in the rc file needs its own
// explicit confirmation.
func (a *App) offerPassword(username, password string) {
	if a.Keyring != nil && a.Keyring.Available() {
		if a.keyringPassword(username) == password {
			return
		}

		store, err := a.askYesNo("Store the password in the system keyring?")
		if err == nil && store {
			if err := a.Keyring.Set(username, password); err != nil {
				a.Prompt.Say("Couldn't store the password: %v", err)
			}
			return
		}
	}

	if a.Config[config.KeyPassword] == password {
		return
	}

	add, err := a.askYesNo("Add the password to the config file in plain text?")
	if err != nil || !add {
		return
	}

	if err := config.Set(a.ConfigPath, config.KeyPassword, password); err != nil {
		a.Prompt.Say("Couldn't update %s: %v", a.ConfigPath, err)
		return
	}
	a.Config[config.KeyPassword] = password
}

func (a *App) keyringPassword(username string) string {
	if a.Keyring == nil {
		return ""
	}

	password, err := a.Keyring.Get(username)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			a.Log.Debug("keyring lookup failed")
		}
		return ""
	}
	return password
}
