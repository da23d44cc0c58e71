// Package permission translates TimeSync project access codes into per-user
// permission records.
//
// An access code is a 3-digit binary string in <member><spectator><manager>
// order, most significant bit first, in the style of *nix file modes. The
// code "101" therefore grants member and manager but not spectator.
package permission

import (
	"fmt"

	"github.com/osuosl/climesync/internal/field"
	"github.com/osuosl/climesync/internal/prompt"
)

// Permissions is a user's access to a single project.
type Permissions struct {
	Member    bool `json:"member"`
	Spectator bool `json:"spectator"`
	Manager   bool `json:"manager"`
}

// ParseCode decodes a 3-character binary access code. Only the exact binary
// string form is accepted: the decimal spelling of the same value ("5" for
// "101") is rejected so a typo cannot silently grant the wrong access.
func ParseCode(code string) (Permissions, error) {
	if len(code) != 3 {
		return Permissions{}, fmt.Errorf("access code %q must be exactly 3 binary digits", code)
	}

	var bits [3]bool
	for i, c := range code {
		switch c {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return Permissions{}, fmt.Errorf("access code %q must contain only 0 and 1", code)
		}
	}

	return Permissions{Member: bits[0], Spectator: bits[1], Manager: bits[2]}, nil
}

// Code is the inverse of ParseCode.
func (p Permissions) Code() string {
	code := []byte{'0', '0', '0'}
	if p.Member {
		code[0] = '1'
	}
	if p.Spectator {
		code[1] = '1'
	}
	if p.Manager {
		code[2] = '1'
	}
	return string(code)
}

// ParseCodes decodes a username -> access code mapping, failing on the first
// bad code. It runs before any network call so a usage error never reaches
// the server.
func ParseCodes(codes map[string]string) (map[string]Permissions, error) {
	users := make(map[string]Permissions, len(codes))

	for username, code := range codes {
		perms, err := ParseCode(code)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", username, err)
		}
		users[username] = perms
	}

	return users, nil
}

// Ask builds a permission record by asking three yes/no questions per user.
func Ask(p *prompt.Prompter, usernames []string) (map[string]Permissions, error) {
	users := make(map[string]Permissions, len(usernames))

	for _, username := range usernames {
		var perms Permissions

		questions := []struct {
			prompt string
			target *bool
		}{
			{fmt.Sprintf("Is %s a project member?", username), &perms.Member},
			{fmt.Sprintf("Is %s a project spectator?", username), &perms.Spectator},
			{fmt.Sprintf("Is %s a project manager?", username), &perms.Manager},
		}

		for _, q := range questions {
			value, _, err := field.Ask(p, field.Field{
				Name:   "permission",
				Prompt: q.prompt,
				Kind:   field.Bool,
			})
			if err != nil {
				return nil, err
			}
			*q.target = value.(bool)
		}

		users[username] = perms
	}

	return users, nil
}
