// Copyright 2024-2026 Aiku AI

package mention

import (
	"fmt"
	"strings"
)

// FormatUser returns the platform mention string for a user identifier.
// Backends without mention syntax degrade to a readable form rather than
// failing; only an unknown backend name is an error.
func FormatUser(backend, userID string) (string, error) {
	switch strings.ToLower(backend) {
	case "discord", "slack":
		return "<@" + userID + ">", nil
	case "symphony":
		if strings.Contains(userID, "@") {
			return `<mention email="` + userID + `"/>`, nil
		}
		return `<mention uid="` + userID + `"/>`, nil
	case "matrix":
		// A Matrix user ID is its own mention token.
		if strings.HasPrefix(userID, "@") {
			return userID, nil
		}
		return "@" + userID, nil
	case "mattermost":
		return "@" + userID, nil
	case "irc", "email":
		return userID, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// FormatChannel returns the platform mention string for a channel
// identifier.
func FormatChannel(backend, channelID string) (string, error) {
	switch strings.ToLower(backend) {
	case "discord", "slack":
		return "<#" + channelID + ">", nil
	case "matrix":
		if strings.HasPrefix(channelID, "#") {
			return channelID, nil
		}
		return "#" + channelID, nil
	case "mattermost":
		return "~" + channelID, nil
	case "symphony", "irc", "email":
		return "#" + channelID, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// FormatRole returns the platform mention string for a role or user
// group. Platforms without role syntax degrade to an @-prefixed name.
func FormatRole(backend, roleID string) (string, error) {
	switch strings.ToLower(backend) {
	case "discord":
		return "<@&" + roleID + ">", nil
	case "slack":
		return "<!subteam^" + roleID + ">", nil
	case "symphony", "matrix", "mattermost", "irc", "email":
		return "@" + roleID, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Everyone returns the platform marker that pings all channel members.
func Everyone(backend string) (string, error) {
	switch strings.ToLower(backend) {
	case "discord":
		return "@everyone", nil
	case "slack":
		return "<!everyone>", nil
	case "matrix":
		return "@room", nil
	case "mattermost":
		return "@all", nil
	case "symphony", "irc", "email":
		return "@everyone", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Here returns the platform marker that pings currently active members.
func Here(backend string) (string, error) {
	switch strings.ToLower(backend) {
	case "slack":
		return "<!here>", nil
	case "discord", "mattermost", "symphony", "matrix", "irc", "email":
		return "@here", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
