// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// RemoteServerType is the role of a peer in the hub topology.
type RemoteServerType string

const (
	// RemoteServerTypeParent is the single upstream hub of this server.
	RemoteServerTypeParent RemoteServerType = "PARENT"
	// RemoteServerTypeChild is a downstream server that syncs with us.
	RemoteServerTypeChild RemoteServerType = "CHILD"
)

// RemoteServer describes one peer.
type RemoteServer struct {
	ServerID int64            `json:"server_id"`
	UUID     string           `json:"uuid"`
	Nickname string           `json:"nickname"`
	Type     RemoteServerType `json:"type"`

	// Address is the base URL used to reach the peer.
	Address string `json:"address"`
	// Username and Password are the credentials we present to the peer.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// ChildUsername is the login the peer presents to us, ChildPasswordHash
	// its bcrypt hash.
	ChildUsername     string `json:"child_username,omitempty"`
	ChildPasswordHash string `json:"-"`

	LastSync *time.Time `json:"last_sync,omitempty"`

	// ClassesSent is the allow-list of entity types sent to the peer.
	// Empty means every type.
	ClassesSent ContainedClasses `json:"classes_sent,omitempty"`
	// ClassesReceived is the allow-list of entity types accepted from the
	// peer. Empty means every type.
	ClassesReceived ContainedClasses `json:"classes_received,omitempty"`

	Disabled bool `json:"disabled"`
}

// IsParent reports whether s is this server's parent.
func (s *RemoteServer) IsParent() bool {
	return s != nil && s.Type == RemoteServerTypeParent
}

// PullsOnly reports whether s is a child this server cannot reach. Such a
// child gets its queue in the replies to its own transmissions.
func (s *RemoteServer) PullsOnly() bool {
	return s != nil && s.Type == RemoteServerTypeChild && s.Address == ""
}

// ShouldSend reports whether every class in classes may be sent to s.
func (s *RemoteServer) ShouldSend(classes ContainedClasses) bool {
	return allowed(s.ClassesSent, classes)
}

// ShouldReceive reports whether every class in classes may be accepted
// from s.
func (s *RemoteServer) ShouldReceive(classes ContainedClasses) bool {
	return allowed(s.ClassesReceived, classes)
}

func allowed(allowList, classes ContainedClasses) bool {
	if len(allowList) == 0 {
		return true
	}
	for _, c := range classes {
		if !slices.Contains(allowList, c) {
			return false
		}
	}
	return true
}
