package handler

import "errors"

// errNoHandlersAreCreated means the node has neither a sync HTTP address nor
// a gRPC health address configured.
var errNoHandlersAreCreated = errors.New("no listener address configured, node would accept no connections")
