// Package redmine provides the public types, error taxonomy, query-parameter
// builder and pagination helpers for talking to a Redmine REST API.
//
// The package is transport-agnostic: it defines what requests and responses
// look like, while internal/http performs the actual HTTP calls and
// internal/client maps logical operations onto them.
package redmine
