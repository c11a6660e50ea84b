// Package api handles incoming HTTP requests for the products resource:
// decoding and validating parameters, invoking the store, and shaping
// JSON responses. It is the adapter between external clients and the
// storage layer; nothing here knows about SQL.
package api
