// Package api exposes the layout engine over HTTP. Every response is a
// post-swap snapshot; intermediate layout states are never observable.
package api
