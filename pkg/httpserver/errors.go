package httpserver

import "errors"

var (
	// ErrStart indicates the server failed to start or exited abnormally.
	ErrStart = errors.New("http server start failed")

	// ErrShutdown indicates the server failed to shut down cleanly.
	ErrShutdown = errors.New("http server shutdown failed")
)
