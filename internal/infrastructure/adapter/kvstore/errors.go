package kvstore

import "errors"

// ErrStoreClosed is returned by stores used after Close
var ErrStoreClosed = errors.New("key-value store is closed")

// ErrUnknownDriver is returned when the configured driver is not supported
var ErrUnknownDriver = errors.New("unknown key-value store driver")
