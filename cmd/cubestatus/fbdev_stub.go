//go:build !linux

package main

import (
	"errors"
	"time"

	"github.com/lucjon/cubefb"
)

// runFbdev is only available where the framebuffer device exists.
func runFbdev(*cubefb.Screen, string, time.Duration) error {
	return errors.New("-out=fbdev requires linux")
}
