//go:build !gocv

package main

import (
	"errors"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
)

func openCamera(int, string, string) (pose.Sensor, func(), error) {
	return nil, nil, errors.New("camera support is not compiled in; rebuild with -tags gocv")
}
