//go:build gocv

package main

import (
	"log"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose/gocvsensor"
)

func openCamera(device int, model, netConfig string) (pose.Sensor, func(), error) {
	c := gocvsensor.DefaultConfig()
	c.Device = device
	c.Model = model
	c.NetConfig = netConfig

	cam, err := gocvsensor.Open(c)
	if err != nil {
		return nil, nil, err
	}
	return cam, func() {
		if err := cam.Close(); err != nil {
			log.Printf("Warning: Could not close camera: %v", err)
		}
	}, nil
}
