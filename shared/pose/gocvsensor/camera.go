//go:build gocv

// Package gocvsensor reads landmarks from a webcam with an OpenPose network
// through OpenCV. Build with -tags gocv.
package gocvsensor

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/Mehmet-Adil/Muscle-Survivors/shared/pose"
	"gocv.io/x/gocv"
)

// OpenPose COCO body parts mapped onto the landmark ids the game reads.
var cocoToLandmark = map[int]int{
	2: pose.RightShoulder,
	3: pose.RightElbow,
	5: pose.LeftShoulder,
	6: pose.LeftElbow,
}

// Config locates the camera and the network files.
type Config struct {
	Device     int
	Model      string // caffemodel or pb weights
	NetConfig  string // prototxt, may be empty for single-file models
	InputSize  image.Point
	Threshold  float32
	MirrorView bool
}

// DefaultConfig matches the stock COCO OpenPose prototxt.
func DefaultConfig() Config {
	return Config{
		InputSize:  image.Pt(368, 368),
		Threshold:  0.1,
		MirrorView: true,
	}
}

// Camera is a blocking pose.Sensor. Wrap it in pose.AsyncSensor to keep the
// game loop responsive.
type Camera struct {
	cfg Config

	mu     sync.Mutex
	webcam *gocv.VideoCapture
	net    gocv.Net
	img    gocv.Mat
	closed bool
}

// Open starts the capture device and loads the network.
func Open(cfg Config) (*Camera, error) {
	if cfg.Model == "" {
		return nil, errors.New("gocvsensor: no model file configured")
	}
	webcam, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.Device, err)
	}
	net := gocv.ReadNet(cfg.Model, cfg.NetConfig)
	if net.Empty() {
		webcam.Close()
		return nil, fmt.Errorf("read network %s", cfg.Model)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendDefault); err != nil {
		webcam.Close()
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	return &Camera{cfg: cfg, webcam: webcam, net: net, img: gocv.NewMat()}, nil
}

// Sample grabs one image and runs the network over it.
func (c *Camera) Sample() (pose.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, pose.ErrNotReady
	}
	if ok := c.webcam.Read(&c.img); !ok {
		return nil, pose.ErrNotReady
	}
	if c.img.Empty() {
		return nil, pose.ErrEmptyFrame
	}
	if c.cfg.MirrorView {
		gocv.Flip(c.img, &c.img, 1)
	}

	blob := gocv.BlobFromImage(c.img, 1.0/255.0, c.cfg.InputSize, gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()
	c.net.SetInput(blob, "")
	prob := c.net.Forward("")
	defer prob.Close()

	dims := prob.Size()
	if len(dims) < 4 {
		return nil, fmt.Errorf("gocvsensor: unexpected output shape %v", dims)
	}
	mapH, mapW := dims[2], dims[3]
	imgW, imgH := c.img.Cols(), c.img.Rows()

	frame := make(pose.Frame, 0, len(cocoToLandmark))
	for part, id := range cocoToLandmark {
		heat := gocv.GetBlobChannel(prob, 0, part)
		_, conf, _, loc := gocv.MinMaxLoc(heat)
		heat.Close()
		if conf < c.cfg.Threshold {
			// A partial body counts as no body.
			return pose.Frame{}, nil
		}
		frame = append(frame, pose.Keypoint{
			ID: id,
			X:  loc.X * imgW / mapW,
			Y:  loc.Y * imgH / mapH,
		})
	}
	return frame, nil
}

// Close releases the camera and the network.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.img.Close()
	c.net.Close()
	return c.webcam.Close()
}
