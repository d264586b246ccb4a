package vehicle

import (
	"github.com/pkg/errors"
)

// ErrAbsentComponent reports that a product or component is not connected.
var ErrAbsentComponent = errors.New("vehicle: component not connected")

// Camera is the aircraft camera handle.
type Camera interface {
	DisplayName() string
}

// Gimbal is the camera gimbal handle.
type Gimbal interface {
	DisplayName() string
	Attitude() (pitch, roll, yaw float64)
}

// FlightController is the aircraft flight controller handle.
type FlightController interface {
	DisplayName() string
	IsFlying() bool
}

// Product is a connected aircraft. Accessors return nil for components that
// are not attached.
type Product interface {
	Model() string
	Camera() Camera
	Gimbal() Gimbal
	FlightController() FlightController
}

// ProductSource returns the currently connected product, or nil.
type ProductSource func() Product

// Components fetches component handles from an injected product source so
// callers never reach for a process-wide SDK singleton.
type Components struct {
	source ProductSource
}

// NewComponents wraps source. A nil source behaves as permanently disconnected.
func NewComponents(source ProductSource) *Components {
	return &Components{source: source}
}

func (c *Components) product() Product {
	if c == nil || c.source == nil {
		return nil
	}
	return c.source()
}

// FetchProduct returns the connected product.
func (c *Components) FetchProduct() (Product, bool) {
	p := c.product()
	return p, p != nil
}

// FetchCamera returns the camera handle, if connected.
func (c *Components) FetchCamera() (Camera, bool) {
	p := c.product()
	if p == nil {
		return nil, false
	}
	cam := p.Camera()
	return cam, cam != nil
}

// FetchGimbal returns the gimbal handle, if connected.
func (c *Components) FetchGimbal() (Gimbal, bool) {
	p := c.product()
	if p == nil {
		return nil, false
	}
	g := p.Gimbal()
	return g, g != nil
}

// FetchFlightController returns the flight controller handle, if connected.
func (c *Components) FetchFlightController() (FlightController, bool) {
	p := c.product()
	if p == nil {
		return nil, false
	}
	fc := p.FlightController()
	return fc, fc != nil
}

// RequireFlightController is FetchFlightController for callers that propagate
// errors.
func (c *Components) RequireFlightController() (FlightController, error) {
	fc, ok := c.FetchFlightController()
	if !ok {
		return nil, errors.Wrap(ErrAbsentComponent, "flight controller")
	}
	return fc, nil
}

// RequireCamera is FetchCamera for callers that propagate errors.
func (c *Components) RequireCamera() (Camera, error) {
	cam, ok := c.FetchCamera()
	if !ok {
		return nil, errors.Wrap(ErrAbsentComponent, "camera")
	}
	return cam, nil
}

// RequireGimbal is FetchGimbal for callers that propagate errors.
func (c *Components) RequireGimbal() (Gimbal, error) {
	g, ok := c.FetchGimbal()
	if !ok {
		return nil, errors.Wrap(ErrAbsentComponent, "gimbal")
	}
	return g, nil
}
