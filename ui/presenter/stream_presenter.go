package presenter

// StreamModel provides enabled state access.
type StreamModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// LifecycleContract narrows what presenter needs from the stream service.
type LifecycleContract interface {
	Start()
	Stop()
}

// MissionStopper cancels a running tracking mission.
type MissionStopper interface {
	StopActiveTrack()
}

// StreamView updates UI elements affected by stream toggling.
type StreamView interface {
	PreviewReset()
	ConfigEditable(bool)
}

// StreamPresenter owns presentation logic for toggling the video stream.
type StreamPresenter struct {
	model   StreamModel
	service LifecycleContract
	mission MissionStopper
	view    StreamView
}

func NewStreamPresenter(model StreamModel, service LifecycleContract, mission MissionStopper, view StreamView) *StreamPresenter {
	return &StreamPresenter{model: model, service: service, mission: mission, view: view}
}

func (c *StreamPresenter) ready() bool {
	return c != nil && c.model != nil && c.service != nil && c.view != nil
}

// Enable starts the stream service and locks the config panel. Idempotent.
func (c *StreamPresenter) Enable() {
	if !c.ready() || c.model.Enabled() {
		return
	}
	c.service.Start()
	c.model.SetEnabled(true)
	c.view.ConfigEditable(false)
}

// Disable stops the stream, abandons any mission that depends on it and
// resets the preview. Idempotent.
func (c *StreamPresenter) Disable() {
	if !c.ready() || !c.model.Enabled() {
		return
	}
	c.service.Stop()
	c.model.SetEnabled(false)
	if c.mission != nil {
		c.mission.StopActiveTrack()
	}
	c.view.PreviewReset()
	c.view.ConfigEditable(true)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (c *StreamPresenter) Toggle() {
	if !c.ready() {
		return
	}
	if c.model.Enabled() {
		c.Disable()
		return
	}
	c.Enable()
}
