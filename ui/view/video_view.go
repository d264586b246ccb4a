package view

import (
	"image"

	"github.com/soocke/streamtrack-go/assets"
	"github.com/soocke/streamtrack-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// TouchHandlers receive pointer gestures in video label coordinates.
type TouchHandlers struct {
	Down func(x, y float64)
	Move func(x, y float64)
	Up   func(x, y float64)
}

// VideoView shows the composed video frame and a thumbnail of the tracked
// target, and forwards mouse gestures on the video as touches.
type VideoView interface {
	UpdateVideo(img image.Image)
	UpdateTarget(img image.Image)
	Reset()
	Resize(w, h int)
}

type videoView struct {
	videoLabel  *LabelWidget
	targetLabel *LabelWidget
	w, h        int
	prevVideo   *Img // last Tk photo image instance for the video
	prevTarget  *Img // last Tk photo image instance for the thumbnail
}

// NewVideoView creates the labels, grids them at row and binds the gesture
// handlers. Layout: video spans columns 0-3; the thumbnail sits at column 4.
func NewVideoView(row, w, h int, touch TouchHandlers) VideoView {
	v := &videoView{w: w, h: h}
	v.prevVideo = NewPhoto(Data(v.noSignal()))
	v.prevTarget = NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 96, 96)))))
	v.videoLabel = Label(Image(v.prevVideo), Borderwidth(0), Cursor("crosshair"))
	v.targetLabel = Label(Image(v.prevTarget), Borderwidth(1), Relief("sunken"))
	Grid(v.videoLabel, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(v.targetLabel, Row(row), Column(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))

	// Label coordinates equal video coordinates: borderwidth is zero and the
	// photo is exactly w x h.
	if touch.Down != nil {
		Bind(v.videoLabel, "<ButtonPress-1>", Command(func(e *Event) { touch.Down(float64(e.X), float64(e.Y)) }))
	}
	if touch.Move != nil {
		Bind(v.videoLabel, "<B1-Motion>", Command(func(e *Event) { touch.Move(float64(e.X), float64(e.Y)) }))
	}
	if touch.Up != nil {
		Bind(v.videoLabel, "<ButtonRelease-1>", Command(func(e *Event) { touch.Up(float64(e.X), float64(e.Y)) }))
	}
	return v
}

func (v *videoView) noSignal() []byte {
	card, err := assets.NoSignalImage()
	if err != nil {
		return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, v.w, v.h)))
	}
	return images.EncodePNG(images.Letterbox(card, v.w, v.h, image.Black))
}

func (v *videoView) UpdateVideo(img image.Image) {
	if v.videoLabel == nil || img == nil {
		return
	}
	v.replace(&v.prevVideo, v.videoLabel, images.EncodePNG(img))
}

func (v *videoView) UpdateTarget(img image.Image) {
	if v.targetLabel == nil || img == nil {
		return
	}
	v.replace(&v.prevTarget, v.targetLabel, images.EncodePNG(img))
}

// replace swaps the label's photo, deleting the old one so obsolete pixel
// buffers are not retained.
func (v *videoView) replace(prev **Img, label *LabelWidget, png []byte) {
	if *prev != nil {
		(*prev).Delete()
	}
	*prev = NewPhoto(Data(png))
	label.Configure(Image(*prev))
}

func (v *videoView) Reset() {
	if v.videoLabel != nil {
		v.replace(&v.prevVideo, v.videoLabel, v.noSignal())
	}
	if v.targetLabel != nil {
		v.replace(&v.prevTarget, v.targetLabel, images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 96, 96))))
	}
}

// Resize changes the size used for the placeholder card. Frames are already
// composed at the viewport size by the presenter.
func (v *videoView) Resize(w, h int) {
	if v == nil || w <= 0 || h <= 0 {
		return
	}
	v.w, v.h = w, h
}
