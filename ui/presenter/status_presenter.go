package presenter

import (
	"time"

	"github.com/soocke/streamtrack-go/ui/model"
)

// StatusView shows the mission summary and follow timers.
type StatusView interface {
	SetStatusLabel(string)
	SetFollow(current, total time.Duration)
}

// StatusPresenter reflects the mission model in the status bar.
type StatusPresenter struct {
	mission *model.MissionModel
	view    StatusView
	latest  string // last reflected status text
}

func NewStatusPresenter(mission *model.MissionModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{mission: mission, view: view}
}

// Tick advances the follow timers and pushes changed values to the view.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.mission == nil || p.view == nil {
		return
	}
	p.mission.OnTick(now)
	if s := p.mission.Status(); s != p.latest {
		p.latest = s
		p.view.SetStatusLabel(s)
	}
	cur, total := p.mission.FollowTimes()
	p.view.SetFollow(cur, total)
}
