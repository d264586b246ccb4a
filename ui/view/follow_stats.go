package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// FollowStats shows how long the current target has been followed and the
// accumulated follow time.
type FollowStats interface {
	Set(current, total time.Duration)
}

type followStats struct {
	currentLbl *LabelWidget
	totalLbl   *LabelWidget
	last       [2]int
}

// NewFollowStats places both labels at (row, startCol) and (row, startCol+1)
// inside parent, or the App root when parent is nil.
func NewFollowStats(parent *FrameWidget, row, startCol int) FollowStats {
	s := &followStats{currentLbl: Label(Width(16)), totalLbl: Label(Width(16)), last: [2]int{-1, -1}}
	for i, l := range []*LabelWidget{s.currentLbl, s.totalLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.Set(0, 0)
	return s
}

// Set updates both labels; unchanged seconds are not re-rendered.
func (s *followStats) Set(current, total time.Duration) {
	if s == nil || s.currentLbl == nil || s.totalLbl == nil {
		return
	}
	c, t := int(current.Seconds()), int(total.Seconds())
	if s.last[0] != c {
		s.currentLbl.Configure(Txt("Following: " + mmss(c)))
	}
	if s.last[1] != t {
		s.totalLbl.Configure(Txt("Total: " + mmss(t)))
	}
	s.last = [2]int{c, t}
}

func mmss(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
