package vehicle

// ActiveTrackState is the ActiveTrack mission state reported by the aircraft.
type ActiveTrackState int

const (
	ActiveTrackUnknown ActiveTrackState = iota
	ActiveTrackDisconnected
	ActiveTrackNotSupported
	ActiveTrackCannotStart
	ActiveTrackReadyToStart
	ActiveTrackDetectingHuman
	ActiveTrackWaitingForConfirmation
	ActiveTrackCannotConfirm
	ActiveTrackAircraftFollowing
	ActiveTrackOnlyCameraFollowing
	ActiveTrackFindingTrackedTarget
	ActiveTrackRecovering
)

func (s ActiveTrackState) String() string {
	switch s {
	case ActiveTrackDisconnected:
		return "Disconnected"
	case ActiveTrackNotSupported:
		return "Not Supported"
	case ActiveTrackCannotStart:
		return "Cannot Start"
	case ActiveTrackReadyToStart:
		return "Ready to Start"
	case ActiveTrackDetectingHuman:
		return "Detecting Human"
	case ActiveTrackWaitingForConfirmation:
		return "Waiting for Confirmation"
	case ActiveTrackCannotConfirm:
		return "Cannot Confirm"
	case ActiveTrackAircraftFollowing:
		return "Aircraft Following"
	case ActiveTrackOnlyCameraFollowing:
		return "Only Camera Following"
	case ActiveTrackFindingTrackedTarget:
		return "Finding Tracked Target"
	case ActiveTrackRecovering:
		return "Recovering"
	default:
		return "Unknown"
	}
}

// Tracking reports whether the mission is actively following a target.
func (s ActiveTrackState) Tracking() bool {
	return s == ActiveTrackAircraftFollowing || s == ActiveTrackOnlyCameraFollowing
}

// TargetState is the confidence state of the tracked target.
type TargetState int

const (
	TargetUnknown TargetState = iota
	TargetTrackingHighConfidence
	TargetTrackingLowConfidence
	TargetWaitingForConfirmation
	TargetCannotConfirm
)

func (s TargetState) String() string {
	switch s {
	case TargetTrackingHighConfidence:
		return "Tracking With High Confidence"
	case TargetTrackingLowConfidence:
		return "Tracking With Low Confidence"
	case TargetWaitingForConfirmation:
		return "Waiting for Confirmation"
	case TargetCannotConfirm:
		return "Cannot Confirm"
	default:
		return "Unknown"
	}
}

// CannotConfirmReason explains why a target cannot be confirmed.
type CannotConfirmReason int

const (
	ReasonNone CannotConfirmReason = iota
	ReasonUnknown
	ReasonUnstableTarget
	ReasonTargetTooHigh
	ReasonTargetTooClose
	ReasonTargetTooFar
	ReasonObstacleSensorError
	ReasonGimbalAttitudeError
	ReasonAircraftTooHigh
	ReasonAircraftTooLow
)

func (r CannotConfirmReason) String() string {
	switch r {
	case ReasonNone:
		return "None"
	case ReasonUnstableTarget:
		return "Unstable Target"
	case ReasonTargetTooHigh:
		return "Target Too High"
	case ReasonTargetTooClose:
		return "Target Too Close"
	case ReasonTargetTooFar:
		return "Target Too Far"
	case ReasonObstacleSensorError:
		return "Obstacle Sensor Error"
	case ReasonGimbalAttitudeError:
		return "Gimbal Attitude Error"
	case ReasonAircraftTooHigh:
		return "Aircraft Too High"
	case ReasonAircraftTooLow:
		return "Aircraft Too Low"
	default:
		return "Unknown"
	}
}

// TapFlyState is the TapFly mission state.
type TapFlyState int

const (
	TapFlyUnknown TapFlyState = iota
	TapFlyDisconnected
	TapFlyNotSupported
	TapFlyCannotStart
	TapFlyReadyToExecute
	TapFlyExecuting
	TapFlyExecutionPaused
	TapFlyExecutionResetting
	TapFlyRecovering
)

func (s TapFlyState) String() string {
	switch s {
	case TapFlyDisconnected:
		return "Disconnected"
	case TapFlyNotSupported:
		return "Not Supported"
	case TapFlyCannotStart:
		return "Cannot Start"
	case TapFlyReadyToExecute:
		return "Ready to Execute"
	case TapFlyExecuting:
		return "Executing"
	case TapFlyExecutionPaused:
		return "Execution Paused"
	case TapFlyExecutionResetting:
		return "Execution Resetting"
	case TapFlyRecovering:
		return "Recovering"
	default:
		return "Unknown"
	}
}

// BypassDirection is the obstacle bypass direction chosen during TapFly.
type BypassDirection int

const (
	BypassNone BypassDirection = iota
	BypassOver
	BypassLeft
	BypassRight
	BypassUnknown
)

func (d BypassDirection) String() string {
	switch d {
	case BypassNone:
		return "None"
	case BypassOver:
		return "Over"
	case BypassLeft:
		return "Left"
	case BypassRight:
		return "Right"
	default:
		return "Unknown"
	}
}
