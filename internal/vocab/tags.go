package vocab

// SourceKind tags a source.
type SourceKind string

const (
	SourceVirtual SourceKind = "Virtual"
)

// Character is the behavior class of a virtual control.
type Character string

const (
	CharacterButton Character = "Button"
	CharacterMulti  Character = "Multi"
)

// TargetKind tags a target.
type TargetKind string

const (
	TargetClipMatrixAction    TargetKind = "ClipMatrixAction"
	TargetClipColumnAction    TargetKind = "ClipColumnAction"
	TargetClipRowAction       TargetKind = "ClipRowAction"
	TargetClipTransportAction TargetKind = "ClipTransportAction"
	TargetClipManagement      TargetKind = "ClipManagement"
	TargetClipSeek            TargetKind = "ClipSeek"
	TargetClipVolume          TargetKind = "ClipVolume"
	TargetTransportAction     TargetKind = "TransportAction"
	TargetReaperAction        TargetKind = "ReaperAction"
	TargetFxParameterValue    TargetKind = "FxParameterValue"
	TargetTrackSoloState      TargetKind = "TrackSoloState"
	TargetTrackArmState       TargetKind = "TrackArmState"
	TargetTrackMuteState      TargetKind = "TrackMuteState"
	TargetTrackSelectionState TargetKind = "TrackSelectionState"
	TargetTrackVolume         TargetKind = "TrackVolume"
	TargetTrackPan            TargetKind = "TrackPan"
	TargetRouteVolume         TargetKind = "RouteVolume"
)

// AbsoluteMode tags how absolute control values are interpreted.
type AbsoluteMode string

const (
	AbsoluteToggleButton      AbsoluteMode = "ToggleButton"
	AbsoluteIncrementalButton AbsoluteMode = "IncrementalButton"
)

// FireModeKind tags the press-timing behavior of a button.
type FireModeKind string

const (
	FireAfterTimeout  FireModeKind = "AfterTimeout"
	FireOnSinglePress FireModeKind = "OnSinglePress"
	FireOnDoublePress FireModeKind = "OnDoublePress"
)

// FeedbackKind tags the feedback channel format.
type FeedbackKind string

const (
	FeedbackText    FeedbackKind = "Text"
	FeedbackNumeric FeedbackKind = "Numeric"
)

// ConditionKind tags an activation condition.
type ConditionKind string

const (
	ConditionModifier ConditionKind = "Modifier"
	ConditionBank     ConditionKind = "Bank"
)

// Address tags used inside target descriptors.
const (
	addressDynamic        = "Dynamic"
	addressByID           = "ById"
	addressThis           = "This"
	addressFromClipColumn = "FromClipColumn"
	contextPlayback       = "Playback"
	invocationTrigger     = "Trigger"
	outOfRangeMin         = "Min"
)
