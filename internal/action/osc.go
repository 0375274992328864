package action

// DynamicColorTarget names the addressable target of an OSC dynamic-color
// set/reset/query, by the same numeric identity xterm assigns (10=text
// foreground, 11=text background, 12=cursor, ...). Only TextForeground and
// TextBackground have observable dispatch behavior; the rest are accepted
// but no-op.
type DynamicColorTarget int

const (
	TargetTextForeground DynamicColorTarget = iota
	TargetTextBackground
	TargetTextCursor
	TargetMouseForeground
	TargetMouseBackground
	TargetTektronixForeground
	TargetTektronixBackground
	TargetTektronixCursor
	TargetHighlightForeground
	TargetHighlightBackground
	TargetOther
)

// DynamicColorRequest is either a concrete color to set, or a query asking
// for the current value to be echoed back.
type DynamicColorRequest struct {
	IsQuery bool
	Color   ColorSpec
}

// OSCKind tags which OSC operation was parsed.
type OSCKind int

const (
	OSCChangeDynamicColors OSCKind = iota
	OSCResetDynamicColor
	OSCResetColors
	OSCOther
)

// OSC carries the decoded payload for an OSC sequence. First is the
// numeric identity of the first target in ChangeDynamicColors (subsequent
// requests address First+i); Target is the single target for
// ResetDynamicColor; Indexes lists palette indexes for ResetColors.
type OSC struct {
	Kind     OSCKind
	First    DynamicColorTarget
	Requests []DynamicColorRequest
	Target   DynamicColorTarget
	Indexes  []int
}
