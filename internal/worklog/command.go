package worklog

// DetermineMarker picks the marker for the next comment. A missing or
// malformed last line starts a new session.
func DetermineMarker(finish bool, lastLine string) Marker {
	if finish {
		return Finish
	}
	if len(lastLine) < minCommandLine {
		return Start
	}
	if markerAt(lastLine) == Finish {
		return Start
	}
	return Continue
}
