package models

// PuzzleUpdate describes what happened to one skill's puzzle during a
// submission. When the unlock completed the puzzle, Completed carries the
// archived state and Next the freshly created larger puzzle; otherwise
// Puzzle is the incremented active state and the other two are nil.
type PuzzleUpdate struct {
	Skill     string       `json:"skill"`
	Puzzle    PuzzleState  `json:"puzzle"`
	Completed *PuzzleState `json:"completed,omitempty"`
	Next      *PuzzleState `json:"next,omitempty"`
}

// ProgressionOutcome is everything the UI needs to render the result of a
// submitted session: the score, the updated cumulative progress, and the
// puzzle movement per touched skill.
type ProgressionOutcome struct {
	Result        SessionResult  `json:"result"`
	Progress      GameProgress   `json:"progress"`
	PuzzleUpdates []PuzzleUpdate `json:"puzzle_updates"`
}
