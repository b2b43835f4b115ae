package constants

// SubmissionStatus is the canonical status for a daily sales submission.
type SubmissionStatus string

// Stable values (store these exact strings in DB).
const (
	SubmissionPending  SubmissionStatus = "PENDING"  // received, extraction not run yet
	SubmissionVerified SubmissionStatus = "VERIFIED" // branch identity matched the directory
	SubmissionFlagged  SubmissionStatus = "FLAGGED"  // branch mismatch; kept but needs review
	SubmissionManual   SubmissionStatus = "MANUAL"   // entered by hand, no receipt text
)

// SubmissionStatuses lists the stable status strings for schema validation.
var SubmissionStatuses = []string{
	string(SubmissionPending),
	string(SubmissionVerified),
	string(SubmissionFlagged),
	string(SubmissionManual),
}

// MovementKind labels one row of the tub inventory ledger.
type MovementKind string

const (
	MovementReceive MovementKind = "RECEIVE"
	MovementOpen    MovementKind = "OPEN"
	MovementWaste   MovementKind = "WASTE"
	MovementAdjust  MovementKind = "ADJUST"
)

// MovementKinds lists the stable movement strings for schema validation.
var MovementKinds = []string{
	string(MovementReceive),
	string(MovementOpen),
	string(MovementWaste),
	string(MovementAdjust),
}
