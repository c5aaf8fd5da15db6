package core

// VoterID opaquely identifies a voter for the duration of one run. The
// pipeline never renumbers these; they are compared for equality, used as
// map keys, and ordered numerically for deterministic iteration and the
// smallest-id tie-break.
type VoterID int

// ProjectID opaquely identifies a project for the duration of one run, with
// the same non-renumbering guarantee as VoterID.
type ProjectID int
