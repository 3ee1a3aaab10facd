package engine

import (
	"time"

	"go.autols.dev/autols/pkg/domain"
)

// Outcome is the verdict for one discovered server.
type Outcome string

const (
	// OutcomeEnabled means the server was resolved, found installed and
	// handed to the activator.
	OutcomeEnabled Outcome = "enabled"
	// OutcomeExcluded means the user exclude list skipped the server.
	OutcomeExcluded Outcome = "excluded"
	// OutcomeDeprecated means the server is superseded and skipped.
	OutcomeDeprecated Outcome = "deprecated"
	// OutcomeNoCommand means the resolved configuration declares no
	// launch command.
	OutcomeNoCommand Outcome = "no command"
	// OutcomeNotInstalled means the launch executable is not on the
	// search path.
	OutcomeNotInstalled Outcome = "not installed"
	// OutcomeConfigError means the server's configuration could not be
	// resolved; the failure is attached to the decision.
	OutcomeConfigError Outcome = "config error"
)

// Decision records what Setup decided for one server and why.
type Decision struct {
	// Server is the identifier the decision is about.
	Server domain.ServerID

	// Outcome is the verdict.
	Outcome Outcome

	// Command is the launch executable, when the configuration declares one.
	Command string

	// Path is the absolute executable location, when installed.
	Path string

	// Config is the fully resolved configuration of an enabled server.
	Config domain.ResolvedConfig

	// Err is the per-server failure behind OutcomeConfigError.
	Err error
}

// Report is the result of one Setup run.
type Report struct {
	// Decisions holds one entry per discovered server, in discovery order.
	Decisions []Decision

	// FromCache is true when the server list came from a valid cache
	// record instead of a registry scan.
	FromCache bool

	// Timestamp is when the detecting scan ran. For a cached run it is
	// the cache record's write time.
	Timestamp time.Time
}

// Enabled returns the servers that were handed to the activator, in
// discovery order.
func (r *Report) Enabled() []domain.ServerID {
	ids := make([]domain.ServerID, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		if d.Outcome == OutcomeEnabled {
			ids = append(ids, d.Server)
		}
	}
	return ids
}
