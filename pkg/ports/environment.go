package ports

// Environment answers questions about the machine the host runs on.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// LookPath resolves an executable name against the search path and
	// returns its absolute location. It returns an error when the
	// executable is not installed.
	LookPath(name string) (string, error)
}
