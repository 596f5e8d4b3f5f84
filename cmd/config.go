// Package cmd wires the two halves of the system. CompositionRoot assembles
// the order server that cmd/app boots; ClientRoot assembles the client-side
// workflow (REST client, registry, command/query handlers, refresh job) and
// is the embedding point for an external UI. No shipped binary starts
// ClientRoot; the embedding program owns its lifecycle.
package cmd

// Config carries the process configuration loaded from the environment. The
// DB, artifact and HTTP settings drive the order server; ServerURL and
// RefreshSchedule drive client-side wiring.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	ArtifactDir     string
	ServerURL       string
	RefreshSchedule string
}
