// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RegistryRefreshJob - periodically re-runs the registry refresh under the
// current filter, so a client UI keeps converging on the server state even
// without user activity
// 2. PedidoPurgeJob - removes orders older than the retention window on the
// server side, complementing the purge performed at boot
//
// # Usage
//
// Jobs are coordinated through JobManager:
//
//	manager := jobs.NewJobManager(
//		jobs.NewRegistryRefreshJob(refreshHandler, "*/30 * * * * *", logger),
//	)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule: a refresh failure
// leaves the previous registry cache in place, a purge failure retries on the
// next tick. A failed StartAll stops the jobs it already started.
package jobs
