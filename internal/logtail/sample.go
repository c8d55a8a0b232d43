package logtail

var sampleLines = []string{
	"2025-02-15T10:00:00Z INFO  Server started on 0.0.0.0:8080",
	"2025-02-15T10:00:01Z DEBUG Connecting to database...",
	"2025-02-15T10:00:02Z INFO  Database connection pool ready",
	"2025-02-15T10:00:05Z WARN  High memory usage: 85%",
	"2025-02-15T10:00:10Z ERROR Failed to connect to cache: connection refused",
	"2025-02-15T10:00:11Z INFO  Retrying cache connection (attempt 2)",
	"2025-02-15T10:00:15Z ERROR Timeout waiting for response from auth service",
	"2025-02-15T10:00:20Z DEBUG Request GET /api/health completed in 2ms",
	"2025-02-15T10:00:21Z INFO  Request GET /api/users completed in 45ms",
	"2025-02-15T10:00:25Z WARN  Rate limit approaching for client 192.168.1.1",
	"2025-02-15T10:00:30Z ERROR Database deadlock detected, retrying transaction",
	"2025-02-15T10:00:35Z INFO  Backup job started",
	"2025-02-15T10:00:40Z DEBUG Cache hit ratio: 0.92",
	"2025-02-15T10:00:45Z WARN  Disk space below 20% on /var/log",
	"2025-02-15T10:00:50Z INFO  Backup job completed successfully",
}

// SampleLines returns the demonstration lines shown when no file is given.
func SampleLines() []string {
	out := make([]string, len(sampleLines))
	copy(out, sampleLines)
	return out
}
