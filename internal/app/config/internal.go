package config

type (
	InternalConfig struct {
		App      App
		Platform Platform
		Session  Session
	}

	App struct {
		Env     string
		Version string
	}

	// Platform points the client at the remote REST service and bounds each
	// dispatch.
	Platform struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		RequestsPerSecond       float64
	}

	// Session selects where bearer credentials are persisted: "redis" for a
	// shared store, "memory" for process-lifetime only.
	Session struct {
		Persistence string
	}
)
