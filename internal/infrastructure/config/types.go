package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Collision CollisionConfig `json:"collision"`
	Layout    LayoutConfig    `json:"layout"`
	Debug     DebugConfig     `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// TickMillis returns the fixed timestep in milliseconds
func (d DisplayConfig) TickMillis() float64 {
	if d.Framerate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(d.Framerate)
}

// CollisionConfig holds the surface band thresholds
type CollisionConfig struct {
	Band            float64 `json:"band"`            // snap distance past a surface
	StickTolerance  float64 `json:"stickTolerance"`  // slack above a surface that still supports
	MinLadderHeight float64 `json:"minLadderHeight"` // shorter connections are skipped
}

// LayoutConfig controls platform placement retries
type LayoutConfig struct {
	RetryStep      float64 `json:"retryStep"`      // downward shift per failed attempt
	MaxAttempts    int     `json:"maxAttempts"`    // attempts before falling back
	FallbackOffset float64 `json:"fallbackOffset"` // shift used when every attempt failed
}

type DebugConfig struct {
	Overlay bool `json:"overlay"` // start with the debug overlay visible
}
