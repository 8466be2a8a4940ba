package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Size        StageSizeConfig  `json:"size"`
	Background  BackgroundConfig `json:"background"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	Antagonist  PositionConfig   `json:"antagonist"`
	Platforms   []PlatformConfig `json:"platforms"`
	Ladders     []LadderConfig   `json:"ladders"`
}

type StageSizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	FloorY int `json:"floorY"`
}

type BackgroundConfig struct {
	Color string `json:"color"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlatformConfig describes one girder by its endpoints
type PlatformConfig struct {
	X      float64 `json:"x"`
	LeftY  float64 `json:"leftY"`
	RightY float64 `json:"rightY"`
	Width  float64 `json:"width"`
}

// LadderConfig places a ladder either at fixed coordinates (x, y, height)
// or between two platforms (upper, lower, optional x).
type LadderConfig struct {
	X      *float64 `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Height float64  `json:"height,omitempty"`

	Upper *int `json:"upper,omitempty"`
	Lower *int `json:"lower,omitempty"`
}

// IsConnection reports whether the ladder is defined by two platforms
func (c LadderConfig) IsConnection() bool {
	return c.Upper != nil || c.Lower != nil
}
