package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player     PlayerConfig     `json:"player"`
	Barrel     BarrelConfig     `json:"barrel"`
	Antagonist AntagonistConfig `json:"antagonist"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	ID    string      `json:"id"`
	Size  SizeConfig  `json:"size"`
	Stats PlayerStats `json:"stats"`
}

// PlayerStats are per-tick movement values
type PlayerStats struct {
	Speed      float64 `json:"speed"`
	JumpForce  float64 `json:"jumpForce"`
	Gravity    float64 `json:"gravity"`
	ClimbSpeed float64 `json:"climbSpeed"`
}

type BarrelConfig struct {
	ID    string      `json:"id"`
	Size  SizeConfig  `json:"size"`
	Stats BarrelStats `json:"stats"`

	// MaxEdgeExits removes a barrel after it rolled off this many edges.
	// Zero keeps barrels until they leave the playfield.
	MaxEdgeExits   int  `json:"maxEdgeExits"`
	BounceOffWalls bool `json:"bounceOffWalls"`
}

type BarrelStats struct {
	Speed         float64 `json:"speed"`
	Gravity       float64 `json:"gravity"`
	RotationSpeed float64 `json:"rotationSpeed"`
}

type AntagonistConfig struct {
	ID             string      `json:"id"`
	Size           SizeConfig  `json:"size"`
	Throw          ThrowConfig `json:"throw"`
	AnimationTicks float64     `json:"animationTicks"`
}

// ThrowConfig sets the barrel throw timing in milliseconds
type ThrowConfig struct {
	IntervalMs    float64 `json:"intervalMs"`
	IntervalMinMs float64 `json:"intervalMinMs"`
	IntervalMaxMs float64 `json:"intervalMaxMs"`
	Direction     int     `json:"direction"`
}
