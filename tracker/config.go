package tracker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlaneMode selects the reference plane the pointer ray is cast against.
type PlaneMode int

const (
	// WorldPlane is the horizontal plane y = PlaneY.
	WorldPlane PlaneMode = iota
	// ViewpointPlane faces the viewpoint at ViewpointPlaneDistance in front of it.
	ViewpointPlane
)

func (m PlaneMode) String() string {
	switch m {
	case WorldPlane:
		return "world"
	case ViewpointPlane:
		return "viewpoint"
	default:
		return fmt.Sprintf("PlaneMode(%d)", int(m))
	}
}

func ParsePlaneMode(s string) (PlaneMode, error) {
	switch s {
	case "world":
		return WorldPlane, nil
	case "viewpoint", "camera":
		return ViewpointPlane, nil
	}
	return WorldPlane, fmt.Errorf("unknown plane mode %q", s)
}

func (m *PlaneMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParsePlaneMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m PlaneMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

const (
	DefaultEmitPropertyName    = "Emit"
	DefaultVectorPropertyName  = "MouseWorld"
	DefaultViewpointDistance   = 10.0
	DefaultDiagnosticsInterval = 0.5

	// MinViewpointDistance keeps the viewpoint plane strictly in front of the viewer.
	MinViewpointDistance = 0.01
	// MinDiagnosticsInterval bounds the diagnostics rate to roughly once per frame.
	MinDiagnosticsInterval = 0.01
)

// Config is set once at startup. Replace it through Tracker.Reconfigure.
type Config struct {
	EmitPropertyName           string    `yaml:"emitPropertyName"`
	VectorPropertyName         string    `yaml:"vectorPropertyName"`
	TriggerButtonIndex         int       `yaml:"triggerButtonIndex"`
	PlaneMode                  PlaneMode `yaml:"planeMode"`
	PlaneY                     float32   `yaml:"planeY"`
	ViewpointPlaneDistance     float32   `yaml:"viewpointPlaneDistance"`
	ConvertToLocalSpace        bool      `yaml:"convertToLocalSpace"`
	EnableDiagnostics          bool      `yaml:"enableDiagnostics"`
	DiagnosticsIntervalSeconds float32   `yaml:"diagnosticsIntervalSeconds"`
}

func Default() Config {
	return Config{
		EmitPropertyName:           DefaultEmitPropertyName,
		VectorPropertyName:         DefaultVectorPropertyName,
		TriggerButtonIndex:         0,
		PlaneMode:                  WorldPlane,
		PlaneY:                     0,
		ViewpointPlaneDistance:     DefaultViewpointDistance,
		ConvertToLocalSpace:        false,
		EnableDiagnostics:          false,
		DiagnosticsIntervalSeconds: DefaultDiagnosticsInterval,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read tracker config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse tracker config: %w", err)
	}

	cfg = cfg.Sanitize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid tracker config %s: %w", path, err)
	}
	return cfg, nil
}

// Sanitize clamps numeric fields into their usable ranges.
func (c Config) Sanitize() Config {
	if c.ViewpointPlaneDistance < MinViewpointDistance {
		c.ViewpointPlaneDistance = MinViewpointDistance
	}
	if c.DiagnosticsIntervalSeconds < MinDiagnosticsInterval {
		c.DiagnosticsIntervalSeconds = MinDiagnosticsInterval
	}
	return c
}

func (c Config) Validate() error {
	switch c.PlaneMode {
	case WorldPlane, ViewpointPlane:
	default:
		return fmt.Errorf("unknown plane mode %v", c.PlaneMode)
	}
	if c.TriggerButtonIndex < 0 {
		return fmt.Errorf("trigger button index must not be negative, got %d", c.TriggerButtonIndex)
	}
	if c.ViewpointPlaneDistance <= 0 {
		return fmt.Errorf("viewpoint plane distance must be positive, got %g", c.ViewpointPlaneDistance)
	}
	if c.DiagnosticsIntervalSeconds <= 0 {
		return fmt.Errorf("diagnostics interval must be positive, got %g", c.DiagnosticsIntervalSeconds)
	}
	return nil
}
