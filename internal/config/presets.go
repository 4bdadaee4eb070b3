package config

import "sort"

var Presets = map[string]*Config{
	"smooth": {
		Parameterization: ParamDurationBounce,
		Spring:           SpringConfig{Duration: 0.5, Bounce: 0},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 1.5, FPS: DefaultFPS},
	},
	"snappy": {
		Parameterization: ParamDurationBounce,
		Spring:           SpringConfig{Duration: 0.5, Bounce: 0.15},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 1.5, FPS: DefaultFPS},
	},
	"bouncy": {
		Parameterization: ParamDurationBounce,
		Spring:           SpringConfig{Duration: 0.5, Bounce: 0.3},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 2, FPS: DefaultFPS},
	},
	"wobbly": {
		Parameterization: ParamDurationBounce,
		Spring:           SpringConfig{Duration: 1, Bounce: 0.7},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 4, FPS: DefaultFPS},
	},
	"molasses": {
		Parameterization: ParamPhysical,
		Spring:           SpringConfig{Mass: 1, Stiffness: 100, Damping: 30, AllowOverdamping: true},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 3, FPS: DefaultFPS},
	},
	"flick": {
		Parameterization: ParamResponse,
		Spring:           SpringConfig{Response: 0.15, DampingRatio: 0.85},
		Track:            TrackConfig{Target: 1, Velocity: 8},
		Sampling:         SampleConfig{Dt: 0.005, Time: 1, FPS: 60},
	},
	"deadline": {
		Parameterization: ParamSettling,
		Spring:           SpringConfig{SettlingDuration: 1, DampingRatio: 0.6, Epsilon: 0.001},
		Track:            TrackConfig{Target: 1},
		Sampling:         SampleConfig{Dt: 0.01, Time: 1.5, FPS: DefaultFPS},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	// Callers mutate the returned config; hand out a copy.
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
