package config

// UIConfig configures the interactive planner.
type UIConfig struct {
	Theme  string `yaml:"theme"`  // auto, light, dark
	Locale string `yaml:"locale"` // BCP 47 tag for number formatting
}
