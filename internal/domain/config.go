package domain

// Config represents the pizzadough configuration loaded from pizzadough.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Plans    PlansConfig
}

type DefaultsConfig struct {
	// Profile is used when --profile is not given. Empty means built-in defaults.
	Profile string
	Format  string
}

type PathsConfig struct {
	ProfilesDir string
	PlansDir    string
}

type PlansConfig struct {
	// Save persists every computed plan without --save-plan.
	Save  bool
	Index bool
}

// DefaultConfig provides sane defaults if pizzadough.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Format: "pretty",
		},
		Paths: PathsConfig{
			ProfilesDir: "profiles",
			PlansDir:    "plans",
		},
		Plans: PlansConfig{
			Save:  false,
			Index: true,
		},
	}
}
