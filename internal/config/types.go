package config

// FileName is the optional per-project configuration file, looked up in the project root.
const FileName = "flk.yaml"

// Config is the wrapper's configuration, read from flk.yaml.
// - Tool: Executable to delegate to, looked up on PATH.
// - System: Platform id override; empty means detect from the running binary.
// - Echo: Which streams of the tool are printed live for build/check/run.
type Config struct {
	Tool   string `yaml:"tool"`
	System string `yaml:"system"`
	Echo   Echo   `yaml:"echo"`
}

// Echo selects live pass-through of the tool's output streams.
type Echo struct {
	Stdout bool `yaml:"stdout"`
	Stderr bool `yaml:"stderr"`
}

// Default returns the configuration used when no flk.yaml is present.
func Default() Config {
	return Config{
		Tool: "nix",
		Echo: Echo{Stdout: true, Stderr: true},
	}
}
