package config

import (
	"flag"
)

// Flags are the command-line overrides. Only flags that were set on the
// command line replace values from the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath     string
	Mesh           string
	Texture        string
	VertexShader   string
	FragmentShader string
	StrictShaders  bool
	Progress       bool
	Verbose        bool
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&f.Mesh, "mesh", "", "mesh file (.obj, .gltf, .glb)")
	fs.StringVar(&f.Texture, "texture", "", "texture image (.jpg, .png)")
	fs.StringVar(&f.VertexShader, "vertex", "", "vertex shader source")
	fs.StringVar(&f.FragmentShader, "fragment", "", "fragment shader source")
	fs.BoolVar(&f.StrictShaders, "strict-shaders", false, "abort on shader compile or link errors")
	fs.BoolVar(&f.Progress, "progress", false, "show mesh load progress")
	fs.BoolVar(&f.Verbose, "v", false, "debug logging")
	return f
}

// Resolve loads the config file named by -config, applies the explicitly set
// flags and validates the result. Call after fs.Parse.
func (f *Flags) Resolve() (*Config, error) {
	c, err := Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mesh":
			c.Assets.Mesh = f.Mesh
		case "texture":
			c.Assets.Texture = f.Texture
		case "vertex":
			c.Assets.VertexShader = f.VertexShader
		case "fragment":
			c.Assets.FragmentShader = f.FragmentShader
		case "strict-shaders":
			c.Shaders.Strict = f.StrictShaders
		case "progress":
			c.Progress = f.Progress
		}
	})

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
