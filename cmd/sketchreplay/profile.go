package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
)

// profile holds export settings shared between runs:
//
//	assets = "testdata"
//	format = "jpeg"
//	include_images = false
//	crop = "background"
//	interp = "bicubic"
//
// Flags given on the command line take precedence over the profile.
type profile struct {
	Assets        string `toml:"assets"`
	Format        string `toml:"format"`
	Transparent   *bool  `toml:"transparent"`
	IncludeImages *bool  `toml:"include_images"`
	Crop          string `toml:"crop"`
	Interp        string `toml:"interp"`
}

func loadProfile(path string) (profile, error) {
	var p profile
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, err
	}
	if u := md.Undecoded(); len(u) > 0 {
		return p, fmt.Errorf("undecoded fields in profile: %v", u)
	}
	return p, nil
}

// apply sets every flag of fs the profile names, unless the flag was
// already set explicitly.
func (p profile) apply(fs *flag.FlagSet) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	values := map[string]string{
		"assets": p.Assets,
		"format": p.Format,
		"crop":   p.Crop,
		"interp": p.Interp,
	}
	if p.Transparent != nil {
		values["transparent"] = strconv.FormatBool(*p.Transparent)
	}
	if p.IncludeImages != nil {
		values["include-images"] = strconv.FormatBool(*p.IncludeImages)
	}
	for name, v := range values {
		if v == "" || explicit[name] {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}
	return nil
}
