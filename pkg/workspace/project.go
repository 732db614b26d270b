// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

// Package workspace locates Regina projects and their entry files.  A project is a directory holding a Regina.yaml
// (or Regina.yml or Regina.json) manifest; a bare source file can also be run without one.
package workspace

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/regina-lang/regina/pkg/tokens"
	"github.com/regina-lang/regina/pkg/util/contract"
)

// DefaultSeed is the seed of the random number generator when neither the project nor the command line picks one.
const DefaultSeed int64 = 42

// Project is a Regina project manifest.
type Project struct {
	Name        tokens.Name `json:"name" yaml:"name"`                                   // a required project name.
	Main        string      `json:"main,omitempty" yaml:"main,omitempty"`               // the entry file, relative to the manifest.
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"` // an optional informational description.
	Seed        *int64      `json:"seed,omitempty" yaml:"seed,omitempty"`               // an optional initial random seed.
}

func (proj *Project) Validate() error {
	if proj.Name == "" {
		return errors.New("project is missing a 'name' attribute")
	}
	if !tokens.IsName(string(proj.Name)) {
		return errors.Errorf("project name '%v' is not a legal name", proj.Name)
	}
	return nil
}

// GetSeed returns the project's random seed, or the default one.
func (proj *Project) GetSeed() int64 {
	if proj == nil || proj.Seed == nil {
		return DefaultSeed
	}
	return *proj.Seed
}

// LoadProject reads and validates the manifest at path.
func LoadProject(fs afero.Fs, path string) (*Project, error) {
	contract.Require(path != "", "path")

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading project manifest")
	}

	// JSON is a subset of YAML, so one decoder serves every manifest extension.
	var proj Project
	if err = yaml.Unmarshal(b, &proj); err != nil {
		return nil, errors.Wrapf(err, "decoding project manifest '%v'", path)
	}
	if err = proj.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid project manifest '%v'", path)
	}
	return &proj, nil
}
