package fixture

import (
	"fmt"
	"os"

	"github.com/uyouii/cruise-profile/model"
	"gopkg.in/yaml.v3"
)

// Fixture is one snapshot of the data source: segment metadata, their samples, and
// optionally the config they were recorded with.
type Fixture struct {
	Config   *model.Config           `yaml:"config,omitempty"`
	Segments []model.SegmentMetadata `yaml:"segments"`
	Samples  []model.Sample          `yaml:"samples"`
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	fixture := &Fixture{}
	if err := yaml.Unmarshal(data, fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return fixture, nil
}

func (f *Fixture) SamplesOf(segmentID string) []model.Sample {
	res := []model.Sample{}
	for _, sample := range f.Samples {
		if sample.SegmentID == segmentID {
			res = append(res, sample)
		}
	}
	return res
}
