package organizer

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// reportConfig is the configuration section of the run report YAML
type reportConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	InputDir  string `yaml:"inputdir"`
	Timestamp string `yaml:"timestamp"`
}

// runReport is the serialized form of a batch run
type runReport struct {
	Config  reportConfig `yaml:"config"`
	Found   int          `yaml:"found"`
	Renamed int          `yaml:"renamed"`
	Failed  int          `yaml:"failed"`
	Results []Result     `yaml:"results"`
}

// Save writes the run report as YAML to path.
func (r *Report) Save(path, provider, model string) error {
	out := runReport{
		Config: reportConfig{
			Provider:  provider,
			Model:     model,
			InputDir:  r.InputDir,
			Timestamp: time.Now().Format("2006-01-02_15-04-05"),
		},
		Found:   len(r.Results),
		Renamed: r.Processed,
		Failed:  r.Failed,
		Results: r.Results,
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
