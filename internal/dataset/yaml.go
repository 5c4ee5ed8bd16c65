package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jask/admissions/internal/roster"
)

// YAMLFile reads a roster document such as:
//
//	candidates:
//	  - id: 1
//	    name: Priya Nair
//	    applied_date: "2025-01-03"
//	    stamps:
//	      - id: 1
//	        category: Technical
type YAMLFile struct {
	Path string
}

func (y YAMLFile) Name() string { return "yaml" }

func (y YAMLFile) Load(ctx context.Context) ([]roster.Candidate, error) {
	f, err := os.Open(y.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeYAML(f)
}

type yamlDoc struct {
	Candidates []yamlCandidate `yaml:"candidates"`
}

type yamlCandidate struct {
	ID                 int         `yaml:"id"`
	Name               string      `yaml:"name"`
	Program            string      `yaml:"program"`
	GPA                float64     `yaml:"gpa"`
	Status             string      `yaml:"status"`
	AppliedDate        string      `yaml:"applied_date"`
	Email              string      `yaml:"email"`
	Phone              string      `yaml:"phone"`
	Address            string      `yaml:"address"`
	BirthDate          string      `yaml:"birth_date"`
	ExpectedGraduation string      `yaml:"expected_graduation"`
	Stamps             []yamlStamp `yaml:"stamps"`
}

type yamlStamp struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	EarnedDate  string `yaml:"earned_date"`
	Description string `yaml:"description"`
	Evidence    string `yaml:"evidence"`
}

// DecodeYAML parses a roster document. Dates are YYYY-MM-DD; birth_date may be empty.
func DecodeYAML(r io.Reader) ([]roster.Candidate, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	out := make([]roster.Candidate, 0, len(doc.Candidates))
	for _, yc := range doc.Candidates {
		c := roster.Candidate{
			ID:                 yc.ID,
			Name:               yc.Name,
			Program:            yc.Program,
			GPA:                yc.GPA,
			Status:             roster.Status(yc.Status),
			Email:              yc.Email,
			Phone:              yc.Phone,
			Address:            yc.Address,
			ExpectedGraduation: yc.ExpectedGraduation,
		}
		var err error
		if c.AppliedDate, err = roster.ParseDate(yc.AppliedDate); err != nil {
			return nil, fmt.Errorf("candidate %d applied_date: %w", yc.ID, err)
		}
		if yc.BirthDate != "" {
			if c.BirthDate, err = roster.ParseDate(yc.BirthDate); err != nil {
				return nil, fmt.Errorf("candidate %d birth_date: %w", yc.ID, err)
			}
		}
		for _, ys := range yc.Stamps {
			cat, ok := roster.ParseCategory(ys.Category)
			if !ok {
				return nil, fmt.Errorf("candidate %d stamp %d category %q: %w", yc.ID, ys.ID, ys.Category, roster.ErrUnknownCategory)
			}
			earned, err := roster.ParseDate(ys.EarnedDate)
			if err != nil {
				return nil, fmt.Errorf("candidate %d stamp %d earned_date: %w", yc.ID, ys.ID, err)
			}
			c.Stamps = append(c.Stamps, roster.Stamp{
				ID:          ys.ID,
				Name:        ys.Name,
				Category:    cat,
				EarnedDate:  earned,
				Description: ys.Description,
				Evidence:    ys.Evidence,
			})
		}
		out = append(out, c)
	}
	return out, nil
}
