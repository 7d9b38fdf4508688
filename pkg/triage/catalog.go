package triage

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Symptom is an atomic, user-reportable sign identified by a stable id.
type Symptom struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	BodyPart    string `yaml:"body_part,omitempty" json:"body_part,omitempty"`
}

// Condition is a named cluster of symptoms with advisory text. It is
// guidance, not a clinical diagnosis.
type Condition struct {
	ID                   string   `yaml:"id" json:"id"`
	Name                 string   `yaml:"name" json:"name"`
	Symptoms             []string `yaml:"symptoms" json:"symptoms"`
	Urgency              Urgency  `yaml:"urgency" json:"urgency"`
	Description          string   `yaml:"description" json:"description"`
	HomeRemedies         []string `yaml:"home_remedies,omitempty" json:"home_remedies,omitempty"`
	SeekMedicalAttention bool     `yaml:"seek_medical_attention" json:"seek_medical_attention"`
}

// Catalog holds the symptom and condition reference tables. Slice order
// is the definition order and is load-bearing: the detector reports
// symptoms in it and the matcher breaks ranking ties by it. Catalogs are
// immutable after Load.
type Catalog struct {
	Symptoms   []Symptom   `yaml:"symptoms" json:"symptoms"`
	Conditions []Condition `yaml:"conditions" json:"conditions"`

	symptomIndex map[string]int
}

// Load reads a catalog from a YAML file, or returns the built-in catalog
// when path is empty. The catalog is validated before it is returned;
// callers should treat an error as fatal.
func Load(path string) (*Catalog, error) {
	if path == "" {
		cat := DefaultCatalog()
		if err := cat.validate(); err != nil {
			return nil, err
		}
		return cat, nil
	}

	content, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cat Catalog
	if err := yaml.Unmarshal(content, &cat); err != nil {
		return nil, err
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Symptoms) == 0 {
		return fmt.Errorf("catalog defines no symptoms")
	}
	if len(c.Conditions) == 0 {
		return fmt.Errorf("catalog defines no conditions")
	}

	c.symptomIndex = make(map[string]int, len(c.Symptoms))
	for i, s := range c.Symptoms {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("symptom at position %d missing id or name", i)
		}
		if _, dup := c.symptomIndex[s.ID]; dup {
			return fmt.Errorf("duplicate symptom id %q", s.ID)
		}
		c.symptomIndex[s.ID] = i
	}

	seen := make(map[string]struct{}, len(c.Conditions))
	for i, cond := range c.Conditions {
		if cond.ID == "" || cond.Name == "" {
			return fmt.Errorf("condition at position %d missing id or name", i)
		}
		if _, dup := seen[cond.ID]; dup {
			return fmt.Errorf("duplicate condition id %q", cond.ID)
		}
		seen[cond.ID] = struct{}{}
		if len(cond.Symptoms) == 0 {
			return fmt.Errorf("condition %q references no symptoms", cond.ID)
		}
		for _, sid := range cond.Symptoms {
			if _, ok := c.symptomIndex[sid]; !ok {
				return fmt.Errorf("condition %q references unknown symptom %q", cond.ID, sid)
			}
		}
		if !cond.Urgency.Valid() {
			return fmt.Errorf("condition %q has invalid urgency %q", cond.ID, cond.Urgency)
		}
	}
	return nil
}

// Symptom looks up a symptom by id.
func (c *Catalog) Symptom(id string) (Symptom, bool) {
	idx, ok := c.symptomIndex[id]
	if !ok {
		return Symptom{}, false
	}
	return c.Symptoms[idx], true
}

// HasSymptom reports whether the id exists in the symptom table.
func (c *Catalog) HasSymptom(id string) bool {
	_, ok := c.symptomIndex[id]
	return ok
}
