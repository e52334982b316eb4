package rules

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed ruleset.yaml
var defaultRulesetYAML []byte

// SubsectionSpec requires a number of level-3 subsections beneath a named
// level-2 heading.
type SubsectionSpec struct {
	Under string `yaml:"under"`
	Count int    `yaml:"count"`
}

// PatternSpec describes the headings a declared pattern requires.
type PatternSpec struct {
	// Headings are required verbatim at heading level 2.
	Headings []string `yaml:"headings"`
	// Subsections, when set, requires named level-3 subsections under a
	// heading (multi-phase execution phases).
	Subsections *SubsectionSpec `yaml:"subsections"`
	// NumberedSteps, when set, requires level-3 steps prefixed "1."
	// through "<count>." under a heading (expert process steps).
	NumberedSteps *SubsectionSpec `yaml:"numbered_steps"`
}

// Ruleset carries the tunable limits and taxonomies the rules check
// against. The embedded defaults match the platform conventions; a
// repository can override individual values with its own ruleset file.
type Ruleset struct {
	MaxStemLength        int `yaml:"max_stem_length"`
	MaxDescriptionLength int `yaml:"max_description_length"`
	MinBodyLength        int `yaml:"min_body_length"`
	MinTags              int `yaml:"min_tags"`
	MaxTags              int `yaml:"max_tags"`
	MaxTagLength         int `yaml:"max_tag_length"`
	MinCategoryLength    int `yaml:"min_category_length"`
	MaxCategoryLength    int `yaml:"max_category_length"`

	StandardCategories []string `yaml:"standard_categories"`
	ModelPreferences   []string `yaml:"model_preferences"`
	Articles           []string `yaml:"articles"`

	Patterns map[string]PatternSpec `yaml:"patterns"`
}

// DefaultRuleset parses the embedded default ruleset.
func DefaultRuleset() (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(defaultRulesetYAML, &rs); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded ruleset")
	}
	return &rs, nil
}

// LoadRuleset reads a ruleset file and overlays it on the defaults, so a
// repository only has to declare the values it changes.
func LoadRuleset(path string) (*Ruleset, error) {
	rs, err := DefaultRuleset()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ruleset file '%s'", path)
	}

	if err := yaml.Unmarshal(content, rs); err != nil {
		return nil, errors.Wrapf(err, "failed to parse ruleset file '%s'", path)
	}

	return rs, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
