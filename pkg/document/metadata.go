package document

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Metadata is the typed view of the frontmatter fields the checks consume.
// Fields keep their zero value when undeclared; use Has to distinguish an
// absent field from a declared-but-empty one. Nothing here validates;
// that is entirely the rules' job.
type Metadata struct {
	Name            string   `mapstructure:"name"`
	Description     string   `mapstructure:"description"`
	Category        string   `mapstructure:"category"`
	Pattern         string   `mapstructure:"pattern"`
	Version         string   `mapstructure:"version"`
	ModelPreference string   `mapstructure:"model_preference"`
	Tags            []string `mapstructure:"tags"`
	RelatedAgents   []string `mapstructure:"related_agents"`
	RelatedSkills   []string `mapstructure:"related_skills"`
	RelatedCommands []string `mapstructure:"related_commands"`

	raw map[string]interface{}
}

// Has reports whether the key was declared in the frontmatter, regardless
// of its value.
func (m Metadata) Has(key string) bool {
	_, ok := m.raw[key]
	return ok
}

// Raw returns the declared value for a key, with ok=false when absent.
func (m Metadata) Raw(key string) (interface{}, bool) {
	v, ok := m.raw[key]
	return v, ok
}

// decodeMetadata maps the dynamic frontmatter onto the typed view. Scalars
// are coerced weakly (a lone string becomes a one-element list) so that the
// rules report shape problems as rule failures instead of the decode
// aborting the whole document.
func decodeMetadata(raw map[string]interface{}) (Metadata, error) {
	m := Metadata{raw: raw}
	if raw == nil {
		return m, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return m, errors.Wrap(err, "failed to build metadata decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return m, errors.Wrap(err, "malformed frontmatter fields")
	}

	return m, nil
}
