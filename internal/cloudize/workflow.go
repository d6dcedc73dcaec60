package cloudize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// Workflow is a workflow definition paired with its decoded inputs document.
// WDL inputs get the workflow name prefixed onto bare keys; CWL definitions
// additionally carry secondaryFiles declarations.
type Workflow struct {
	DefinitionPath string
	InputsPath     string
	Inputs         map[string]any

	definition map[string]any // decoded CWL definition, nil for WDL
}

// LoadWorkflow reads a .cwl or .wdl definition and its YAML/JSON inputs file.
func LoadWorkflow(fs billy.Filesystem, definitionPath, inputsPath string) (*Workflow, error) {
	data, err := util.ReadFile(fs, inputsPath)
	if err != nil {
		return nil, fmt.Errorf("read inputs %s: %w", inputsPath, err)
	}
	var inputs map[string]any
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse inputs %s: %w", inputsPath, err)
	}

	w := &Workflow{
		DefinitionPath: definitionPath,
		InputsPath:     inputsPath,
		Inputs:         inputs,
	}

	if filepath.Ext(definitionPath) == ".cwl" {
		defData, err := util.ReadFile(fs, definitionPath)
		if err != nil {
			return nil, fmt.Errorf("read workflow definition %s: %w", definitionPath, err)
		}
		var def map[string]any
		if err := yaml.Unmarshal(defData, &def); err != nil {
			return nil, fmt.Errorf("parse workflow definition %s: %w", definitionPath, err)
		}
		w.definition = def
		return w, nil
	}

	name, err := workflowName(fs, definitionPath)
	if err != nil {
		return nil, err
	}
	w.Inputs = prefixInputs(inputs, name)
	return w, nil
}

// SecondarySuffixes returns the CWL secondaryFiles suffixes declared for an
// input. WDL workflows have none.
func (w *Workflow) SecondarySuffixes(inputName string) []string {
	if w.definition == nil {
		return nil
	}
	inputs, ok := w.definition["inputs"].(map[string]any)
	if !ok {
		return nil
	}
	decl, ok := inputs[inputName].(map[string]any)
	if !ok {
		return nil
	}
	switch v := decl["secondaryFiles"].(type) {
	case string:
		return []string{v}
	case []any:
		var suffixes []string
		for _, s := range v {
			if str, ok := s.(string); ok {
				suffixes = append(suffixes, str)
			}
		}
		return suffixes
	default:
		return nil
	}
}

var workflowNameRe = regexp.MustCompile(`(?m)^\s*workflow\s+(\w+)`)

func workflowName(fs billy.Filesystem, definitionPath string) (string, error) {
	data, err := util.ReadFile(fs, definitionPath)
	if err != nil {
		return "", fmt.Errorf("read workflow definition %s: %w", definitionPath, err)
	}
	m := workflowNameRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("no workflow declaration found in %s", definitionPath)
	}
	return string(m[1]), nil
}

// prefixInputs namespaces bare input keys with the workflow name, matching
// the dotted convention the engine expects.
func prefixInputs(inputs map[string]any, prefix string) map[string]any {
	prefixed := make(map[string]any, len(inputs))
	for k, v := range inputs {
		if !strings.Contains(k, ".") {
			k = prefix + "." + k
		}
		prefixed[k] = v
	}
	return prefixed
}
